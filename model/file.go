package model

import "github.com/cqkv/pvec/fio"

const (
	// LogFileName is the single log file inside the container directory.
	LogFileName = "vector.cq"
)

// LogFile tracks the append cursor over the log's io manager.
// The owning vector serializes all access.
type LogFile struct {
	WriteOffset int64
	WriteTimes  int64
	IoManager   fio.IOManager
}

func OpenLogFile(ioManager fio.IOManager) *LogFile {
	return &LogFile{
		IoManager: ioManager,
	}
}

// Write appends binary data to the log
func (lf *LogFile) Write(data []byte) error {
	size, err := lf.IoManager.Write(data)
	if err != nil {
		return err
	}
	lf.WriteOffset += int64(size)
	lf.WriteTimes++
	return nil
}

func (lf *LogFile) Flush() error {
	return lf.IoManager.Flush()
}

func (lf *LogFile) Sync() error {
	return lf.IoManager.Sync()
}

func (lf *LogFile) Close() error {
	return lf.IoManager.Close()
}

// ReadHeader returns the raw header bytes at offset. Near the end of
// the file fewer than HeaderSize bytes may come back.
func (lf *LogFile) ReadHeader(offset int64) ([]byte, error) {
	fileSize, err := lf.IoManager.Size()
	if err != nil {
		return nil, err
	}

	var headerBuf int64 = HeaderSize
	if headerBuf+offset > fileSize {
		headerBuf = fileSize - offset
	}

	return lf.readNBytes(offset, headerBuf)
}

func (lf *LogFile) ReadPayload(off, size int64) (data []byte, err error) {
	return lf.readNBytes(off, size)
}

func (lf *LogFile) readNBytes(offset, n int64) ([]byte, error) {
	buf := make([]byte, n)
	_, err := lf.IoManager.Read(buf, offset)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

package fio

// IOManager can be custom in options
type IOManager interface {
	Read([]byte, int64) (int, error)
	Write([]byte) (int, error)
	// Flush pushes buffered writes to the OS. Implementations that
	// write through unbuffered may make it a no-op.
	Flush() error
	// Sync flushes and then forces the data to stable storage.
	Sync() error
	Size() (int64, error)
	// Truncate cuts the file to size. Used to drop a torn tail
	// during recovery, before any write happens.
	Truncate(int64) error
	Close() error
}

// Package pvec is a small embeddable durable sequence container: an
// ordered collection of byte values persisted through an append-only
// log, with crash recovery, logical deletion and a background
// durability daemon.
package pvec

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cqkv/pvec/fio"
	"github.com/cqkv/pvec/model"
)

// Vector is a persistent ordered sequence of byte values. One Vector
// owns one log file inside its directory; a second Open on the same
// directory fails until Close releases it.
type Vector struct {
	mu sync.Mutex

	items   []model.Item
	logFile *model.LogFile

	fileLock fio.FileLocker
	daemon   *daemon
	closed   bool

	options options
}

// Open creates or reopens a vector persisted in dirPath. A
// pre-existing log is replayed before any mutation is accepted; a
// trailing partial record left by a crash is discarded silently,
// while a semantically invalid record fails the open with
// ErrLogCorrupted.
func Open(dirPath string, opts ...Option) (*Vector, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.ioManagerCreator == nil {
		return nil, ErrNoIOManager
	}

	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return nil, err
	}

	fileLock := fio.NewFlock(dirPath)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDirIsUsing
	}

	ioManager, err := options.ioManagerCreator(filepath.Join(dirPath, model.LogFileName))
	if err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}

	v := &Vector{
		logFile:  model.OpenLogFile(ioManager),
		fileLock: fileLock,
		options:  options,
	}

	if err = v.load(); err != nil {
		_ = ioManager.Close()
		_ = fileLock.Unlock()
		return nil, err
	}

	v.daemon = newDaemon(v, options.syncPeriod)

	options.logger.Debug("vector opened",
		"dir", dirPath,
		"items", len(v.items),
		"free_ids", options.allocator.Free(),
	)
	return v, nil
}

// load replays the log into memory. Replay stops silently on a clean
// end-of-file or on a torn tail; the tail is cut off so appending
// resumes on a record boundary.
func (v *Vector) load() error {
	size, err := v.logFile.IoManager.Size()
	if err != nil {
		return err
	}

	var (
		offset int64
		header model.RecordHeader
	)

replay:
	for offset < size {
		if size-offset < model.HeaderSize {
			break
		}

		headerData, err := v.logFile.ReadHeader(offset)
		if err != nil {
			return err
		}
		if err = v.options.codec.UnmarshalRecordHeader(headerData, &header); err != nil {
			return err
		}

		switch header.Kind {
		case model.KindAppend:
			if header.Aux > model.MaxValueSize {
				return ErrLogCorrupted
			}
			if size-offset-model.HeaderSize < int64(header.Aux) {
				break replay
			}
			value, err := v.logFile.ReadPayload(offset+model.HeaderSize, int64(header.Aux))
			if err != nil {
				return err
			}
			v.items = append(v.items, model.Item{ID: header.ID, Value: value})
			v.options.allocator.Restore(header.ID)
			offset += model.HeaderSize + int64(header.Aux)

		case model.KindTombstone:
			// a tombstone must still point at the item it erased
			idx := header.Aux
			if idx >= uint64(len(v.items)) || v.items[idx].ID != header.ID {
				return ErrLogCorrupted
			}
			v.items = append(v.items[:idx], v.items[idx+1:]...)
			v.options.allocator.Reclaim(header.ID)
			offset += model.HeaderSize

		default:
			return ErrLogCorrupted
		}
	}

	if offset < size {
		v.options.logger.Warn("discarding torn log tail",
			"boundary", offset,
			"file_size", size,
		)
		if err = v.logFile.IoManager.Truncate(offset); err != nil {
			return err
		}
	}

	v.logFile.WriteOffset = offset
	return nil
}

// PushBack appends value to the end of the sequence. The record is
// handed to the OS write path before PushBack returns; durability to
// stable storage follows asynchronously with the daemon's next sync.
func (v *Vector) PushBack(value []byte) error {
	if len(value) > model.MaxValueSize {
		return ErrBigValue
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}

	id := v.options.allocator.Allocate()
	record := &model.Record{
		Kind:  model.KindAppend,
		ID:    id,
		Aux:   uint64(len(value)),
		Value: value,
	}
	if err := v.appendRecord(record); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	v.items = append(v.items, model.Item{ID: id, Value: stored})

	v.notifyDaemon()
	return nil
}

// Erase removes the item at index. Later items shift down one
// position, so indexes held by the caller must be re-derived.
func (v *Vector) Erase(index int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(v.items) {
		return ErrIndexOutOfRange
	}

	item := v.items[index]
	record := &model.Record{
		Kind: model.KindTombstone,
		ID:   item.ID,
		Aux:  uint64(index),
	}
	if err := v.appendRecord(record); err != nil {
		return err
	}

	v.items = append(v.items[:index], v.items[index+1:]...)
	v.options.allocator.Reclaim(item.ID)

	v.notifyDaemon()
	return nil
}

// At returns the value at index. The slice is the stored backing
// array, not a copy; callers must not modify it.
func (v *Vector) At(index int) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= len(v.items) {
		return nil, ErrIndexOutOfRange
	}
	return v.items[index].Value, nil
}

// Size returns the number of live items.
func (v *Vector) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.items)
}

// Sync forces everything appended so far to stable storage without
// waiting for the daemon.
func (v *Vector) Sync() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	return v.logFile.Sync()
}

// Close stops the durability daemon after one final forced sync,
// closes the log and releases the directory lock. Close is
// idempotent.
func (v *Vector) Close() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	v.mu.Unlock()

	// blocks until the daemon drained with its final sync
	v.daemon.stop()

	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.logFile.Close(); err != nil {
		_ = v.fileLock.Unlock()
		return err
	}
	v.options.logger.Debug("vector closed", "items", len(v.items))
	return v.fileLock.Unlock()
}

// appendRecord must be called with v.mu held.
func (v *Vector) appendRecord(record *model.Record) error {
	data, _, err := v.options.codec.MarshalRecord(record)
	if err != nil {
		return err
	}
	return v.logFile.Write(data)
}

// notifyDaemon must be called with v.mu held.
func (v *Vector) notifyDaemon() {
	if v.options.batchWakeCount <= 0 {
		return
	}
	if v.logFile.WriteTimes%v.options.batchWakeCount == 0 {
		v.daemon.wake()
	}
}

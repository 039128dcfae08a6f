package pvec

import (
	"log/slog"
	"time"

	"github.com/cqkv/pvec/codec"
	"github.com/cqkv/pvec/fio"
	"github.com/cqkv/pvec/idalloc"
)

const (
	defaultSyncPeriod = time.Second

	// defaultBatchWakeCount wakes the durability daemon early every
	// 256 accepted mutations, so bursty writers reach stable storage
	// sooner than the fixed period.
	defaultBatchWakeCount = 256
)

type options struct {
	syncPeriod     time.Duration
	batchWakeCount int64

	ioManagerCreator func(file string) (fio.IOManager, error)
	codec            codec.Codec
	allocator        idalloc.Allocator
	logger           *slog.Logger
}

type Option func(*options)

func defaultOptions() options {
	return options{
		syncPeriod:       defaultSyncPeriod,
		batchWakeCount:   defaultBatchWakeCount,
		ioManagerCreator: defaultIOManagerCreator,
		codec:            codec.NewCodecImpl(),
		allocator:        idalloc.NewFifo(),
		logger:           slog.Default(),
	}
}

var defaultIOManagerCreator = func(file string) (fio.IOManager, error) {
	return fio.NewFileIO(file)
}

func WithIOManagerCreator(fn func(file string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

// WithSyncPeriod sets how often the durability daemon forces buffered
// writes to stable storage. Shorter periods trade I/O overhead for
// durability latency. A non-positive period falls back to the default.
func WithSyncPeriod(period time.Duration) Option {
	return func(o *options) {
		o.syncPeriod = period
	}
}

// WithBatchWakeCount wakes the daemon after every n accepted
// mutations in addition to its fixed period. n <= 0 disables the
// extra wakes.
func WithBatchWakeCount(n int64) Option {
	return func(o *options) {
		o.batchWakeCount = n
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithAllocator(allocator idalloc.Allocator) Option {
	return func(o *options) {
		o.allocator = allocator
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

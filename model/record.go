package model

// RecordKind tags the on-disk record variants.
type RecordKind uint64

const (
	// KindAppend carries a new value; Aux is the payload length.
	KindAppend RecordKind = 1
	// KindTombstone marks an item as erased; Aux is the position it
	// held when the erase happened.
	KindTombstone RecordKind = 2
)

const (
	// HeaderSize is the fixed record header size on disk:
	// kind(8) + id(8) + aux(8), no padding.
	HeaderSize = 24

	// MaxValueSize is the upper bound for a single value payload.
	MaxValueSize = 4096
)

// Record is a single log entry.
type Record struct {
	Kind  RecordKind
	ID    uint64
	Aux   uint64
	Value []byte // only set for KindAppend
}

// RecordHeader is the decoded fixed header of a record.
type RecordHeader struct {
	Kind RecordKind
	ID   uint64
	Aux  uint64
}

// Item is one live element of the sequence.
type Item struct {
	ID    uint64
	Value []byte
}

package codec

import "github.com/cqkv/pvec/model"

// Codec turns records into their wire form and back.
// you can implement your own codec once it keeps the fixed header layout
type Codec interface {
	// MarshalRecord return the wire data and the data size
	MarshalRecord(*model.Record) ([]byte, int64, error)

	// UnmarshalRecordHeader decodes the fixed header; the input must
	// hold at least model.HeaderSize bytes
	UnmarshalRecordHeader([]byte, *model.RecordHeader) error

	// UnmarshalRecord fills a record from its header and payload bytes
	UnmarshalRecord([]byte, *model.RecordHeader, *model.Record) error
}

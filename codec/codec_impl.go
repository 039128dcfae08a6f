package codec

import (
	"encoding/binary"
	"io"

	"github.com/cqkv/pvec/model"
)

type CodecImpl struct{}

func NewCodecImpl() *CodecImpl {
	return &CodecImpl{}
}

/*
default codec, fixed width little endian:
	- header: kind(8) + id(8) + aux(8)
	- payload: aux raw bytes, append records only
	kind | id | aux | payload
aux holds the payload length for append records and the erased
position for tombstones
*/

// MarshalRecord return the wire data and the data size
func (cl *CodecImpl) MarshalRecord(record *model.Record) ([]byte, int64, error) {
	size := model.HeaderSize
	if record.Kind == model.KindAppend {
		size += len(record.Value)
	}

	data := make([]byte, model.HeaderSize, size)
	binary.LittleEndian.PutUint64(data[:8], uint64(record.Kind))
	binary.LittleEndian.PutUint64(data[8:16], record.ID)
	binary.LittleEndian.PutUint64(data[16:24], record.Aux)

	if record.Kind == model.KindAppend {
		data = append(data, record.Value...)
	}

	return data, int64(len(data)), nil
}

func (cl *CodecImpl) UnmarshalRecordHeader(headerData []byte, header *model.RecordHeader) error {
	if len(headerData) < model.HeaderSize {
		return io.ErrUnexpectedEOF
	}

	header.Kind = model.RecordKind(binary.LittleEndian.Uint64(headerData[:8]))
	header.ID = binary.LittleEndian.Uint64(headerData[8:16])
	header.Aux = binary.LittleEndian.Uint64(headerData[16:24])

	return nil
}

func (cl *CodecImpl) UnmarshalRecord(data []byte, header *model.RecordHeader, record *model.Record) error {
	record.Kind = header.Kind
	record.ID = header.ID
	record.Aux = header.Aux

	if header.Kind == model.KindAppend {
		if uint64(len(data)) < header.Aux {
			return io.ErrUnexpectedEOF
		}
		record.Value = data[:header.Aux]
	}
	return nil
}

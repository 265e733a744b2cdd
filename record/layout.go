package record

import (
	"bytes"

	"github.com/arya-analytics/export/internal/binary"
	"github.com/arya-analytics/export/telem"
	"github.com/cockroachdb/errors"
)

// Size is the number of bytes every block occupies regardless of Kind.
const Size = 64

const (
	kindOffset            = 0
	payloadOffset         = 8
	innerKindOffset       = payloadOffset
	scalarValueOffset     = 12
	scalarTimestampOffset = 16
	vectorValuesOffset    = 12
	vectorTimestampOffset = 56
	messageTextOffset     = 12
	float32Size           = 4
)

var (
	ErrInsufficientBuffer  = errors.New("buffer too small for a record block")
	ErrUnknownKind         = errors.New("unknown record kind")
	ErrKindMismatch        = errors.New("record kind does not match payload kind")
	ErrUnterminatedMessage = errors.New("message text is not NUL terminated")
)

// MarshalTo lays r out into the first Size bytes of dest. Any byte in the
// block that r does not use is zeroed. It returns the number of bytes written.
func MarshalTo(r Record, dest []byte) (int, error) {
	if len(dest) < Size {
		return 0, ErrInsufficientBuffer
	}
	if r == nil {
		return 0, errors.Wrap(ErrUnknownKind, "nil record")
	}
	block := dest[:Size]
	clear(block)
	kind := r.Kind()
	binary.PutInt32(block[kindOffset:], int32(kind))
	binary.PutInt32(block[innerKindOffset:], int32(kind))
	switch v := r.(type) {
	case Scalar:
		binary.PutFloat32(block[scalarValueOffset:], v.Value)
		binary.PutInt64(block[scalarTimestampOffset:], int64(v.Timestamp))
	case Vector:
		for i, f := range v.Values {
			binary.PutFloat32(block[vectorValuesOffset+i*float32Size:], f)
		}
		binary.PutInt64(block[vectorTimestampOffset:], int64(v.Timestamp))
	case Message:
		if err := v.Validate(); err != nil {
			return 0, err
		}
		copy(block[messageTextOffset:messageTextOffset+MessageCapacity], v.Text)
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%T", r)
	}
	return Size, nil
}

// Marshal returns r as a freshly allocated block.
func Marshal(r Record) ([]byte, error) {
	b := make([]byte, Size)
	_, err := MarshalTo(r, b)
	return b, err
}

// Encode lays out every record back to back in a single buffer of
// len(records) * Size bytes.
func Encode(records []Record) ([]byte, error) {
	b := make([]byte, len(records)*Size)
	for i, r := range records {
		if _, err := MarshalTo(r, b[i*Size:]); err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
	}
	return b, nil
}

// Unmarshal decodes the block at the start of src.
func Unmarshal(src []byte) (Record, error) {
	if len(src) < Size {
		return nil, ErrInsufficientBuffer
	}
	block := src[:Size]
	kind := Kind(binary.Int32(block[kindOffset:]))
	if !kind.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int32(kind))
	}
	if inner := Kind(binary.Int32(block[innerKindOffset:])); inner != kind {
		return nil, errors.Wrapf(ErrKindMismatch, "%s != %s", kind, inner)
	}
	switch kind {
	case KindScalar:
		return Scalar{
			Value:     binary.Float32(block[scalarValueOffset:]),
			Timestamp: telem.TimeStamp(binary.Int64(block[scalarTimestampOffset:])),
		}, nil
	case KindVector:
		var v Vector
		for i := range v.Values {
			v.Values[i] = binary.Float32(block[vectorValuesOffset+i*float32Size:])
		}
		v.Timestamp = telem.TimeStamp(binary.Int64(block[vectorTimestampOffset:]))
		return v, nil
	default:
		text := block[messageTextOffset : messageTextOffset+MessageCapacity]
		end := bytes.IndexByte(text, 0)
		if end < 0 {
			return nil, ErrUnterminatedMessage
		}
		return Message{Text: string(text[:end])}, nil
	}
}

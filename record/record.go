package record

import (
	"fmt"
	"strings"

	"github.com/arya-analytics/export/telem"
	"github.com/cockroachdb/errors"
)

// |||||| KIND ||||||

// Kind is the discriminant written at the head of every block.
type Kind int32

const (
	KindScalar Kind = iota + 1
	KindVector
	KindMessage
)

func (k Kind) Valid() bool {
	return k >= KindScalar && k <= KindMessage
}

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMessage:
		return "message"
	default:
		return fmt.Sprintf("kind(%d)", int32(k))
	}
}

// |||||| RECORD ||||||

// Record is one of Scalar, Vector or Message. The set of variants is closed.
type Record interface {
	Kind() Kind
	fmt.Stringer
	record()
}

// Scalar is a single reading.
type Scalar struct {
	Value     float32
	Timestamp telem.TimeStamp
}

func (Scalar) Kind() Kind { return KindScalar }

func (s Scalar) String() string {
	return fmt.Sprintf("Scalar { val: %v, timestamp: %v }", s.Value, s.Timestamp)
}

func (Scalar) record() {}

// VectorLen is the number of readings a Vector carries.
const VectorLen = 10

// Vector is a fixed-length snapshot of readings.
type Vector struct {
	Values    [VectorLen]float32
	Timestamp telem.TimeStamp
}

func (Vector) Kind() Kind { return KindVector }

func (v Vector) String() string {
	return fmt.Sprintf("Vector { val: %v, timestamp: %v }", v.Values, v.Timestamp)
}

func (Vector) record() {}

const (
	// MessageCapacity is the size of the text buffer in a Message block,
	// terminator included.
	MessageCapacity = 21
	// MaxMessageLen is the longest text a Message can hold.
	MaxMessageLen = MessageCapacity - 1
)

var (
	ErrMessageTooLong     = errors.Newf("message exceeds %d bytes", MaxMessageLen)
	ErrMessageContainsNUL = errors.New("message contains a NUL byte")
)

// Message is a short text record.
type Message struct {
	Text string
}

// NewMessage returns a Message after checking that text fits in a block.
func NewMessage(text string) (Message, error) {
	m := Message{Text: text}
	return m, m.Validate()
}

func (m Message) Validate() error {
	if len(m.Text) > MaxMessageLen {
		return errors.Wrapf(ErrMessageTooLong, "%q", m.Text)
	}
	if strings.IndexByte(m.Text, 0) >= 0 {
		return errors.Wrapf(ErrMessageContainsNUL, "%q", m.Text)
	}
	return nil
}

func (Message) Kind() Kind { return KindMessage }

func (m Message) String() string {
	return fmt.Sprintf("Message { message: %q }", m.Text)
}

func (Message) record() {}

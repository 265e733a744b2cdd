package record

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Writer appends blocks to an underlying sink in the order they are given.
type Writer struct {
	w       io.Writer
	block   [Size]byte
	written int64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends a single block.
func (w *Writer) Write(r Record) error {
	if _, err := MarshalTo(r, w.block[:]); err != nil {
		return err
	}
	return w.flush(w.block[:])
}

// WriteAll encodes every record and hands the whole run to the sink in one
// write. It returns the number of bytes the sink accepted.
func (w *Writer) WriteAll(records []Record) (int64, error) {
	start := w.written
	if len(records) == 0 {
		return 0, nil
	}
	b, err := Encode(records)
	if err != nil {
		return 0, err
	}
	err = w.flush(b)
	return w.written - start, err
}

// Written returns the total number of bytes the sink has accepted.
func (w *Writer) Written() int64 { return w.written }

func (w *Writer) flush(b []byte) error {
	n, err := w.w.Write(b)
	w.written += int64(n)
	if err != nil {
		return errors.Wrap(err, "error writing record block")
	}
	if n != len(b) {
		return errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(b))
	}
	return nil
}

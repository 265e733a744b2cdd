package record

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

// Reader decodes consecutive blocks from an underlying source.
type Reader struct {
	r     io.Reader
	block [Size]byte
	read  int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read decodes the next block. It returns io.EOF when the source ends on a
// block boundary and io.ErrUnexpectedEOF when it ends inside one.
func (r *Reader) Read() (Record, error) {
	if _, err := io.ReadFull(r.r, r.block[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "error reading block %d", r.read)
	}
	rec, err := Unmarshal(r.block[:])
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding block %d", r.read)
	}
	r.read++
	return rec, nil
}

// Count returns the number of blocks decoded so far.
func (r *Reader) Count() int { return r.read }

// Seq iterates over the remaining blocks. Iteration stops after the first
// error, which is yielded alongside a nil record. A clean end of input is not
// yielded.
func (r *Reader) Seq() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll decodes every remaining block.
func (r *Reader) ReadAll() ([]Record, error) {
	records := make([]Record, 0, 1)
	for rec, err := range r.Seq() {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

package export

import (
	"io"
	"math"
	"os"

	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/catalog"
	"github.com/arya-analytics/export/generate"
	"github.com/arya-analytics/export/pk"
	"github.com/arya-analytics/export/record"
	"github.com/arya-analytics/export/telem"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// MaxCount is the largest number of records a single run will size a buffer
// for.
const MaxCount = math.MaxInt32 / record.Size

// Summary describes a completed run.
type Summary struct {
	Key pk.PK
	// Path is the file the run wrote.
	Path string
	// Count is the number of records generated and written.
	Count int
	// Bytes is the number of bytes the sink accepted.
	Bytes int64
	// Digest is the xxhash64 of everything written.
	Digest uint64
	// Start is the wall-clock time the run began.
	Start telem.TimeStamp
	Kinds map[record.Kind]int
}

// Entry converts the summary into the form it is catalogued in.
func (s Summary) Entry() catalog.Entry {
	return catalog.Entry{
		Key:       s.Key,
		Path:      s.Path,
		Count:     s.Count,
		BlockSize: record.Size,
		Digest:    s.Digest,
		Start:     s.Start,
		Scalars:   s.Kinds[record.KindScalar],
		Vectors:   s.Kinds[record.KindVector],
		Messages:  s.Kinds[record.KindMessage],
	}
}

// Run generates n records and writes them to path as n back-to-back blocks,
// truncating anything already there. Every record is generated before the
// file is opened. On success the file holds exactly n * record.Size bytes.
//
//	// Write the default hundred records to ./data.
//	s, err := export.Run("data", 100)
//
//	// Keep the file in memory and register the run in a catalog.
//	s, err := export.Run("data", 100, export.MemBacked(), export.WithCatalog(c))
//
// Any failure is returned as an Error and ends the run.
func Run(path string, n int, opts ...Option) (Summary, error) {
	o := newOptions(opts...)
	s := Summary{Key: pk.New(), Path: path, Count: n, Start: telem.Now()}

	// |||||| VALIDATE ||||||

	if n < 0 {
		return s, newSimpleError(ErrInvalidCount, "record count must not be negative, got %d", n)
	}
	if n > MaxCount {
		return s, newSimpleError(ErrAllocate, "cannot allocate %d records, a run holds at most %d", n, MaxCount)
	}
	if o.tables != nil {
		if err := o.tables.Validate(); err != nil {
			return s, newDerivedError(ErrInvalidTables, err)
		}
	}

	m := newMetrics(o.exp)

	// |||||| GENERATE ||||||

	records := generate.New(o.gen...).Generate(n)
	s.Kinds = make(map[record.Kind]int, 3)
	for _, r := range records {
		s.Kinds[r.Kind()]++
	}

	// |||||| WRITE ||||||

	f, err := o.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return s, newWrappedError(ErrOpen, err, "error opening %q", path)
	}
	h := xxhash.New()
	w := record.NewWriter(io.MultiWriter(f, h))
	m.write.Start()
	s.Bytes, err = w.WriteAll(records)
	m.write.Stop()
	m.bytes.Record(s.Bytes)
	if err != nil {
		return s, newWrappedError(ErrWrite, errors.CombineErrors(err, f.Close()), "error writing %q", path)
	}
	if err := f.Sync(); err != nil {
		return s, newWrappedError(ErrWrite, errors.CombineErrors(err, f.Close()), "error syncing %q", path)
	}
	if err := f.Close(); err != nil {
		return s, newWrappedError(ErrWrite, err, "error closing %q", path)
	}
	s.Digest = h.Sum64()

	// |||||| CATALOG ||||||

	if o.catalog != nil {
		if err := o.catalog.Register(s.Entry()); err != nil {
			return s, newDerivedError(ErrCatalog, err)
		}
	}

	o.logger.Info("export complete",
		zap.Stringer("key", s.Key),
		zap.String("path", path),
		zap.Int("count", n),
		zap.Int64("bytes", s.Bytes),
		zap.Uint64("digest", s.Digest),
	)
	return s, nil
}

// |||||| METRICS ||||||

type metrics struct {
	write alamos.Duration
	bytes alamos.Metric[int64]
}

func newMetrics(exp alamos.Experiment) metrics {
	return metrics{
		write: alamos.NewGaugeDuration(exp, "write"),
		bytes: alamos.NewGauge[int64](exp, "bytes"),
	}
}

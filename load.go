package export

import (
	"io"

	"github.com/arya-analytics/export/catalog"
	"github.com/arya-analytics/export/record"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Load decodes every block in the file at path.
func Load(path string, opts ...Option) ([]record.Record, error) {
	o := newOptions(opts...)
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, newWrappedError(ErrOpen, err, "error opening %q", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			o.logger.Warn("error closing file", zap.String("path", path), zap.Error(err))
		}
	}()
	records, err := record.NewReader(f).ReadAll()
	if err != nil {
		return records, newWrappedError(ErrCorrupt, err, "error loading %q", path)
	}
	o.logger.Debug("loaded file", zap.String("path", path), zap.Int("count", len(records)))
	return records, nil
}

// Verify checks that the file at path is the one described by e: it must
// hold e.Count blocks of the current block size whose contents hash to
// e.Digest.
func Verify(path string, e catalog.Entry, opts ...Option) error {
	o := newOptions(opts...)
	if e.BlockSize != record.Size {
		return newSimpleError(ErrCorrupt, "run %s was written with %d-byte blocks, expected %d", e.Key, e.BlockSize, record.Size)
	}
	f, err := o.fs.Open(path)
	if err != nil {
		return newWrappedError(ErrOpen, err, "error opening %q", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			o.logger.Warn("error closing file", zap.String("path", path), zap.Error(err))
		}
	}()
	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return newWrappedError(ErrCorrupt, err, "error reading %q", path)
	}
	if n != e.Size() {
		return newSimpleError(ErrCorrupt, "%q holds %d bytes, run %s wrote %d", path, n, e.Key, e.Size())
	}
	if d := h.Sum64(); d != e.Digest {
		return newSimpleError(ErrCorrupt, "%q has digest %016x, run %s wrote %016x", path, d, e.Key, e.Digest)
	}
	o.logger.Debug("verified file", zap.String("path", path), zap.Stringer("key", e.Key))
	return nil
}

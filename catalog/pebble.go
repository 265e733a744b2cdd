package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// PebbleEngine implements Engine and wraps a Pebble DB instance.
type PebbleEngine struct {
	DB *pebble.DB
}

// OpenPebble opens a Pebble store in dirname. A nil fs uses the host
// filesystem. Pass vfs.NewMem() for a store that lives in memory.
func OpenPebble(dirname string, fs vfs.FS) (*PebbleEngine, error) {
	opts := &pebble.Options{}
	if fs != nil {
		opts.FS = fs
	}
	db, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening pebble catalog at %q", dirname)
	}
	return &PebbleEngine{DB: db}, nil
}

// Get implements the Engine interface.
func (pe *PebbleEngine) Get(key []byte) ([]byte, error) {
	v, c, err := pe.DB.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), v...)
	return out, c.Close()
}

// Set implements the Engine interface.
func (pe *PebbleEngine) Set(key, value []byte) error {
	return pe.DB.Set(key, value, pebble.Sync)
}

// Delete implements the Engine interface.
func (pe *PebbleEngine) Delete(key []byte) error {
	return pe.DB.Delete(key, pebble.Sync)
}

// Iterate implements the Engine interface.
func (pe *PebbleEngine) Iterate(prefix []byte, f func(key, value []byte) error) (err error) {
	iter, err := pe.DB.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upperBound(prefix)})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, iter.Close())
	}()
	for iter.First(); iter.Valid(); iter.Next() {
		if err := f(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

// Close implements the Engine interface.
func (pe *PebbleEngine) Close() error {
	return pe.DB.Close()
}

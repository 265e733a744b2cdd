// Package catalog keeps a persistent index of export runs so that a file can
// later be checked against what was written. Entries live in a key-value
// Engine. Pebble and bbolt implementations are provided.
package catalog

import (
	"github.com/arya-analytics/export/pk"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var ErrZeroKey = errors.New("catalog entry has no key")

type Option func(*Catalog)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// Catalog is safe for concurrent use if its Engine is.
type Catalog struct {
	engine Engine
	logger *zap.Logger
}

// New returns a Catalog backed by engine. Closing the Catalog closes engine.
func New(engine Engine, opts ...Option) *Catalog {
	c := &Catalog{engine: engine}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Register stores e under e.Key, replacing any previous entry with that key.
func (c *Catalog) Register(e Entry) error {
	if e.Key.IsZero() {
		return ErrZeroKey
	}
	b, err := e.marshal()
	if err != nil {
		return err
	}
	if err := c.engine.Set(entryKey(e.Key), b); err != nil {
		return errors.Wrapf(err, "error registering run %s", e.Key)
	}
	c.logger.Debug("registered run",
		zap.Stringer("key", e.Key),
		zap.String("path", e.Path),
		zap.Int("count", e.Count),
	)
	return nil
}

// Get returns the entry for key, or ErrNotFound.
func (c *Catalog) Get(key pk.PK) (Entry, error) {
	k := entryKey(key)
	b, err := c.engine.Get(k)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "run %s", key)
	}
	return unmarshalEntry(k, b)
}

// List returns every entry ordered by key.
func (c *Catalog) List() ([]Entry, error) {
	var entries []Entry
	err := c.engine.Iterate([]byte{byte(entryPrefix)}, func(k, v []byte) error {
		e, err := unmarshalEntry(k, v)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// Delete removes the entry for key. It does not touch the run's file.
func (c *Catalog) Delete(key pk.PK) error {
	return c.engine.Delete(entryKey(key))
}

func (c *Catalog) Close() error {
	return c.engine.Close()
}

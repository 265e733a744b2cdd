package catalog

import (
	"bytes"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var boltBucket = []byte("catalog")

// BoltEngine implements Engine on a single bucket of a bbolt file.
type BoltEngine struct {
	DB *bbolt.DB
}

// OpenBolt opens or creates the bbolt file at path.
func OpenBolt(path string) (*BoltEngine, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening bolt catalog at %q", path)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		return nil, errors.CombineErrors(err, db.Close())
	}
	return &BoltEngine{DB: db}, nil
}

// Get implements the Engine interface.
func (be *BoltEngine) Get(key []byte) (value []byte, err error) {
	err = be.DB.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(boltBucket).Get(key)
		if v == nil {
			return ErrNotFound
		}
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

// Set implements the Engine interface.
func (be *BoltEngine) Set(key, value []byte) error {
	return be.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put(key, value)
	})
}

// Delete implements the Engine interface.
func (be *BoltEngine) Delete(key []byte) error {
	return be.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Delete(key)
	})
}

// Iterate implements the Engine interface.
func (be *BoltEngine) Iterate(prefix []byte, f func(key, value []byte) error) error {
	return be.DB.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if err := f(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close implements the Engine interface.
func (be *BoltEngine) Close() error {
	return be.DB.Close()
}

package catalog

import "github.com/cockroachdb/errors"

// ErrNotFound is returned when a key has no value in an Engine or Catalog.
var ErrNotFound = errors.New("not found")

// Engine is the key-value store a Catalog persists entries in.
type Engine interface {
	// Set writes value under key, overwriting any previous value.
	Set(key, value []byte) error
	// Get returns a copy of the value under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error
	// Iterate calls f for every key with the given prefix in ascending byte
	// order. The slices passed to f are only valid for the duration of the
	// call. Iteration stops at the first error f returns.
	Iterate(prefix []byte, f func(key, value []byte) error) error
	Close() error
}

type Prefix byte

func PrefixedKey(p Prefix, key []byte) []byte {
	return append([]byte{byte(p)}, key...)
}

// upperBound returns the smallest key greater than every key with prefix p.
func upperBound(p []byte) []byte {
	end := append([]byte(nil), p...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

var ErrUnknownEngine = errors.New("unknown catalog engine")

// OpenEngine opens the named engine ("pebble" or "bolt") at location on the
// host filesystem. Pebble treats location as a directory, bolt as a file.
func OpenEngine(name, location string) (Engine, error) {
	switch name {
	case "pebble":
		e, err := OpenPebble(location, nil)
		if err != nil {
			return nil, err
		}
		return e, nil
	case "bolt":
		e, err := OpenBolt(location)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
}

package catalog

import (
	"github.com/arya-analytics/export/pk"
	"github.com/arya-analytics/export/telem"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry describes one export run.
type Entry struct {
	Key pk.PK `msgpack:"-"`
	// Path is where the run's file was written.
	Path string `msgpack:"p"`
	// Count is the number of blocks in the file.
	Count int `msgpack:"n"`
	// BlockSize is the size of every block in bytes.
	BlockSize int `msgpack:"b"`
	// Digest is the xxhash64 of the file contents.
	Digest uint64 `msgpack:"d"`
	// Start is when the run began generating records.
	Start    telem.TimeStamp `msgpack:"s"`
	Scalars  int             `msgpack:"ks"`
	Vectors  int             `msgpack:"kv"`
	Messages int             `msgpack:"km"`
}

// Size returns the number of bytes the run's file should hold.
func (e Entry) Size() int64 {
	return int64(e.Count) * int64(e.BlockSize)
}

const entryPrefix Prefix = 'r'

func entryKey(key pk.PK) []byte {
	return PrefixedKey(entryPrefix, key.Bytes())
}

func (e Entry) marshal() ([]byte, error) {
	b, err := msgpack.Marshal(&e)
	return b, errors.Wrapf(err, "error encoding catalog entry %s", e.Key)
}

func unmarshalEntry(key, value []byte) (e Entry, err error) {
	if e.Key, err = pk.FromBytes(key[1:]); err != nil {
		return e, err
	}
	err = msgpack.Unmarshal(value, &e)
	return e, errors.Wrapf(err, "error decoding catalog entry %s", e.Key)
}

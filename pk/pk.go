// Package pk provides the keys export runs are catalogued under.
package pk

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type PK uuid.UUID

const Size = 16

var Zero PK

func New() PK {
	return PK(uuid.New())
}

func FromBytes(b []byte) (PK, error) {
	uid, err := uuid.FromBytes(b)
	if err != nil {
		return Zero, errors.Wrap(err, "invalid key bytes")
	}
	return PK(uid), nil
}

// Parse reads a key from its canonical string form.
func Parse(s string) (PK, error) {
	uid, err := uuid.Parse(s)
	if err != nil {
		return Zero, errors.Wrapf(err, "invalid key %q", s)
	}
	return PK(uid), nil
}

func (k PK) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, k[:])
	return b
}

func (k PK) IsZero() bool { return k == Zero }

func (k PK) String() string {
	return uuid.UUID(k).String()
}

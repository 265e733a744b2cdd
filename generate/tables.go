package generate

import (
	"github.com/arya-analytics/export/record"
	"github.com/cockroachdb/errors"
)

// Tables are the read-only sources a Generator draws values from.
type Tables struct {
	// Floats feeds Scalar records one slot at a time and is copied whole into
	// every Vector record.
	Floats [record.VectorLen]float32
	// Strings feeds Message records one slot at a time.
	Strings []string
}

var (
	defaultFloats  = [record.VectorLen]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	defaultStrings = []string{
		"Bella",
		"Test",
		"Pippo",
		"Pluto",
		"42",
		"AnswerToTheUniverse",
		"E tutto il resto...",
	}
)

// DefaultTables returns a copy of the built-in source tables.
func DefaultTables() Tables {
	return Tables{
		Floats:  defaultFloats,
		Strings: append([]string(nil), defaultStrings...),
	}
}

var ErrEmptyStringTable = errors.New("string table is empty")

// Validate checks that every string in the table fits in a Message block.
func (t Tables) Validate() error {
	if len(t.Strings) == 0 {
		return ErrEmptyStringTable
	}
	for i, s := range t.Strings {
		if _, err := record.NewMessage(s); err != nil {
			return errors.Wrapf(err, "string table slot %d", i)
		}
	}
	return nil
}

// Package binary fixes the byte order used for every block the exporter
// writes. Blocks are a local dump format, so numbers stay in host order.
package binary

import (
	"encoding/binary"
	"math"
)

// Encoding returns the byte order blocks are laid out in.
func Encoding() binary.ByteOrder {
	return binary.NativeEndian
}

func PutInt32(b []byte, v int32) { Encoding().PutUint32(b, uint32(v)) }

func Int32(b []byte) int32 { return int32(Encoding().Uint32(b)) }

func PutInt64(b []byte, v int64) { Encoding().PutUint64(b, uint64(v)) }

func Int64(b []byte) int64 { return int64(Encoding().Uint64(b)) }

func PutFloat32(b []byte, v float32) { Encoding().PutUint32(b, math.Float32bits(v)) }

func Float32(b []byte) float32 { return math.Float32frombits(Encoding().Uint32(b)) }

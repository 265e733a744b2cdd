package binary_test

import (
	stdbinary "encoding/binary"

	"github.com/arya-analytics/export/internal/binary"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Binary", func() {
	It("Should use the host byte order", func() {
		Expect(binary.Encoding()).To(Equal(stdbinary.ByteOrder(stdbinary.NativeEndian)))
	})
	It("Should round trip fixed width values in place", func() {
		b := make([]byte, 8)
		binary.PutInt32(b, -7)
		Expect(binary.Int32(b)).To(Equal(int32(-7)))
		binary.PutInt64(b, -1<<40)
		Expect(binary.Int64(b)).To(Equal(int64(-1 << 40)))
		binary.PutFloat32(b, 3.5)
		Expect(binary.Float32(b)).To(Equal(float32(3.5)))
	})
})

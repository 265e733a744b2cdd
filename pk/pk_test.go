package pk_test

import (
	"github.com/arya-analytics/export/pk"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PK", func() {
	It("Should generate distinct keys", func() {
		Expect(pk.New()).ToNot(Equal(pk.New()))
		Expect(pk.New().IsZero()).To(BeFalse())
		Expect(pk.Zero.IsZero()).To(BeTrue())
	})
	It("Should round trip through bytes", func() {
		k := pk.New()
		b := k.Bytes()
		Expect(b).To(HaveLen(pk.Size))
		back, err := pk.FromBytes(b)
		Expect(err).ToNot(HaveOccurred())
		Expect(back).To(Equal(k))
	})
	It("Should round trip through its string form", func() {
		k := pk.New()
		back, err := pk.Parse(k.String())
		Expect(err).ToNot(HaveOccurred())
		Expect(back).To(Equal(k))
	})
	It("Should reject malformed input", func() {
		_, err := pk.FromBytes([]byte{1, 2, 3})
		Expect(err).To(HaveOccurred())
		_, err = pk.Parse("not-a-key")
		Expect(err).To(MatchError(ContainSubstring(`invalid key "not-a-key"`)))
	})
})

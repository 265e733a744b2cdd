package export_test

import (
	"io"
	"os"

	"github.com/arya-analytics/export"
	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/catalog"
	"github.com/arya-analytics/export/generate"
	"github.com/arya-analytics/export/record"
	"github.com/arya-analytics/export/telem"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

// shortFs hands out files that accept at most limit bytes per write.
type shortFs struct {
	afero.Fs
	limit int
}

func (s shortFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := s.Fs.OpenFile(name, flag, perm)
	return shortFile{File: f, limit: s.limit}, err
}

type shortFile struct {
	afero.File
	limit int
}

func (f shortFile) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		p = p[:f.limit]
	}
	return f.File.Write(p)
}

var _ = Describe("Run", func() {
	var (
		fs   afero.Fs
		opts []export.Option
	)
	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		opts = []export.Option{export.WithFS(fs), export.WithClock(telem.FixedClock(1_700_000_000))}
	})
	size := func(path string) int64 {
		info, err := fs.Stat(path)
		Expect(err).ToNot(HaveOccurred())
		return info.Size()
	}
	Describe("Output size", func() {
		DescribeTable("Should write exactly one block per record",
			func(n int) {
				s, err := export.Run("data", n, opts...)
				Expect(err).ToNot(HaveOccurred())
				Expect(s.Count).To(Equal(n))
				Expect(s.Bytes).To(Equal(int64(n * record.Size)))
				Expect(size("data")).To(Equal(int64(n * record.Size)))
			},
			Entry("no records", 0),
			Entry("one record", 1),
			Entry("a partial cycle", 5),
			Entry("the default count", 100),
		)
		It("Should truncate a previous, longer file", func() {
			_, err := export.Run("data", 100, opts...)
			Expect(err).ToNot(HaveOccurred())
			_, err = export.Run("data", 3, opts...)
			Expect(err).ToNot(HaveOccurred())
			Expect(size("data")).To(Equal(int64(3 * record.Size)))
		})
	})
	Describe("Round trip", func() {
		It("Should load back exactly what was generated", func() {
			_, err := export.Run("data", 100, opts...)
			Expect(err).ToNot(HaveOccurred())
			got, err := export.Load("data", opts...)
			Expect(err).ToNot(HaveOccurred())
			want := generate.New(generate.WithClock(telem.FixedClock(1_700_000_000))).Generate(100)
			Expect(got).To(Equal(want))
		})
		It("Should produce the first cycle in order", func() {
			_, err := export.Run("data", 3, opts...)
			Expect(err).ToNot(HaveOccurred())
			got, err := export.Load("data", opts...)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal([]record.Record{
				record.Scalar{Value: 1, Timestamp: 1_700_000_000},
				record.Vector{Values: generate.DefaultTables().Floats, Timestamp: 1_700_000_000},
				record.Message{Text: "Bella"},
			}))
		})
		It("Should count records by kind", func() {
			s, err := export.Run("data", 100, opts...)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Kinds).To(Equal(map[record.Kind]int{
				record.KindScalar:  34,
				record.KindVector:  33,
				record.KindMessage: 33,
			}))
		})
		It("Should keep a memory backed file between calls sharing the option", func() {
			mem := export.MemBacked()
			_, err := export.Run("data", 4, mem)
			Expect(err).ToNot(HaveOccurred())
			got, err := export.Load("data", mem)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(HaveLen(4))
			Expect(afero.Exists(fs, "data")).To(BeFalse())
		})
		It("Should give every run a distinct key", func() {
			a, err := export.Run("a", 1, opts...)
			Expect(err).ToNot(HaveOccurred())
			b, err := export.Run("b", 1, opts...)
			Expect(err).ToNot(HaveOccurred())
			Expect(a.Key).ToNot(Equal(b.Key))
		})
	})
	Describe("Errors", func() {
		It("Should refuse a negative count", func() {
			_, err := export.Run("data", -1, opts...)
			Expect(err).To(MatchError(export.Error{Type: export.ErrInvalidCount}))
			Expect(afero.Exists(fs, "data")).To(BeFalse())
		})
		It("Should refuse a count it cannot allocate for", func() {
			_, err := export.Run("data", export.MaxCount+1, opts...)
			Expect(err).To(MatchError(export.Error{Type: export.ErrAllocate}))
		})
		It("Should refuse tables that cannot be written", func() {
			opts = append(opts, export.WithTables(generate.Tables{}))
			_, err := export.Run("data", 3, opts...)
			Expect(err).To(MatchError(export.Error{Type: export.ErrInvalidTables}))
			Expect(err).To(MatchError(generate.ErrEmptyStringTable))
		})
		It("Should fail before writing when the sink cannot be opened", func() {
			_, err := export.Run("data", 3, export.WithFS(afero.NewReadOnlyFs(fs)))
			Expect(err).To(MatchError(export.Error{Type: export.ErrOpen}))
			Expect(afero.Exists(fs, "data")).To(BeFalse())
		})
		It("Should fail on a short write and leave the partial file", func() {
			_, err := export.Run("data", 3, export.WithFS(shortFs{Fs: fs, limit: 100}))
			Expect(err).To(MatchError(export.Error{Type: export.ErrWrite}))
			Expect(errors.Is(err, io.ErrShortWrite)).To(BeTrue())
			Expect(size("data")).To(Equal(int64(100)))
		})
	})
	Describe("Catalog", func() {
		It("Should register the run with its digest", func() {
			engine, err := catalog.OpenPebble("", vfs.NewMem())
			Expect(err).ToNot(HaveOccurred())
			c := catalog.New(engine)
			defer func() { Expect(c.Close()).To(Succeed()) }()
			s, err := export.Run("data", 10, append(opts, export.WithCatalog(c))...)
			Expect(err).ToNot(HaveOccurred())
			e, err := c.Get(s.Key)
			Expect(err).ToNot(HaveOccurred())
			Expect(e).To(Equal(s.Entry()))
			Expect(e.Size()).To(Equal(s.Bytes))
			Expect(export.Verify("data", e, opts...)).To(Succeed())
		})
	})
	Describe("Metrics", func() {
		It("Should report generation and write measurements", func() {
			exp := alamos.New("test")
			s, err := export.Run("data", 9, append(opts, export.WithExperiment(exp))...)
			Expect(err).ToNot(HaveOccurred())
			r := exp.Report()["export"].(alamos.Report)
			Expect(r["bytes"]).To(HaveKeyWithValue("value", s.Bytes))
			Expect(r).To(HaveKey("write"))
			Expect(r["generate"]).To(HaveKey("scalar"))
		})
	})
})

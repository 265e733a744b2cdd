package alamos_test

import (
	"time"

	"github.com/arya-analytics/export/alamos"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Metric", func() {
	var (
		exp alamos.Experiment
	)
	BeforeEach(func() {
		exp = alamos.New("test")
	})
	Describe("Series", func() {
		It("Should show up in the list of metrics", func() {
			alamos.NewSeries[int8](exp, "test.series")
			_, ok := exp.Metrics()["test.series"]
			Expect(ok).To(BeTrue())
		})
		It("Should record values to the series", func() {
			series := alamos.NewSeries[float64](exp, "test.series")
			series.Record(1.0)
			series.Record(2.0)
			Expect(series.Values()).To(Equal([]float64{1, 2}))
			Expect(series.Count()).To(Equal(2))
		})
	})
	Describe("Gauge", func() {
		It("Should keep the latest value and count every record", func() {
			gauge := alamos.NewGauge[float64](exp, "test.gauge")
			gauge.Record(1)
			gauge.Record(3)
			Expect(gauge.Values()).To(Equal([]float64{3}))
			Expect(gauge.Count()).To(Equal(2))
		})
		It("Should report no values before the first record", func() {
			Expect(alamos.NewGauge[int](exp, "test.gauge").Values()).To(BeEmpty())
		})
	})
	Describe("Duration", func() {
		It("Should record the time between Start and Stop", func() {
			d := alamos.NewSeriesDuration(exp, "test.duration")
			d.Start()
			time.Sleep(time.Millisecond)
			elapsed := d.Stop()
			Expect(elapsed).To(BeNumerically(">=", time.Millisecond))
			Expect(d.Values()).To(Equal([]time.Duration{elapsed}))
		})
		It("Should panic when stopped before it was started", func() {
			d := alamos.NewGaugeDuration(exp, "test.duration")
			Expect(func() { d.Stop() }).To(Panic())
		})
	})
	Describe("Nil experiment", func() {
		It("Should hand out metrics that do nothing", func() {
			g := alamos.NewGauge[int](nil, "gauge")
			g.Record(1)
			Expect(g.Count()).To(BeZero())
			s := alamos.NewSeries[int](nil, "series")
			s.Record(1)
			Expect(s.Values()).To(BeNil())
			d := alamos.NewGaugeDuration(nil, "duration")
			d.Start()
			d.Start()
			Expect(d.Stop()).To(BeZero())
			Expect(alamos.Sub(nil, "sub")).To(BeNil())
		})
	})
})

// Package generate produces the synthetic record sequence the exporter writes.
//
// The record at index i is chosen by i mod 3: a Scalar drawn from the float
// table, a Vector holding the whole float table, or a Message drawn from the
// string table. Each table has its own wrap-around cursor held by the
// Generator, so two generators never share state.
package generate

import (
	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/record"
	"go.uber.org/zap"
)

// Generator is not safe for concurrent use.
type Generator struct {
	*options
	floatCursor  int
	stringCursor int
	metrics      metrics
}

// New returns a Generator with both cursors at the start of their tables.
// It panics if tables provided through WithTables fail validation.
func New(opts ...Option) *Generator {
	o := newOptions(opts...)
	if err := o.tables.Validate(); err != nil {
		panic(err)
	}
	return &Generator{options: o, metrics: newMetrics(o.exp)}
}

// Next returns the record for index i and advances whichever cursor it
// consumes. The kind follows i mod 3 for negative indices too, so -1 is a
// Message and -2 a Vector.
func (g *Generator) Next(i int) record.Record {
	var r record.Record
	switch ((i % 3) + 3) % 3 {
	case 0:
		r = g.scalar()
	case 1:
		r = g.vector()
	default:
		r = g.message()
	}
	g.metrics.kinds[r.Kind()].Record(i)
	g.logger.Debug("generated record", zap.Int("index", i), zap.Stringer("kind", r.Kind()))
	return r
}

// Generate returns n records in index order, starting from index 0. It
// returns an empty slice when n <= 0.
func (g *Generator) Generate(n int) []record.Record {
	g.metrics.generate.Start()
	defer g.metrics.generate.Stop()
	if n <= 0 {
		return []record.Record{}
	}
	records := make([]record.Record, n)
	for i := range records {
		records[i] = g.Next(i)
	}
	return records
}

// Cursors returns the next float-table and string-table slots to be drawn.
func (g *Generator) Cursors() (float, str int) {
	return g.floatCursor, g.stringCursor
}

// Tables returns the source tables the generator draws from.
func (g *Generator) Tables() Tables {
	t := *g.tables
	t.Strings = append([]string(nil), t.Strings...)
	return t
}

func (g *Generator) scalar() record.Scalar {
	s := record.Scalar{Value: g.tables.Floats[g.floatCursor], Timestamp: g.clock()}
	g.floatCursor = (g.floatCursor + 1) % len(g.tables.Floats)
	return s
}

func (g *Generator) vector() record.Vector {
	return record.Vector{Values: g.tables.Floats, Timestamp: g.clock()}
}

func (g *Generator) message() record.Message {
	m := record.Message{Text: g.tables.Strings[g.stringCursor]}
	g.stringCursor = (g.stringCursor + 1) % len(g.tables.Strings)
	return m
}

// |||||| METRICS ||||||

type metrics struct {
	generate alamos.Duration
	kinds    map[record.Kind]alamos.Metric[int]
}

func newMetrics(exp alamos.Experiment) metrics {
	return metrics{
		generate: alamos.NewGaugeDuration(exp, "duration"),
		kinds: map[record.Kind]alamos.Metric[int]{
			record.KindScalar:  alamos.NewGauge[int](exp, record.KindScalar.String()),
			record.KindVector:  alamos.NewGauge[int](exp, record.KindVector.String()),
			record.KindMessage: alamos.NewGauge[int](exp, record.KindMessage.String()),
		},
	}
}

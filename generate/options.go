package generate

import (
	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/telem"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	tables *Tables
	clock  telem.Clock
	exp    alamos.Experiment
	logger *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.tables == nil {
		t := DefaultTables()
		o.tables = &t
	}
	if o.clock == nil {
		o.clock = telem.SystemClock
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

// WithTables replaces the built-in source tables. The tables must pass
// Tables.Validate.
func WithTables(t Tables) Option {
	return func(o *options) {
		t.Strings = append([]string(nil), t.Strings...)
		o.tables = &t
	}
}

// WithClock sets the clock used to stamp Scalar and Vector records.
func WithClock(c telem.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithExperiment(exp alamos.Experiment) Option {
	return func(o *options) {
		o.exp = alamos.Sub(exp, "generate")
	}
}

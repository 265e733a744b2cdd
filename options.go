package export

import (
	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/catalog"
	"github.com/arya-analytics/export/generate"
	"github.com/arya-analytics/export/telem"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	fs      afero.Fs
	tables  *generate.Tables
	gen     []generate.Option
	catalog *catalog.Catalog
	exp     alamos.Experiment
	logger  *zap.Logger
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
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}

	// || LOGGER ||

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.gen = append(o.gen, generate.WithLogger(o.logger), generate.WithExperiment(o.exp))
}

// WithFS sets the filesystem files are written to and read from.
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// MemBacked keeps every file in memory. Each call returns an option with its
// own filesystem, so share the option value between Run and Load.
func MemBacked() Option {
	fs := afero.NewMemMapFs()
	return WithFS(fs)
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithExperiment(exp alamos.Experiment) Option {
	return func(o *options) {
		o.exp = alamos.Sub(exp, "export")
	}
}

// WithClock sets the clock records are stamped with.
func WithClock(c telem.Clock) Option {
	return func(o *options) {
		o.gen = append(o.gen, generate.WithClock(c))
	}
}

// WithTables replaces the built-in source tables.
func WithTables(t generate.Tables) Option {
	return func(o *options) {
		o.tables = &t
		o.gen = append(o.gen, generate.WithTables(t))
	}
}

// WithCatalog registers every successful run in c.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

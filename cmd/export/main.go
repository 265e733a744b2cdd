// Command export writes the synthetic record sequence to a flat binary file.
//
//	export -o data -n 100
//	export -o data -catalog runs -engine pebble -report metrics.json
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/arya-analytics/export"
	"github.com/arya-analytics/export/alamos"
	"github.com/arya-analytics/export/catalog"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	output      = flag.String("o", "data", "output file")
	count       = flag.Int("n", 100, "number of records to generate")
	catalogPath = flag.String("catalog", "", "catalog location; runs are not catalogued when empty")
	engine      = flag.String("engine", "pebble", "catalog engine: pebble or bolt")
	report      = flag.String("report", "", "write run measurements as JSON to this file")
	verbose     = flag.Bool("v", false, "log every generated record")
)

var openEngine = catalog.OpenEngine

func main() {
	flag.Parse()
	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	if err := run(logger); err != nil {
		logger.Error("export failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) (err error) {
	exp := alamos.New("export")
	opts := []export.Option{export.WithLogger(logger), export.WithExperiment(exp)}

	if *catalogPath != "" {
		e, oErr := openEngine(*engine, *catalogPath)
		if oErr != nil {
			return oErr
		}
		c := catalog.New(e, catalog.WithLogger(logger))
		defer func() { err = errors.CombineErrors(err, c.Close()) }()
		opts = append(opts, export.WithCatalog(c))
	}

	s, err := export.Run(*output, *count, opts...)
	if err != nil {
		return err
	}
	logger.Info("wrote records",
		zap.String("path", s.Path),
		zap.Stringer("key", s.Key),
		zap.Int("count", s.Count),
	)

	if *report != "" {
		b, err := json.MarshalIndent(exp.Report(), "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(*report, b, 0o644)
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

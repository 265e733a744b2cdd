// Command inspect decodes files written by export and prints their records.
//
//	inspect data other
//	inspect -catalog runs -key 0b7c...e1 data
//
// Files are decoded concurrently and printed in argument order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arya-analytics/export"
	"github.com/arya-analytics/export/catalog"
	"github.com/arya-analytics/export/pk"
	"github.com/arya-analytics/export/record"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	catalogPath = flag.String("catalog", "", "catalog location used to verify files")
	engine      = flag.String("engine", "pebble", "catalog engine: pebble or bolt")
	key         = flag.String("key", "", "run key to verify every file against")
	verbose     = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	logger, err := zap.NewProduction()
	if *verbose {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	if err := run(logger, flag.Args()); err != nil {
		logger.Error("inspect failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, paths []string) error {
	if len(paths) == 0 {
		return errors.New("no files given")
	}
	opts := []export.Option{export.WithLogger(logger)}

	if *key != "" {
		if err := verify(paths, opts); err != nil {
			return err
		}
	}

	decoded := make([][]record.Record, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			records, err := export.Load(path, opts...)
			decoded[i] = records
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, path := range paths {
		if len(paths) > 1 {
			fmt.Printf("%s:\n", path)
		}
		for _, r := range decoded[i] {
			fmt.Println(r)
		}
	}
	return nil
}

func verify(paths []string, opts []export.Option) (err error) {
	if *catalogPath == "" {
		return errors.New("-key requires -catalog")
	}
	k, err := pk.Parse(*key)
	if err != nil {
		return err
	}
	e, err := catalog.OpenEngine(*engine, *catalogPath)
	if err != nil {
		return err
	}
	c := catalog.New(e)
	defer func() { err = errors.CombineErrors(err, c.Close()) }()
	entry, err := c.Get(k)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := export.Verify(path, entry, opts...); err != nil {
			return err
		}
	}
	return nil
}

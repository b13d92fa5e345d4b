package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

// loadLog reads a log from file, or from in if file is "-".
func loadLog(in io.Reader, file string) (*sarif.Log, error) {
	r := in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	log, err := sarif.ReadLog(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	theLog.Debug("loaded", "file", file, "runs", len(log.Runs))
	return log, nil
}

// loadLogs reads files concurrently. At most one of them may be "-".
func loadLogs(ctx context.Context, in io.Reader, files []string) ([]*sarif.Log, error) {
	if n := slices.Index(files, "-"); n != -1 && slices.Contains(files[n+1:], "-") {
		return nil, fmt.Errorf("%w: standard input given more than once", cli.ErrUsage)
	}
	res := make([]*sarif.Log, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log, err := loadLog(in, file)
			if err != nil {
				return err
			}
			res[i] = log
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

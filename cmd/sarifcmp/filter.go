package main

import (
	"fmt"

	"github.com/resultdoc/go-sarif/query"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	file := "-"
	switch len(args) {
	case 1:
	case 2:
		file = args[1]
	default:
		return fmt.Errorf("%w: filter requires an expression and at most one file, got %v", cli.ErrUsage, args)
	}
	f, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	log, err := loadLog(cc.In, file)
	if err != nil {
		return err
	}
	res, err := f.Apply(log)
	if err != nil {
		return err
	}
	if !cfg.Count {
		return sarif.WriteLog(cc.Out, res)
	}
	n := 0
	for _, run := range res.Runs {
		if run != nil {
			n += len(run.Results)
		}
	}
	_, err = fmt.Fprintln(cc.Out, n)
	return err
}

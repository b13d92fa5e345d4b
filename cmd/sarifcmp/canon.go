package main

import (
	"fmt"

	"github.com/resultdoc/go-sarif/canon"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
)

func canonicalize(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	file := "-"
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: canon takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	log, err := loadLog(cc.In, file)
	if err != nil {
		return err
	}
	c, err := canon.Canonicalize(log, cfg.canonOpts()...)
	if err != nil {
		return err
	}
	return sarif.WriteLog(cc.Out, c)
}

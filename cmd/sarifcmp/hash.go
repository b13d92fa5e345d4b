package main

import (
	"context"
	"fmt"

	"github.com/resultdoc/go-sarif/canon"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ctx := context.Background()
	logs, err := loadLogs(ctx, cc.In, args)
	if err != nil {
		return err
	}
	if !cfg.Raw {
		logs, err = canon.CanonicalizeAll(ctx, logs, cfg.canonOpts()...)
		if err != nil {
			return err
		}
	}
	for i, log := range logs {
		if _, err := fmt.Fprintf(cc.Out, "%016x  %s\n", sarif.LogType.Hash(log), args[i]); err != nil {
			return err
		}
	}
	return nil
}

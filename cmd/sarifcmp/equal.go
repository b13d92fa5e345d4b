package main

import (
	"context"
	"fmt"

	"github.com/resultdoc/go-sarif/canon"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
)

func equal(cfg *EqualConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equal.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equal requires 2 args, got %v", cli.ErrUsage, args)
	}
	ctx := context.Background()
	logs, err := loadLogs(ctx, cc.In, args)
	if err != nil {
		return err
	}
	if cfg.Canon {
		logs, err = canon.CanonicalizeAll(ctx, logs, cfg.canonOpts()...)
		if err != nil {
			return err
		}
	}
	if sarif.LogType.Equal(logs[0], logs[1]) {
		theLog.Debug("equal", "a", args[0], "b", args[1])
		return nil
	}
	theLog.Debug("not equal", "a", args[0], "b", args[1])
	return cli.ExitCodeErr(1)
}

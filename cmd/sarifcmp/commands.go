package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "yaml configuration file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sarifcmp").
		WithSynopsis("sarifcmp [opts] command [opts]").
		WithDescription("sarifcmp compares, hashes and canonicalizes analysis result logs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sarifcmpMain(cfg, cc, args)
		}).
		WithSubs(
			EqualCommand(cfg),
			HashCommand(cfg),
			CanonCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg))
}

func EqualCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqualConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Equal, "equal").
		WithAliases("eq").
		WithSynopsis("equal [-c] a b").
		WithDescription("exit 0 if two logs are structurally equal, 1 otherwise").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return equal(cfg, cc, args)
		})
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Hash, "hash").
		WithAliases("h").
		WithSynopsis("hash [-raw] [files]").
		WithDescription("print the digest of each log").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Canon, "canon").
		WithAliases("c").
		WithSynopsis("canon [file]").
		WithDescription("print the canonical form of a log").
		WithRun(func(cc *cli.Context, args []string) error {
			return canonicalize(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] [-c] [-results] [-merge] a b").
		WithDescription("show the differences between two logs, exit 1 if there are any").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [-n] <expr> [file]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter keeps the results of a log matching an expression.

The expression sees the variables ruleId, ruleIndex, level, kind,
baselineState, message, uri, startLine, rank, properties, fingerprints and
tags, and the functions hasTag(tags, name) and prop(properties, key).

Example

  sarifcmp filter 'level == "error" && !hasTag(tags, "generated")' log.sarif`

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/resultdoc/go-sarif/canon"
	"github.com/resultdoc/go-sarif/libdiff"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// FileConfig is the content of the file given with -config.
type FileConfig struct {
	Canon canon.Options `yaml:"canon"`
	Color *bool         `yaml:"color"`
	Gops  bool          `yaml:"gops"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := &FileConfig{}
	if err := yaml.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("%w: config %s: %w", cli.ErrUsage, path, err)
	}
	return res, nil
}

type MainConfig struct {
	Verbose         bool `cli:"name=v desc='log debug messages'"`
	Color           bool `cli:"name=color desc='output with color'"`
	Gops            bool `cli:"name=gops desc='run a gops diagnostics agent'"`
	SortThreadFlows bool `cli:"name=sort-flows desc='sort thread flow locations when canonicalizing'"`
	KeepResultOrder bool `cli:"name=keep-order desc='do not sort results when canonicalizing'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	fc, err := loadFileConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.File = fc
	return a, nil
}

// isSet reports whether the option name was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// canonOpts merges the config file options with the flags, flags taking
// precedence.
func (cfg *MainConfig) canonOpts() []canon.Option {
	o := canon.Options{}
	if cfg.File != nil {
		o = cfg.File.Canon
	}
	if cfg.isSet("sort-flows") {
		o.SortThreadFlowLocations = cfg.SortThreadFlows
	}
	if cfg.isSet("keep-order") {
		o.KeepResultOrder = cfg.KeepResultOrder
	}
	return []canon.Option{canon.WithOptions(o)}
}

func (cfg *MainConfig) gops() bool {
	if cfg.isSet("gops") {
		return cfg.Gops
	}
	return cfg.File != nil && cfg.File.Gops
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.isSet("color") {
		return cfg.Color
	}
	if cfg.File != nil && cfg.File.Color != nil {
		return *cfg.File.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) renderOpts(w io.Writer) []libdiff.RenderOption {
	return []libdiff.RenderOption{libdiff.Color(cfg.useColor(w))}
}

type EqualConfig struct {
	*MainConfig
	Canon bool `cli:"name=c aliases=canon desc='compare canonical forms'"`

	Equal *cli.Command
}

type HashConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='hash without canonicalizing'"`

	Hash *cli.Command
}

type CanonConfig struct {
	*MainConfig

	Canon *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Canon   bool `cli:"name=c aliases=canon desc='diff canonical forms'"`
	Results bool `cli:"name=results desc='list added and removed results per run'"`
	Merge   bool `cli:"name=merge desc='output a JSON merge patch'"`

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Count bool `cli:"name=n desc='print the number of matching results only'"`

	Filter *cli.Command
}

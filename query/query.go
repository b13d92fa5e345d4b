// Package query selects results with boolean expressions.
//
// A filter is an expr-lang expression over the variables
//
//	ruleId        string
//	ruleIndex     int, -1 if unset
//	level         string: "", "none", "note", "warning" or "error"
//	kind          string: "", "notApplicable", "pass", "fail", ...
//	baselineState string
//	message       string, the message text
//	uri           string, the uri of the first location
//	startLine     int, the start line of the first location, 0 if unset
//	rank          float, -1 if unset
//	properties    map of property values
//	fingerprints  map of strings
//	tags          list of strings, the "tags" property
//
// and the functions hasTag(tags, name) and prop(properties, key), for
// example
//
//	level == "error" && uri startsWith "src/" && !hasTag(tags, "generated")
package query

import (
	"fmt"
	"slices"

	"github.com/resultdoc/go-sarif/debug"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter. It is safe for concurrent use.
type Filter struct {
	src     string
	program *vm.Program
}

// Compile compiles src into a Filter.
func Compile(src string) (*Filter, error) {
	opts := append(exprOpts(),
		expr.Env(Env(nil)),
		expr.AsBool(),
	)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, program: prg}, nil
}

// String returns the source of f.
func (f *Filter) String() string {
	return f.src
}

// Match reports whether r satisfies f.
func (f *Filter) Match(r *sarif.Result) (bool, error) {
	env := Env(r)
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, f.src, out)
	}
	if debug.Query() {
		debug.Logf("query %q on %s: %t", f.src, env["ruleId"], b)
	}
	return b, nil
}

// Apply returns a copy of log keeping only the results which match f. Rules
// and artifacts are kept so that indices into them remain valid.
func (f *Filter) Apply(log *sarif.Log) (*sarif.Log, error) {
	res, err := log.DeepClone()
	if err != nil {
		return nil, err
	}
	for _, run := range res.Runs {
		if run == nil || run.Results == nil {
			continue
		}
		kept := make([]*sarif.Result, 0, len(run.Results))
		for _, r := range run.Results {
			if r == nil {
				continue
			}
			ok, err := f.Match(r)
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, r)
			}
		}
		run.Results = kept
	}
	return res, nil
}

// Env returns the variables a filter sees for r. A nil r gives zero values
// of the right types.
func Env(r *sarif.Result) map[string]any {
	env := map[string]any{
		"ruleId":        "",
		"ruleIndex":     -1,
		"level":         "",
		"kind":          "",
		"baselineState": "",
		"message":       "",
		"uri":           "",
		"startLine":     0,
		"rank":          -1.0,
		"properties":    map[string]any{},
		"fingerprints":  map[string]string{},
		"tags":          []string{},
	}
	if r == nil {
		return env
	}
	env["ruleId"] = r.RuleID
	env["ruleIndex"] = r.RuleIndex
	env["level"] = r.Level.String()
	env["kind"] = r.ResultKind.String()
	env["baselineState"] = r.BaselineState.String()
	if r.Message != nil {
		env["message"] = r.Message.Text
	}
	if pl := firstPhysical(r); pl != nil {
		if pl.ArtifactLocation != nil {
			env["uri"] = pl.ArtifactLocation.URI
		}
		if pl.Region != nil {
			env["startLine"] = pl.Region.StartLine
		}
	}
	if r.Rank != nil {
		env["rank"] = *r.Rank
	}
	if r.Properties != nil {
		env["properties"] = r.Properties.AsAny()
		env["tags"] = nonNil(r.Properties.Tags())
	}
	if r.Fingerprints != nil {
		env["fingerprints"] = r.Fingerprints
	}
	return env
}

func firstPhysical(r *sarif.Result) *sarif.PhysicalLocation {
	for _, loc := range r.Locations {
		if loc != nil && loc.PhysicalLocation != nil {
			return loc.PhysicalLocation
		}
	}
	return nil
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("hasTag", func(params ...any) (any, error) {
			tags, _ := params[0].([]string)
			return slices.Contains(tags, params[1].(string)), nil
		},
			new(func([]string, string) bool)),
		expr.Function("prop", func(params ...any) (any, error) {
			props, _ := params[0].(map[string]any)
			return props[params[1].(string)], nil
		},
			new(func(map[string]any, string) any)),
	}
}

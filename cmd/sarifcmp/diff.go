package main

import (
	"context"
	"fmt"
	"io"

	"github.com/resultdoc/go-sarif/canon"
	"github.com/resultdoc/go-sarif/libdiff"
	"github.com/resultdoc/go-sarif/sarif"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ctx := context.Background()
	logs, err := loadLogs(ctx, cc.In, args)
	if err != nil {
		return err
	}
	if cfg.Canon || cfg.Results {
		logs, err = canon.CanonicalizeAll(ctx, logs, cfg.canonOpts()...)
		if err != nil {
			return err
		}
	}
	a, b := logs[0], logs[1]
	if cfg.Reverse {
		a, b = b, a
	}
	var differs bool
	switch {
	case cfg.Merge:
		differs, err = diffMerge(cc.Out, a, b)
	case cfg.Results:
		differs, err = diffResults(cfg, cc.Out, a, b)
	default:
		differs, err = diffInputs(cfg, cc.Out, a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *sarif.Log) (bool, error) {
	changes, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	if len(changes) == 0 {
		return false, nil
	}
	theLog.Debug("diff", "changes", len(changes))
	if err := libdiff.Render(w, changes, cfg.renderOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}

func diffMerge(w io.Writer, a, b *sarif.Log) (bool, error) {
	if sarif.LogType.Equal(a, b) {
		return false, nil
	}
	patch, err := libdiff.MergePatch(a, b)
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(w, "%s\n", patch); err != nil {
		return false, err
	}
	return true, nil
}

// diffResults lists, run by run, the results only present in one log. Runs
// are paired by position.
func diffResults(cfg *DiffConfig, w io.Writer, a, b *sarif.Log) (bool, error) {
	n := max(len(a.Runs), len(b.Runs))
	differs := false
	for i := range n {
		var ra, rb *sarif.Run
		if i < len(a.Runs) {
			ra = a.Runs[i]
		}
		if i < len(b.Runs) {
			rb = b.Runs[i]
		}
		added, removed := libdiff.Results(ra, rb)
		if len(added) == 0 && len(removed) == 0 {
			continue
		}
		differs = true
		var changes []libdiff.Change
		for _, r := range removed {
			changes = append(changes, libdiff.Change{Path: resultPath(i, r), Op: libdiff.Delete, From: summary(r)})
		}
		for _, r := range added {
			changes = append(changes, libdiff.Change{Path: resultPath(i, r), Op: libdiff.Insert, To: summary(r)})
		}
		if err := libdiff.Render(w, changes, cfg.renderOpts(w)...); err != nil {
			return false, err
		}
	}
	return differs, nil
}

func resultPath(run int, r *sarif.Result) string {
	return fmt.Sprintf("%s.runs[%d].results(%s)", libdiff.Root, run, r.RuleID)
}

func summary(r *sarif.Result) map[string]any {
	res := map[string]any{"level": r.Level}
	if r.Message != nil {
		res["message"] = r.Message.Text
	}
	for _, loc := range r.Locations {
		if loc == nil || loc.PhysicalLocation == nil {
			continue
		}
		pl := loc.PhysicalLocation
		if pl.ArtifactLocation != nil {
			res["uri"] = pl.ArtifactLocation.URI
		}
		if pl.Region != nil {
			res["startLine"] = pl.Region.StartLine
		}
		break
	}
	return res
}

package engine

import (
	"context"
	"fmt"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/jj"
)

// logChanges is the single read path over the backend's history graph.
func (e *engineImpl) logChanges(ctx context.Context, revset string, reversed bool) ([]jj.Change, error) {
	args := []string{"log", "-r", revset, "--no-graph"}
	if reversed {
		args = append(args, "--reversed")
	}
	args = append(args, "-T", jj.ChangeTemplate)

	out, err := e.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return jj.ParseChangeLines(out)
}

// CurrentChange returns the change checked out in the active workspace.
func (e *engineImpl) CurrentChange(ctx context.Context) (*Change, error) {
	recs, err := e.logChanges(ctx, "@", false)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("backend reported no working-copy change")
	}
	change := fromRecord(recs[0])
	return &change, nil
}

// ParentChange returns the parent of the current change. A merge change with
// multiple parents is surfaced as ambiguous rather than silently picking one.
func (e *engineImpl) ParentChange(ctx context.Context) (*Change, error) {
	recs, err := e.logChanges(ctx, "@-", false)
	if err != nil {
		return nil, err
	}
	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		change := fromRecord(recs[0])
		return &change, nil
	default:
		return nil, jigerrors.NewAmbiguousStackError("down", len(recs))
	}
}

// ChildChange returns the unique child of the current change. Zero children
// is nil, not an error; multiple children are ambiguous.
func (e *engineImpl) ChildChange(ctx context.Context) (*Change, error) {
	recs, err := e.logChanges(ctx, "@+", false)
	if err != nil {
		return nil, err
	}
	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		change := fromRecord(recs[0])
		return &change, nil
	default:
		return nil, jigerrors.NewAmbiguousStackError("up", len(recs))
	}
}

// Log returns the changes selected by revset in the backend's default order.
func (e *engineImpl) Log(ctx context.Context, revset string) ([]Change, error) {
	recs, err := e.logChanges(ctx, revset, false)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

// Stack returns trunk..@ parent-first.
func (e *engineImpl) Stack(ctx context.Context) ([]Change, error) {
	recs, err := e.logChanges(ctx, e.cfg.TrunkRevset()+"..@", true)
	if err != nil {
		return nil, err
	}
	return fromRecords(recs), nil
}

// TrunkChange resolves the trunk change.
func (e *engineImpl) TrunkChange(ctx context.Context) (*Change, error) {
	recs, err := e.logChanges(ctx, e.cfg.TrunkRevset(), false)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("cannot resolve trunk (%s)", e.cfg.TrunkRevset())
	}
	change := fromRecord(recs[0])
	return &change, nil
}

// trunkTitles returns the description first lines of recent trunk history,
// bounded by the configured lookback. Used by merge detection.
func (e *engineImpl) trunkTitles(ctx context.Context) (map[string]bool, error) {
	out, err := e.runner.Run(ctx,
		"log", "-r", "::"+e.cfg.TrunkRevset(), "-n", fmt.Sprint(e.cfg.Lookback()),
		"--no-graph", "-T", jj.TitleTemplate)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]bool)
	for _, line := range splitNonEmptyLines(out) {
		titles[line] = true
	}
	return titles, nil
}

func splitNonEmptyLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			line := s[start:i]
			if line != "" {
				lines = append(lines, line)
			}
			start = i + 1
		}
	}
	return lines
}

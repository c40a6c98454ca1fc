package engine

import (
	"context"
	"fmt"
	"strings"

	"jig.dev/jig/internal/jj"
)

// Undo reverts the most recent backend operation, whatever produced it.
// The operation's description is captured before undoing so the caller can
// tell the user what was reverted.
func (e *engineImpl) Undo(ctx context.Context) (*UndoResult, error) {
	out, err := e.runner.Run(ctx, "op", "log", "-n", "1", "--no-graph", "-T", jj.OperationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to read operation log: %w", err)
	}
	operation := strings.TrimSpace(out)

	if _, err := e.runner.Run(ctx, "undo"); err != nil {
		return nil, err
	}
	return &UndoResult{Operation: operation}, nil
}

// UpdateStale refreshes a working copy left stale by an operation run from
// another workspace. Running it on a fresh working copy is a no-op success,
// so repeated invocations are safe.
func (e *engineImpl) UpdateStale(ctx context.Context) (*RepairResult, error) {
	// The outcome message ("Nothing to do ..." / "Working copy now at: ...")
	// arrives on stderr; stdout carries only requested data and stays empty
	// here.
	stdout, stderr, err := e.runner.RunWithStderr(ctx, "workspace", "update-stale")
	if err != nil {
		return nil, err
	}
	status := strings.TrimSpace(stderr)
	if status == "" {
		status = strings.TrimSpace(stdout)
	}
	updated := !strings.HasPrefix(status, "Nothing to do")
	return &RepairResult{Updated: updated}, nil
}

package jj

import (
	"context"
	"errors"
	"path/filepath"

	jigerrors "jig.dev/jig/internal/errors"
)

// WorkspaceRoot returns the root directory of the workspace containing dir.
// Returns ErrNotARepo if dir is not under jj control.
func WorkspaceRoot(ctx context.Context, r Runner, dir string) (string, error) {
	root, err := r.RunInDir(ctx, dir, "workspace", "root")
	if err != nil {
		var cmdErr *jigerrors.BackendCommandError
		if errors.As(err, &cmdErr) {
			return "", jigerrors.ErrNotARepo
		}
		return "", err
	}
	return filepath.Clean(root), nil
}

// IsRepo reports whether dir is inside a jj workspace.
func IsRepo(ctx context.Context, r Runner, dir string) bool {
	_, err := WorkspaceRoot(ctx, r, dir)
	return err == nil
}

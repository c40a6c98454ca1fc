package engine

import (
	"context"
)

// NewChange creates a new change on top of the current one and makes it the
// working copy.
func (e *engineImpl) NewChange(ctx context.Context, message string) (*Change, error) {
	if _, err := e.runner.Run(ctx, "new", "-m", message); err != nil {
		return nil, err
	}
	return e.CurrentChange(ctx)
}

// Describe replaces the current change's description.
func (e *engineImpl) Describe(ctx context.Context, message string) error {
	_, err := e.runner.Run(ctx, "describe", "-m", message)
	return err
}

package engine

import (
	"context"
)

// StackUp moves the working copy to the unique child of the current change.
// Zero children is the normal terminal state at the tip and returns a
// non-error "not moved" result; multiple children are ambiguous.
func (e *engineImpl) StackUp(ctx context.Context) (*NavigateResult, error) {
	current, err := e.CurrentChange(ctx)
	if err != nil {
		return nil, err
	}

	child, err := e.ChildChange(ctx)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return &NavigateResult{Moved: false, From: *current, To: *current}, nil
	}

	if _, err := e.runner.Run(ctx, "edit", child.ChangeID); err != nil {
		return nil, err
	}
	return &NavigateResult{Moved: true, From: *current, To: *child}, nil
}

// StackDown moves the working copy to the parent of the current change.
// Sitting at trunk, or at the bottom of the stack where the parent is trunk
// itself, is the normal terminal state and returns a non-error "not moved"
// result. The working copy never moves into the trunk commit.
func (e *engineImpl) StackDown(ctx context.Context) (*NavigateResult, error) {
	current, err := e.CurrentChange(ctx)
	if err != nil {
		return nil, err
	}

	stack, err := e.Stack(ctx)
	if err != nil {
		return nil, err
	}
	if stackIsSettled(stack) || stack[0].ChangeID == current.ChangeID {
		return &NavigateResult{Moved: false, From: *current, To: *current}, nil
	}

	parent, err := e.ParentChange(ctx)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return &NavigateResult{Moved: false, From: *current, To: *current}, nil
	}

	if _, err := e.runner.Run(ctx, "edit", parent.ChangeID); err != nil {
		return nil, err
	}
	return &NavigateResult{Moved: true, From: *current, To: *parent}, nil
}

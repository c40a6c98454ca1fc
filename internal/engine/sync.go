package engine

import (
	"context"
	"fmt"
)

// Sync fetches remote trunk updates, rebases the stack onto the updated
// trunk, classifies the outcome, abandons changes whose content already
// landed upstream, and cleans up a fully-merged non-default workspace.
//
// Within one invocation fetch strictly precedes rebase, rebase precedes
// merge detection, and workspace cleanup follows merge detection. The steps
// are inherently sequential: each depends on the backend state mutated by
// the previous one.
func (e *engineImpl) Sync(ctx context.Context) (*SyncResult, error) {
	// Network step. Failures are reported, not retried: re-fetching is the
	// user's call.
	if _, err := e.runner.Run(ctx, "git", "fetch"); err != nil {
		return nil, fmt.Errorf("failed to fetch from remote: %w", err)
	}
	return e.restackPipeline(ctx, true)
}

// Restack re-linearizes the stack onto the current trunk without touching
// the remote.
func (e *engineImpl) Restack(ctx context.Context) (*SyncResult, error) {
	return e.restackPipeline(ctx, false)
}

func (e *engineImpl) restackPipeline(ctx context.Context, fetched bool) (*SyncResult, error) {
	result := &SyncResult{Fetched: fetched}

	trunk, err := e.TrunkChange(ctx)
	if err != nil {
		return nil, err
	}
	result.TrunkChangeID = trunk.ChangeID

	// The stack is computed before rebasing so merge detection can compare
	// each change's pre-rebase identity against the rebased history.
	preStack, err := e.Stack(ctx)
	if err != nil {
		return nil, err
	}

	// Working copy already on trunk with no stack: a no-op success.
	if stackIsSettled(preStack) {
		result.StackSizeAfter = effectiveStackSize(preStack)
		return result, nil
	}

	if _, err := e.runner.Run(ctx, "rebase", "-b", "@", "-d", e.cfg.TrunkRevset()); err != nil {
		return nil, err
	}
	result.Rebased = true

	postStack, err := e.Stack(ctx)
	if err != nil {
		return nil, err
	}

	// A conflicted rebase stops the pipeline: merge detection must never run
	// on a conflicted tree, where unmerged work can look empty.
	for _, change := range postStack {
		if change.IsConflicted {
			result.Conflicted = true
			result.StackSizeAfter = effectiveStackSize(postStack)
			return result, nil
		}
	}

	abandoned, err := e.detectMergedChanges(ctx, preStack, postStack)
	if err != nil {
		return nil, err
	}
	result.AbandonedMergedChanges = abandoned

	finalStack, err := e.Stack(ctx)
	if err != nil {
		return nil, err
	}
	result.StackSizeAfter = effectiveStackSize(finalStack)

	if result.StackSizeAfter == 0 && len(preStack) > 0 {
		result.StackFullyMerged = true
		e.cleanupMergedWorkspace(ctx, result)
	}

	return result, nil
}

// detectMergedChanges abandons every pre-rebase stack change whose diff
// became empty after rebasing onto the updated trunk and whose description
// matches what trunk already contains: content that is now empty was already
// integrated upstream (a squash-merged PR, typically).
//
// A change that independently became empty (a revert, say) with a matching
// trunk description is misclassified by this heuristic; that false-positive
// risk is retained deliberately for compatibility.
func (e *engineImpl) detectMergedChanges(ctx context.Context, preStack, postStack []Change) ([]Change, error) {
	postByID := make(map[string]Change, len(postStack))
	for _, change := range postStack {
		postByID[change.ChangeID] = change
	}

	var titles map[string]bool
	var abandoned []Change
	for _, pre := range preStack {
		post, ok := postByID[pre.ChangeID]
		if !ok || !post.IsEmpty {
			continue
		}
		// Undescribed empty changes (the usual fresh working copy) are never
		// merge candidates.
		if pre.Description == "" {
			continue
		}

		if titles == nil {
			var err error
			titles, err = e.trunkTitles(ctx)
			if err != nil {
				return nil, err
			}
		}
		if !titles[pre.Description] {
			continue
		}

		if _, err := e.runner.Run(ctx, "abandon", pre.ChangeID); err != nil {
			return nil, fmt.Errorf("failed to abandon merged change %s: %w", pre.ChangeID, err)
		}
		abandoned = append(abandoned, post)
	}
	return abandoned, nil
}

// cleanupMergedWorkspace forgets the active workspace when it is a
// non-default workspace whose tracked stack has fully landed. Failures here
// are non-fatal: they are recorded as a warning, never as the sync's error.
// Syncing from the default workspace never removes it.
func (e *engineImpl) cleanupMergedWorkspace(ctx context.Context, result *SyncResult) {
	name, err := e.CurrentWorkspaceName()
	if err != nil || name == DefaultWorkspaceName {
		return
	}

	if _, err := e.runner.Run(ctx, "workspace", "forget", name); err != nil {
		result.Warning = fmt.Sprintf("stack fully merged but workspace %s could not be forgotten: %v", name, err)
		return
	}
	if err := e.state.Clear(e.root); err != nil {
		result.Warning = fmt.Sprintf("workspace %s forgotten but its state file remains: %v", name, err)
	}
	result.CleanedUpWorkspace = name
}

// stackIsSettled reports whether there is nothing to rebase: no stack at
// all, or only the fresh empty working-copy change the backend parks on
// trunk.
func stackIsSettled(stack []Change) bool {
	return effectiveStackSize(stack) == 0
}

// effectiveStackSize counts stack entries, ignoring a sole empty undescribed
// working-copy change: the backend always keeps a working-copy change, so
// "working copy equals trunk" manifests as exactly that placeholder.
func effectiveStackSize(stack []Change) int {
	if len(stack) == 1 && stack[0].IsWorkingCopy && stack[0].IsEmpty && stack[0].Description == "" {
		return 0
	}
	return len(stack)
}

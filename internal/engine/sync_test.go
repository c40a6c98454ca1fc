package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jig.dev/jig/internal/workspace"
	"jig.dev/jig/testhelpers"
)

var (
	fetchArgs  = []string{"git", "fetch"}
	rebaseArgs = []string{"rebase", "-b", "@", "-d", trunkRevset}
	titlesArgs = testhelpers.TrunkTitlesArgs(trunkRevset, 100)
)

func TestSync(t *testing.T) {
	t.Run("working copy on trunk is a no-op success", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.Respond(placeholderLine(), stackArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.Fetched)
		require.False(t, result.Rebased)
		require.Equal(t, 0, result.StackSizeAfter)
		require.Equal(t, 0, f.runner.CallCount(rebaseArgs...))
	})

	t.Run("is idempotent on a clean stack", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.Respond(placeholderLine(), stackArgs...)

		for i := 0; i < 2; i++ {
			result, err := f.eng.Sync(context.Background())
			require.NoError(t, err)
			require.False(t, result.Rebased)
		}
	})

	t.Run("rebases a one-change stack after trunk advances", func(t *testing.T) {
		f := newFixture(t)
		line := testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		})
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.Respond(line, stackArgs...)
		f.runner.Respond("", rebaseArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.Rebased)
		require.False(t, result.Conflicted)
		require.Empty(t, result.AbandonedMergedChanges)
		require.False(t, result.StackFullyMerged)
		require.Equal(t, 1, result.StackSizeAfter)
		require.Equal(t, "t0", result.TrunkChangeID)
	})

	t.Run("stops at a conflicted rebase without merge detection", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		// Post-rebase the change is both conflicted and content-empty; it must
		// still not be abandoned.
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Empty: true, Conflict: true, Title: "A",
		}), stackArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.Conflicted)
		require.Empty(t, result.AbandonedMergedChanges)
		require.False(t, result.StackFullyMerged)
		require.Equal(t, 1, result.StackSizeAfter)
		require.Equal(t, 0, f.runner.CallCount("abandon", "c1"))
		require.Equal(t, 0, f.runner.CallCount(titlesArgs...))
	})

	t.Run("conflicted stop ignores the working-copy placeholder in size accounting", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		// Pre-rebase: an undescribed working-copy change with content.
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "w0", WorkingCopy: true,
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		// Post-rebase it is empty and conflicted: the placeholder shape every
		// other path counts as an empty stack.
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "w0", WorkingCopy: true, Empty: true, Conflict: true,
		}), stackArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.Conflicted)
		require.Equal(t, 0, result.StackSizeAfter)
	})

	t.Run("abandons a change whose content landed on trunk", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		// Pre-rebase: described change plus the working-copy placeholder above it.
		f.runner.RespondOnce(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c1", Title: "Add X"},
			testhelpers.ChangeSpec{ChangeID: "w0", WorkingCopy: true, Empty: true},
		), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		// Post-rebase: the change's diff became empty.
		f.runner.RespondOnce(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c1", Empty: true, Title: "Add X"},
			testhelpers.ChangeSpec{ChangeID: "w0", WorkingCopy: true, Empty: true},
		), stackArgs...)
		f.runner.Respond("Add X\nmerge release\n", titlesArgs...)
		f.runner.Respond("", "abandon", "c1")
		// Final stack: only the placeholder remains.
		f.runner.Respond(placeholderLine(), stackArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.Len(t, result.AbandonedMergedChanges, 1)
		require.Equal(t, "c1", result.AbandonedMergedChanges[0].ChangeID)
		require.True(t, result.StackFullyMerged)
		require.Equal(t, 0, result.StackSizeAfter)
		// Default workspace is never cleaned up.
		require.Empty(t, result.CleanedUpWorkspace)
		require.Equal(t, 0, f.runner.CallCount("workspace", "forget", "default"))
	})

	t.Run("keeps an empty change whose description is not on trunk", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Empty: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("merge release\nsomething else\n", titlesArgs...)

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.Empty(t, result.AbandonedMergedChanges)
		require.Equal(t, 0, f.runner.CallCount("abandon", "c1"))
	})

	t.Run("cleans up a fully-merged secondary workspace", func(t *testing.T) {
		f := newFixture(t)
		f.bindWorkspaceState(t, workspace.State{Name: "feature-x", TaskID: "ENG-142"})

		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Empty: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("Add X\n", titlesArgs...)
		f.runner.Respond("", "abandon", "c1")
		f.runner.Respond(placeholderLine(), stackArgs...)
		f.runner.Respond("", "workspace", "forget", "feature-x")

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.StackFullyMerged)
		require.Equal(t, "feature-x", result.CleanedUpWorkspace)
		require.Empty(t, result.Warning)

		st, err := workspace.NewStore().Load(f.root)
		require.NoError(t, err)
		require.Empty(t, st.Name)
	})

	t.Run("workspace cleanup failure is a warning, not an error", func(t *testing.T) {
		f := newFixture(t)
		f.bindWorkspaceState(t, workspace.State{Name: "feature-x"})

		f.runner.Respond("", fetchArgs...)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Empty: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("Add X\n", titlesArgs...)
		f.runner.Respond("", "abandon", "c1")
		f.runner.Respond(placeholderLine(), stackArgs...)
		f.runner.Fail(assertableError("workspace busy"), "workspace", "forget", "feature-x")

		result, err := f.eng.Sync(context.Background())
		require.NoError(t, err)
		require.True(t, result.StackFullyMerged)
		require.Empty(t, result.CleanedUpWorkspace)
		require.Contains(t, result.Warning, "feature-x")
	})
}

func TestRestack(t *testing.T) {
	t.Run("never fetches", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.Respond(placeholderLine(), stackArgs...)

		result, err := f.eng.Restack(context.Background())
		require.NoError(t, err)
		require.False(t, result.Fetched)
		require.Equal(t, 0, f.runner.CallCount(fetchArgs...))
	})

	t.Run("runs the same merge detection as sync", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(trunkLine(), trunkArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("", rebaseArgs...)
		f.runner.RespondOnce(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Empty: true, Title: "Add X",
		}), stackArgs...)
		f.runner.Respond("Add X\n", titlesArgs...)
		f.runner.Respond("", "abandon", "c1")
		f.runner.Respond(placeholderLine(), stackArgs...)

		result, err := f.eng.Restack(context.Background())
		require.NoError(t, err)
		require.Len(t, result.AbandonedMergedChanges, 1)
		require.True(t, result.StackFullyMerged)
	})
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

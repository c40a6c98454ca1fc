package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/testhelpers"
)

func TestStack(t *testing.T) {
	t.Run("fresh workspace at trunk has an empty stack", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", stackArgs...)

		stack, err := f.eng.Stack(context.Background())
		require.NoError(t, err)
		require.Empty(t, stack)
	})

	t.Run("one described change", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "Add X",
		}), stackArgs...)

		stack, err := f.eng.Stack(context.Background())
		require.NoError(t, err)
		require.Len(t, stack, 1)
		require.Equal(t, "Add X", stack[0].Description)
		require.True(t, stack[0].IsWorkingCopy)
	})

	t.Run("two changes come back parent-first", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c1", Title: "A"},
			testhelpers.ChangeSpec{ChangeID: "c2", WorkingCopy: true, Title: "B"},
		), stackArgs...)

		stack, err := f.eng.Stack(context.Background())
		require.NoError(t, err)
		require.Len(t, stack, 2)
		require.Equal(t, "A", stack[0].Description)
		require.Equal(t, "B", stack[1].Description)
	})
}

func TestParentChange(t *testing.T) {
	t.Run("root change has no parent", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", parentArgs...)

		parent, err := f.eng.ParentChange(context.Background())
		require.NoError(t, err)
		require.Nil(t, parent)
	})

	t.Run("merge change parents are ambiguous", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c1", Title: "A"},
			testhelpers.ChangeSpec{ChangeID: "c2", Title: "B"},
		), parentArgs...)

		_, err := f.eng.ParentChange(context.Background())
		require.ErrorIs(t, err, jigerrors.ErrAmbiguousStack)
	})
}

func TestTrunkChange(t *testing.T) {
	t.Run("resolves the trunk record", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(trunkLine(), trunkArgs...)

		trunk, err := f.eng.TrunkChange(context.Background())
		require.NoError(t, err)
		require.Equal(t, "t0", trunk.ChangeID)
		require.Equal(t, []string{"main"}, trunk.Bookmarks)
	})

	t.Run("fails when the revset resolves to nothing", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("", trunkArgs...)

		_, err := f.eng.TrunkChange(context.Background())
		require.Error(t, err)
	})
}

func TestNewChange(t *testing.T) {
	f := newFixture(t)
	f.runner.Respond("", "new", "-m", "Add X")
	f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
		ChangeID: "c1", WorkingCopy: true, Title: "Add X",
	}), currentArgs...)

	change, err := f.eng.NewChange(context.Background(), "Add X")
	require.NoError(t, err)
	require.Equal(t, "c1", change.ChangeID)
	require.Equal(t, "Add X", change.Description)
	require.True(t, change.IsWorkingCopy)
}

func TestDescribe(t *testing.T) {
	f := newFixture(t)
	f.runner.Respond("", "describe", "-m", "Better title")

	require.NoError(t, f.eng.Describe(context.Background(), "Better title"))
	require.Equal(t, 1, f.runner.CallCount("describe", "-m", "Better title"))
}

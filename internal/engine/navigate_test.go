package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/testhelpers"
)

func TestStackUp(t *testing.T) {
	t.Run("moves to the unique child", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		}), currentArgs...)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c2", Title: "B",
		}), childArgs...)
		f.runner.Respond("", "edit", "c2")

		result, err := f.eng.StackUp(context.Background())
		require.NoError(t, err)
		require.True(t, result.Moved)
		require.Equal(t, "c1", result.From.ChangeID)
		require.Equal(t, "c2", result.To.ChangeID)
		require.Equal(t, 1, f.runner.CallCount("edit", "c2"))
	})

	t.Run("tip of the stack is a non-error terminal", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c2", WorkingCopy: true, Title: "B",
		}), currentArgs...)
		f.runner.Respond("", childArgs...)

		result, err := f.eng.StackUp(context.Background())
		require.NoError(t, err)
		require.False(t, result.Moved)
		require.Equal(t, "c2", result.To.ChangeID)
	})

	t.Run("multiple children are ambiguous", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		}), currentArgs...)
		f.runner.Respond(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c2", Title: "B"},
			testhelpers.ChangeSpec{ChangeID: "c3", Title: "C"},
		), childArgs...)

		_, err := f.eng.StackUp(context.Background())
		require.ErrorIs(t, err, jigerrors.ErrAmbiguousStack)

		var ambiguous *jigerrors.AmbiguousStackError
		require.ErrorAs(t, err, &ambiguous)
		require.Equal(t, 2, ambiguous.Candidates)
		require.Equal(t, "up", ambiguous.Direction)
	})
}

func TestStackDown(t *testing.T) {
	t.Run("moves to the parent", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c2", WorkingCopy: true, Title: "B",
		}), currentArgs...)
		f.runner.Respond(testhelpers.ChangeLines(
			testhelpers.ChangeSpec{ChangeID: "c1", Title: "A"},
			testhelpers.ChangeSpec{ChangeID: "c2", WorkingCopy: true, Title: "B"},
		), stackArgs...)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", Title: "A",
		}), parentArgs...)
		f.runner.Respond("", "edit", "c1")

		result, err := f.eng.StackDown(context.Background())
		require.NoError(t, err)
		require.True(t, result.Moved)
		require.Equal(t, "c1", result.To.ChangeID)
	})

	t.Run("bottom of the stack is a non-error terminal", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		}), currentArgs...)
		f.runner.Respond(testhelpers.ChangeLine(testhelpers.ChangeSpec{
			ChangeID: "c1", WorkingCopy: true, Title: "A",
		}), stackArgs...)

		result, err := f.eng.StackDown(context.Background())
		require.NoError(t, err)
		require.False(t, result.Moved)
		require.Equal(t, "c1", result.To.ChangeID)
		require.Equal(t, 0, f.runner.CallCount("edit", "t0"))
	})

	t.Run("working copy parked on trunk is a non-error terminal", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond(placeholderLine(), currentArgs...)
		f.runner.Respond(placeholderLine(), stackArgs...)

		result, err := f.eng.StackDown(context.Background())
		require.NoError(t, err)
		require.False(t, result.Moved)
	})
}

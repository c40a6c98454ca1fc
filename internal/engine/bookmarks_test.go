package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/jj"
)

var bookmarkListArgs = []string{"bookmark", "list", "-T", jj.BookmarkListTemplate}

func TestCreateBookmark(t *testing.T) {
	t.Run("creates a new bookmark at the working copy", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\n", bookmarkListArgs...)
		f.runner.Respond("", "bookmark", "create", "feature", "-r", "@")

		require.NoError(t, f.eng.CreateBookmark(context.Background(), "feature"))
		require.Equal(t, 1, f.runner.CallCount("bookmark", "create", "feature", "-r", "@"))
	})

	t.Run("existing name fails and never moves", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\nfeature\n", bookmarkListArgs...)

		err := f.eng.CreateBookmark(context.Background(), "feature")
		require.ErrorIs(t, err, jigerrors.ErrBookmarkExists)
		require.Equal(t, 0, f.runner.CallCount("bookmark", "move", "feature", "--to", "@"))
	})
}

func TestMoveBookmark(t *testing.T) {
	t.Run("repoints an existing bookmark", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\nfeature\n", bookmarkListArgs...)
		f.runner.Respond("", "bookmark", "move", "feature", "--to", "@")

		require.NoError(t, f.eng.MoveBookmark(context.Background(), "feature"))
	})

	t.Run("missing name fails and never creates", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\n", bookmarkListArgs...)

		err := f.eng.MoveBookmark(context.Background(), "feature")
		require.ErrorIs(t, err, jigerrors.ErrBookmarkNotFound)
		require.Equal(t, 0, f.runner.CallCount("bookmark", "create", "feature", "-r", "@"))
	})
}

func TestDeleteBookmark(t *testing.T) {
	t.Run("deletes an existing bookmark", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\nfeature\n", bookmarkListArgs...)
		f.runner.Respond("", "bookmark", "delete", "feature")

		require.NoError(t, f.eng.DeleteBookmark(context.Background(), "feature"))
	})

	t.Run("missing name fails", func(t *testing.T) {
		f := newFixture(t)
		f.runner.Respond("main\n", bookmarkListArgs...)

		err := f.eng.DeleteBookmark(context.Background(), "feature")
		require.ErrorIs(t, err, jigerrors.ErrBookmarkNotFound)
	})
}

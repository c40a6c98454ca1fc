package engine

import (
	"context"
	"slices"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/jj"
)

// ListBookmarks returns all bookmark names in the repository.
func (e *engineImpl) ListBookmarks(ctx context.Context) ([]string, error) {
	return jj.RunLines(ctx, e.runner, "bookmark", "list", "-T", jj.BookmarkListTemplate)
}

// CreateBookmark binds name to the current change. Creating an existing
// bookmark is an error; it never falls back to moving it.
func (e *engineImpl) CreateBookmark(ctx context.Context, name string) error {
	names, err := e.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return jigerrors.NewBookmarkExistsError(name)
	}
	_, err = e.runner.Run(ctx, "bookmark", "create", name, "-r", "@")
	return err
}

// MoveBookmark repoints an existing bookmark to the current change. The
// backend's create-if-absent behavior is rejected here to keep create and
// move semantics distinct.
func (e *engineImpl) MoveBookmark(ctx context.Context, name string) error {
	names, err := e.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(names, name) {
		return jigerrors.NewBookmarkNotFoundError(name)
	}
	_, err = e.runner.Run(ctx, "bookmark", "move", name, "--to", "@")
	return err
}

// DeleteBookmark removes the name without touching the change it points at.
func (e *engineImpl) DeleteBookmark(ctx context.Context, name string) error {
	names, err := e.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(names, name) {
		return jigerrors.NewBookmarkNotFoundError(name)
	}
	_, err = e.runner.Run(ctx, "bookmark", "delete", name)
	return err
}

package jj

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	jigerrors "jig.dev/jig/internal/errors"
)

type stubRunner struct {
	output string
	stderr string
	err    error
}

func (s *stubRunner) Run(_ context.Context, _ ...string) (string, error) {
	return s.output, s.err
}

func (s *stubRunner) RunInDir(_ context.Context, _ string, _ ...string) (string, error) {
	return s.output, s.err
}

func (s *stubRunner) RunWithStderr(_ context.Context, _ ...string) (string, string, error) {
	return s.output, s.stderr, s.err
}

func TestRunLines(t *testing.T) {
	t.Run("splits and drops blank lines", func(t *testing.T) {
		lines, err := RunLines(context.Background(), &stubRunner{output: "one\n\ntwo"})
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("empty output yields empty slice", func(t *testing.T) {
		lines, err := RunLines(context.Background(), &stubRunner{})
		require.NoError(t, err)
		require.Empty(t, lines)
	})
}

func TestWorkspaceRoot(t *testing.T) {
	t.Run("cleans the reported path", func(t *testing.T) {
		root, err := WorkspaceRoot(context.Background(), &stubRunner{output: "/work/repo/"}, "/work/repo/sub")
		require.NoError(t, err)
		require.Equal(t, "/work/repo", root)
	})

	t.Run("backend failure means not a repository", func(t *testing.T) {
		failing := &stubRunner{err: jigerrors.NewBackendCommandError("jj", []string{"workspace", "root"}, "", "no repo", nil)}

		_, err := WorkspaceRoot(context.Background(), failing, "/tmp")
		require.ErrorIs(t, err, jigerrors.ErrNotARepo)
	})
}

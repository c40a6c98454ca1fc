package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".jj"), 0o755))
	return root
}

func TestStore(t *testing.T) {
	store := NewStore()

	t.Run("missing file yields empty state", func(t *testing.T) {
		st, err := store.Load(tempWorkspace(t))
		require.NoError(t, err)
		require.Empty(t, st.Name)
		require.Empty(t, st.TaskID)
	})

	t.Run("round-trips", func(t *testing.T) {
		root := tempWorkspace(t)
		require.NoError(t, store.Save(root, &State{
			Name:      "feature-x",
			StackName: "auth-rework",
			TaskID:    "ENG-142",
		}))

		st, err := store.Load(root)
		require.NoError(t, err)
		require.Equal(t, "feature-x", st.Name)
		require.Equal(t, "auth-rework", st.StackName)
		require.Equal(t, "ENG-142", st.TaskID)
	})

	t.Run("clear removes the file and tolerates absence", func(t *testing.T) {
		root := tempWorkspace(t)
		require.NoError(t, store.Save(root, &State{Name: "feature-x"}))
		require.NoError(t, store.Clear(root))

		st, err := store.Load(root)
		require.NoError(t, err)
		require.Empty(t, st.Name)

		require.NoError(t, store.Clear(root))
	})
}

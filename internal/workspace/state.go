// Package workspace persists the association metadata jig keeps per
// workspace: which stack and tracker task it was created for. The backend
// knows nothing about these associations; they live in a TOML state file
// inside the workspace's own .jj directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// StateFileName is the state file name inside a workspace's .jj directory.
const StateFileName = "jig-state.toml"

// State is the association metadata for one workspace.
type State struct {
	// Name is the workspace's backend name. An absent state file means the
	// workspace is the default one.
	Name        string `toml:"name,omitempty"`
	StackName   string `toml:"stack_name,omitempty"`
	TaskID      string `toml:"task_id,omitempty"`
	Description string `toml:"description,omitempty"`
}

// Store reads and writes workspace state files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

func statePath(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, ".jj", StateFileName)
}

// Load reads the state for the workspace rooted at workspaceRoot.
// A missing file yields an empty state.
func (s *Store) Load(workspaceRoot string) (*State, error) {
	data, err := os.ReadFile(statePath(workspaceRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("failed to read workspace state: %w", err)
	}

	var st State
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse workspace state: %w", err)
	}
	return &st, nil
}

// Save writes the state for the workspace rooted at workspaceRoot.
func (s *Store) Save(workspaceRoot string, st *State) error {
	data, err := toml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace state: %w", err)
	}
	return os.WriteFile(statePath(workspaceRoot), data, 0600)
}

// Clear removes the state file for the workspace rooted at workspaceRoot.
// A missing file is not an error.
func (s *Store) Clear(workspaceRoot string) error {
	err := os.Remove(statePath(workspaceRoot))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

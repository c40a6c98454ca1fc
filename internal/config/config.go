// Package config provides repository configuration management,
// including reading and writing the jig configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the workspace's .jj directory.
const FileName = "jig.toml"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// Trunk is the remote-tracking bookmark stacks are rebased onto.
	// Empty means "use the backend's trunk() resolution".
	Trunk string `toml:"trunk,omitempty"`
	// Remote is the git remote used for fetch and push. Defaults to "origin".
	Remote string `toml:"remote,omitempty"`
	// DraftByDefault makes submit open PRs as drafts unless overridden.
	DraftByDefault bool `toml:"draft_by_default,omitempty"`
	// TrunkLookback bounds how many trunk descriptions merge detection scans.
	TrunkLookback int `toml:"trunk_lookback,omitempty"`
}

// DefaultTrunkLookback bounds merge-detection's trunk history scan.
const DefaultTrunkLookback = 100

func configPath(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, ".jj", FileName)
}

// Load reads the repository configuration. A missing file yields defaults.
func Load(workspaceRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(workspaceRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg RepoConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the repository configuration.
func Save(workspaceRoot string, cfg *RepoConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(workspaceRoot), data, 0600)
}

// TrunkRevset returns the revset used to resolve the trunk change.
// jj's own trunk() resolution is preferred; a configured bookmark wins.
func (c *RepoConfig) TrunkRevset() string {
	if c.Trunk != "" {
		return c.Trunk
	}
	return "trunk()"
}

// RemoteName returns the configured remote, defaulting to origin.
func (c *RepoConfig) RemoteName() string {
	if c.Remote != "" {
		return c.Remote
	}
	return "origin"
}

// Lookback returns the merge-detection trunk scan bound.
func (c *RepoConfig) Lookback() int {
	if c.TrunkLookback > 0 {
		return c.TrunkLookback
	}
	return DefaultTrunkLookback
}

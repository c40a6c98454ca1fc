// Package tracker defines the issue-tracker surface jig consumes. Concrete
// adapters (Linear, Notion) implement Client; jig only needs enough to bind
// workspaces to tasks and derive deterministic branch names.
package tracker

import (
	"context"
	"regexp"
	"strings"
)

// Task is an issue-tracker work item.
type Task struct {
	ID    string
	Key   string // human-facing key, e.g. "ENG-142"
	Title string
	URL   string
}

// Client is the issue-tracker interface.
type Client interface {
	// GetTask fetches a task by id or key.
	GetTask(ctx context.Context, id string) (*Task, error)

	// BranchName returns the tracker's canonical branch name for a task.
	BranchName(ctx context.Context, id string) (string, error)
}

var branchNameInvalid = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)
var branchNameHyphens = regexp.MustCompile(`-+`)

// DefaultBranchName derives a branch name from a task the way trackers
// conventionally do: lowercase key, hyphenated title.
func DefaultBranchName(t *Task) string {
	name := strings.ToLower(t.Key)
	if t.Title != "" {
		name += "-" + strings.ToLower(t.Title)
	}
	name = branchNameInvalid.ReplaceAllString(name, "-")
	name = branchNameHyphens.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

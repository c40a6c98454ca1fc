package engine

import (
	"context"
	"fmt"
	"strings"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/jj"
	"jig.dev/jig/internal/workspace"
)

// WorkspaceOptions carry the association metadata recorded when a workspace
// is created. The backend knows nothing about these.
type WorkspaceOptions struct {
	StackName   string
	TaskID      string
	Description string
}

func (e *engineImpl) workspaceEntries(ctx context.Context) ([]jj.WorkspaceEntry, error) {
	out, err := e.runner.Run(ctx, "workspace", "list")
	if err != nil {
		return nil, err
	}
	return jj.ParseWorkspaceList(out), nil
}

// CreateWorkspace creates a secondary working directory bound to the
// repository and records its association metadata.
func (e *engineImpl) CreateWorkspace(ctx context.Context, name, path string, opts WorkspaceOptions) (*Workspace, error) {
	entries, err := e.workspaceEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Name == name {
			return nil, fmt.Errorf("%w: %s", jigerrors.ErrWorkspaceExists, name)
		}
	}

	if _, err := e.runner.Run(ctx, "workspace", "add", "--name", name, path); err != nil {
		return nil, err
	}

	st := &workspace.State{
		Name:        name,
		StackName:   opts.StackName,
		TaskID:      opts.TaskID,
		Description: opts.Description,
	}
	if err := e.state.Save(path, st); err != nil {
		return nil, fmt.Errorf("workspace created but state not recorded: %w", err)
	}

	return &Workspace{
		Name:        name,
		Path:        path,
		StackName:   opts.StackName,
		TaskID:      opts.TaskID,
		Description: opts.Description,
		IsDefault:   false,
	}, nil
}

// ListWorkspaces lists all workspaces known to the backend. The default
// workspace is always present.
func (e *engineImpl) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	entries, err := e.workspaceEntries(ctx)
	if err != nil {
		return nil, err
	}

	workspaces := make([]Workspace, 0, len(entries))
	for _, entry := range entries {
		ws := Workspace{
			Name:      entry.Name,
			IsDefault: entry.Name == DefaultWorkspaceName,
		}
		// The summary column leads with the working-copy change id prefix.
		if fields := strings.Fields(entry.Rest); len(fields) > 0 {
			ws.CurrentChangeID = fields[0]
		}
		if entry.Name == e.mustCurrentWorkspaceName() {
			ws.Path = e.root
			if st, err := e.state.Load(e.root); err == nil {
				ws.StackName = st.StackName
				ws.TaskID = st.TaskID
				ws.Description = st.Description
			}
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

// ForgetWorkspace detaches a workspace from the repository. It never deletes
// the directory; that is the caller's explicit, separate step.
func (e *engineImpl) ForgetWorkspace(ctx context.Context, name string) error {
	if name == DefaultWorkspaceName {
		return jigerrors.ErrDefaultWorkspace
	}

	entries, err := e.workspaceEntries(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, entry := range entries {
		if entry.Name == name {
			found = true
			break
		}
	}
	if !found {
		return &jigerrors.WorkspaceNotFoundError{Name: name}
	}

	_, err = e.runner.Run(ctx, "workspace", "forget", name)
	return err
}

// CurrentWorkspaceName returns the name of the workspace containing the
// process's working directory. The name is recorded in the workspace state
// file at creation; a workspace without one is the default.
func (e *engineImpl) CurrentWorkspaceName() (string, error) {
	st, err := e.state.Load(e.root)
	if err != nil {
		return "", err
	}
	if st.Name == "" {
		return DefaultWorkspaceName, nil
	}
	return st.Name, nil
}

func (e *engineImpl) mustCurrentWorkspaceName() string {
	name, err := e.CurrentWorkspaceName()
	if err != nil {
		return DefaultWorkspaceName
	}
	return name
}

// IsNonDefaultWorkspace reports whether the active workspace is secondary.
func (e *engineImpl) IsNonDefaultWorkspace() (bool, error) {
	name, err := e.CurrentWorkspaceName()
	if err != nil {
		return false, err
	}
	return name != DefaultWorkspaceName, nil
}

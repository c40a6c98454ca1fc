package engine

import (
	"context"

	"jig.dev/jig/internal/config"
	"jig.dev/jig/internal/events"
	"jig.dev/jig/internal/forge"
	"jig.dev/jig/internal/jj"
	"jig.dev/jig/internal/tracker"
	"jig.dev/jig/internal/workspace"
)

// Engine is the stack orchestration surface consumed by the CLI layer.
type Engine interface {
	// WorkspaceRoot returns the root directory of the active workspace.
	WorkspaceRoot() string

	// Change repository (read paths)
	CurrentChange(ctx context.Context) (*Change, error)
	ParentChange(ctx context.Context) (*Change, error)
	// ChildChange returns the unique child of the current change, nil when
	// there is none, and AmbiguousStackError when there are several.
	ChildChange(ctx context.Context) (*Change, error)
	Log(ctx context.Context, revset string) ([]Change, error)
	// Stack returns trunk..@ in parent-first order. Empty is a valid steady
	// state, not an error.
	Stack(ctx context.Context) ([]Change, error)
	TrunkChange(ctx context.Context) (*Change, error)

	// Change lifecycle
	NewChange(ctx context.Context, message string) (*Change, error)
	Describe(ctx context.Context, message string) error

	// Bookmarks
	CreateBookmark(ctx context.Context, name string) error
	MoveBookmark(ctx context.Context, name string) error
	DeleteBookmark(ctx context.Context, name string) error
	ListBookmarks(ctx context.Context) ([]string, error)

	// Navigation
	StackUp(ctx context.Context) (*NavigateResult, error)
	StackDown(ctx context.Context) (*NavigateResult, error)

	// Synchronization
	Sync(ctx context.Context) (*SyncResult, error)
	Restack(ctx context.Context) (*SyncResult, error)

	// Submission
	Submit(ctx context.Context, opts SubmitOptions) (*SubmitResult, error)

	// Workspaces
	CreateWorkspace(ctx context.Context, name, path string, opts WorkspaceOptions) (*Workspace, error)
	ListWorkspaces(ctx context.Context) ([]Workspace, error)
	ForgetWorkspace(ctx context.Context, name string) error
	CurrentWorkspaceName() (string, error)
	IsNonDefaultWorkspace() (bool, error)

	// Recovery
	Undo(ctx context.Context) (*UndoResult, error)
	UpdateStale(ctx context.Context) (*RepairResult, error)
}

// Deps are the collaborators an engine coordinates. Runner is required;
// the service clients may be nil, in which case the operations needing them
// fail with a descriptive error (Submit) or skip the optional step
// (webhook subscription).
type Deps struct {
	Runner  jj.Runner
	Forge   forge.Client
	Tracker tracker.Client
	Events  events.Subscriber
}

type engineImpl struct {
	root    string
	cfg     *config.RepoConfig
	runner  jj.Runner
	state   *workspace.Store
	forge   forge.Client
	tracker tracker.Client
	events  events.Subscriber
}

// NewEngine creates an engine for the workspace rooted at workspaceRoot.
func NewEngine(workspaceRoot string, cfg *config.RepoConfig, deps Deps) Engine {
	if cfg == nil {
		cfg = &config.RepoConfig{}
	}
	return &engineImpl{
		root:    workspaceRoot,
		cfg:     cfg,
		runner:  deps.Runner,
		state:   workspace.NewStore(),
		forge:   deps.Forge,
		tracker: deps.Tracker,
		events:  deps.Events,
	}
}

// Open resolves the workspace root for dir and creates an engine for it.
func Open(ctx context.Context, dir string, deps Deps) (Engine, error) {
	root, err := jj.WorkspaceRoot(ctx, deps.Runner, dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return NewEngine(root, cfg, deps), nil
}

func (e *engineImpl) WorkspaceRoot() string {
	return e.root
}

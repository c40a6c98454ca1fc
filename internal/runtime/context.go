package runtime

import (
	"context"
	"os"

	"jig.dev/jig/internal/config"
	"jig.dev/jig/internal/engine"
	"jig.dev/jig/internal/events"
	"jig.dev/jig/internal/forge"
	"jig.dev/jig/internal/jj"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/tracker"
)

// EventsURLEnv names the env var pointing at a running event forwarder's
// control endpoint. Unset means no webhook subscriptions.
const EventsURLEnv = "JIG_EVENTS_URL"

// LinearAPIKeyEnv names the env var holding a Linear API key. Unset means
// no issue-tracker integration.
const LinearAPIKeyEnv = "LINEAR_API_KEY"

// Context provides access to the engine and output for commands.
type Context struct {
	Engine   engine.Engine
	Splog    *output.Splog
	RepoRoot string
	Forge    forge.Client
	Events   events.Subscriber
}

// NewContext creates a context around an already-built engine. Used by tests
// and anywhere the collaborators are assembled by hand.
func NewContext(eng engine.Engine) *Context {
	return &Context{
		Engine: eng,
		Splog:  output.NewSplog(),
	}
}

// GetContext builds the context for the repository containing the current
// working directory. The forge client is optional: without a token, commands
// that do not touch the pull-request service still work.
func GetContext(ctx context.Context) (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	runner := jj.NewCommandRunner(cwd)

	root, err := jj.WorkspaceRoot(ctx, runner, cwd)
	if err != nil {
		return nil, err
	}
	runner.SetWorkingDir(root)

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	deps := engine.Deps{Runner: runner}
	if forgeClient, err := forge.NewGitHubClient(ctx, root, cfg.RemoteName()); err == nil {
		deps.Forge = forgeClient
	}
	if url := os.Getenv(EventsURLEnv); url != "" {
		deps.Events = events.NewHTTPSubscriber(url)
	}
	if key := os.Getenv(LinearAPIKeyEnv); key != "" {
		deps.Tracker = tracker.NewLinearClient(key)
	}

	return &Context{
		Engine:   engine.NewEngine(root, cfg, deps),
		Splog:    output.NewSplog(),
		RepoRoot: root,
		Forge:    deps.Forge,
		Events:   deps.Events,
	}, nil
}

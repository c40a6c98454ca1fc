package jj

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	jigerrors "jig.dev/jig/internal/errors"
)

// DefaultCommandTimeout is the default timeout for jj commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner defines the jj invocation surface used by the engine.
// This allows the engine to be used with both the real backend and
// scripted fakes in tests.
type Runner interface {
	// Run executes a jj command in the runner's working directory.
	Run(ctx context.Context, args ...string) (string, error)
	// RunInDir executes a jj command in a specific directory.
	RunInDir(ctx context.Context, dir string, args ...string) (string, error)
	// RunWithStderr executes a jj command and returns both output streams.
	// jj reserves stdout for requested (templated) data and writes status
	// messages to stderr, so callers classifying an outcome by message need
	// stderr even on success.
	RunWithStderr(ctx context.Context, args ...string) (stdout, stderr string, err error)
}

// CommandRunner handles execution of jj commands.
// Mutating commands are never retried here: a retried mutation could
// duplicate history side effects, so idempotence is the caller's problem.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// SetWorkingDir sets the working directory for subsequent commands.
func (r *CommandRunner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

// WorkingDir returns the configured working directory.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a jj command and returns trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	stdout, _, err := r.runInternal(ctx, r.workingDir, args...)
	return stdout, err
}

// RunInDir executes a jj command in dir and returns trimmed stdout
func (r *CommandRunner) RunInDir(ctx context.Context, dir string, args ...string) (string, error) {
	stdout, _, err := r.runInternal(ctx, dir, args...)
	return stdout, err
}

// RunWithStderr executes a jj command and returns trimmed stdout and stderr
func (r *CommandRunner) RunWithStderr(ctx context.Context, args ...string) (string, string, error) {
	return r.runInternal(ctx, r.workingDir, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, dir string, args ...string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	// jj pagination would block a captured invocation
	cmd := exec.CommandContext(ctx, "jj", append([]string{"--no-pager"}, args...)...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = append(os.Environ(), "NO_COLOR=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", "", jigerrors.NewBackendCommandError("jj", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", "", jigerrors.NewBackendCommandError("jj", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), nil
}

// RunLines executes a jj command and returns non-empty output lines
func RunLines(ctx context.Context, r Runner, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	lines := strings.Split(output, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

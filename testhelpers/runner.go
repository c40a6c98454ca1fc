// Package testhelpers provides scripted fakes for the engine's
// collaborators: the backend runner, the pull-request service, the issue
// tracker, and the event subscriber.
package testhelpers

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type scriptedResponse struct {
	output string
	stderr string
	err    error
}

type script struct {
	queue  []scriptedResponse
	sticky *scriptedResponse
}

// FakeRunner is a scripted jj.Runner. Every expected command line is
// registered up front; an unscripted command fails the calling code with a
// descriptive error so tests surface drift in argument construction.
type FakeRunner struct {
	mu      sync.Mutex
	scripts map[string]*script
	calls   [][]string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{scripts: make(map[string]*script)}
}

func key(args []string) string {
	return strings.Join(args, "\x1f")
}

func (r *FakeRunner) scriptFor(args []string) *script {
	k := key(args)
	s, ok := r.scripts[k]
	if !ok {
		s = &script{}
		r.scripts[k] = s
	}
	return s
}

// Respond registers a sticky response: every invocation of the command line
// returns output.
func (r *FakeRunner) Respond(output string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scriptFor(args).sticky = &scriptedResponse{output: output}
}

// RespondOnce queues a one-shot response, consumed before any sticky one.
// Multiple calls queue in order, so a command whose output evolves across an
// operation can be scripted step by step.
func (r *FakeRunner) RespondOnce(output string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.scriptFor(args)
	s.queue = append(s.queue, scriptedResponse{output: output})
}

// RespondStderr registers a sticky response delivered on stderr, the stream
// jj uses for status messages. Only visible through RunWithStderr.
func (r *FakeRunner) RespondStderr(stderr string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scriptFor(args).sticky = &scriptedResponse{stderr: stderr}
}

// RespondOnceStderr queues a one-shot stderr response.
func (r *FakeRunner) RespondOnceStderr(stderr string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.scriptFor(args)
	s.queue = append(s.queue, scriptedResponse{stderr: stderr})
}

// Fail registers a sticky error for the command line.
func (r *FakeRunner) Fail(err error, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scriptFor(args).sticky = &scriptedResponse{err: err}
}

// FailOnce queues a one-shot error.
func (r *FakeRunner) FailOnce(err error, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.scriptFor(args)
	s.queue = append(s.queue, scriptedResponse{err: err})
}

func (r *FakeRunner) dispatch(args []string) (scriptedResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, args)

	s, ok := r.scripts[key(args)]
	if !ok {
		return scriptedResponse{}, fmt.Errorf("unscripted command: jj %s", strings.Join(args, " "))
	}
	if len(s.queue) > 0 {
		resp := s.queue[0]
		s.queue = s.queue[1:]
		return resp, nil
	}
	if s.sticky != nil {
		return *s.sticky, nil
	}
	return scriptedResponse{}, fmt.Errorf("script exhausted for command: jj %s", strings.Join(args, " "))
}

// Run dispatches to the registered script for args.
func (r *FakeRunner) Run(_ context.Context, args ...string) (string, error) {
	resp, err := r.dispatch(args)
	if err != nil {
		return "", err
	}
	return resp.output, resp.err
}

// RunInDir behaves like Run; the fake has no notion of directories.
func (r *FakeRunner) RunInDir(ctx context.Context, _ string, args ...string) (string, error) {
	return r.Run(ctx, args...)
}

// RunWithStderr dispatches like Run and also returns the scripted stderr.
func (r *FakeRunner) RunWithStderr(_ context.Context, args ...string) (string, string, error) {
	resp, err := r.dispatch(args)
	if err != nil {
		return "", "", err
	}
	return resp.output, resp.stderr, resp.err
}

// Calls returns every command line issued so far.
func (r *FakeRunner) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how many times the exact command line was issued.
func (r *FakeRunner) CallCount(args ...string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(args)
	n := 0
	for _, call := range r.calls {
		if key(call) == k {
			n++
		}
	}
	return n
}

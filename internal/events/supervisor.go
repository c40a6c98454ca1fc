package events

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ForwarderSupervisor owns at most one long-lived event-forwarding subprocess
// per CLI session. It guarantees the child is killed on every exit path,
// including interrupts; it is owned by the top-level command and never stored
// as ambient global state.
type ForwarderSupervisor struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	sigDone chan struct{}
}

// NewForwarderSupervisor creates an idle supervisor.
func NewForwarderSupervisor() *ForwarderSupervisor {
	return &ForwarderSupervisor{}
}

// Start launches the forwarder with the given command line. It fails if a
// forwarder is already running under this supervisor.
func (s *ForwarderSupervisor) Start(name string, args ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return fmt.Errorf("forwarder already running (pid %d)", s.cmd.Process.Pid)
	}

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start forwarder: %w", err)
	}
	s.cmd = cmd

	// Kill the child when the CLI itself is interrupted.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	s.sigDone = done
	go func() {
		select {
		case <-sigs:
			_ = s.Stop()
		case <-done:
		}
		signal.Stop(sigs)
	}()

	return nil
}

// Running reports whether a forwarder is currently running.
func (s *ForwarderSupervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

// Stop terminates the forwarder if one is running. It sends SIGTERM first and
// escalates to SIGKILL after a short grace period.
func (s *ForwarderSupervisor) Stop() error {
	s.mu.Lock()
	cmd := s.cmd
	done := s.sigDone
	s.cmd = nil
	s.sigDone = nil
	s.mu.Unlock()

	if cmd == nil {
		return nil
	}
	if done != nil {
		close(done)
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		_ = cmd.Process.Kill()
	}

	waited := make(chan error, 1)
	go func() { waited <- cmd.Wait() }()
	select {
	case <-waited:
	case <-time.After(3 * time.Second):
		_ = cmd.Process.Kill()
		<-waited
	}
	return nil
}

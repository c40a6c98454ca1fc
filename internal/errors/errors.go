// Package errors provides sentinel errors and custom error types for the jig application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepo indicates that the directory is not inside a jj repository
	ErrNotARepo = errors.New("not a jj repository")

	// ErrBookmarkExists indicates that a bookmark with the same name already exists
	ErrBookmarkExists = errors.New("bookmark already exists")

	// ErrBookmarkNotFound indicates that a bookmark does not exist
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrAmbiguousStack indicates that stack navigation has no single linear path
	ErrAmbiguousStack = errors.New("ambiguous stack")

	// ErrRebaseConflict indicates that a rebase left unresolved conflicts
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrAtTrunk indicates an operation that requires a change above trunk
	ErrAtTrunk = errors.New("working copy is at trunk")

	// ErrWorkspaceExists indicates that a workspace with the same name already exists
	ErrWorkspaceExists = errors.New("workspace already exists")

	// ErrWorkspaceNotFound indicates that a workspace does not exist
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrDefaultWorkspace indicates an operation that is invalid on the default workspace
	ErrDefaultWorkspace = errors.New("invalid operation on default workspace")
)

// BookmarkExistsError is returned when creating a bookmark whose name is taken
type BookmarkExistsError struct {
	Name string
}

func (e *BookmarkExistsError) Error() string {
	return fmt.Sprintf("bookmark %s already exists", e.Name)
}

// Is returns true if the target error is ErrBookmarkExists
func (e *BookmarkExistsError) Is(target error) bool {
	return target == ErrBookmarkExists
}

// NewBookmarkExistsError creates a new BookmarkExistsError
func NewBookmarkExistsError(name string) *BookmarkExistsError {
	return &BookmarkExistsError{Name: name}
}

// BookmarkNotFoundError is returned when moving or deleting a missing bookmark
type BookmarkNotFoundError struct {
	Name string
}

func (e *BookmarkNotFoundError) Error() string {
	return fmt.Sprintf("bookmark %s does not exist", e.Name)
}

// Is returns true if the target error is ErrBookmarkNotFound
func (e *BookmarkNotFoundError) Is(target error) bool {
	return target == ErrBookmarkNotFound
}

// NewBookmarkNotFoundError creates a new BookmarkNotFoundError
func NewBookmarkNotFoundError(name string) *BookmarkNotFoundError {
	return &BookmarkNotFoundError{Name: name}
}

// AmbiguousStackError is returned when navigation is undefined because the
// current change has more than one candidate in the requested direction.
type AmbiguousStackError struct {
	Direction  string // "up" or "down"
	Candidates int
}

func (e *AmbiguousStackError) Error() string {
	return fmt.Sprintf("cannot move %s: %d candidate changes", e.Direction, e.Candidates)
}

// Is returns true if the target error is ErrAmbiguousStack
func (e *AmbiguousStackError) Is(target error) bool {
	return target == ErrAmbiguousStack
}

// NewAmbiguousStackError creates a new AmbiguousStackError
func NewAmbiguousStackError(direction string, candidates int) *AmbiguousStackError {
	return &AmbiguousStackError{Direction: direction, Candidates: candidates}
}

// WorkspaceNotFoundError is returned when a named workspace does not exist
type WorkspaceNotFoundError struct {
	Name string
}

func (e *WorkspaceNotFoundError) Error() string {
	return fmt.Sprintf("workspace %s does not exist", e.Name)
}

// Is returns true if the target error is ErrWorkspaceNotFound
func (e *WorkspaceNotFoundError) Is(target error) bool {
	return target == ErrWorkspaceNotFound
}

// BackendCommandError represents a failed jj command execution
type BackendCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *BackendCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed: %s", e.Command, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *BackendCommandError) Unwrap() error {
	return e.Err
}

// NewBackendCommandError creates a new BackendCommandError
func NewBackendCommandError(command string, args []string, stdout, stderr string, err error) *BackendCommandError {
	return &BackendCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

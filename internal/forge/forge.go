// Package forge provides a client for the pull-request hosting service.
package forge

import "context"

// PullRequest contains information about a pull request.
// This is a simplified struct to avoid coupling callers to the go-github library.
type PullRequest struct {
	Number  int
	HTMLURL string
	Title   string
	Body    string
	State   string
	Draft   bool
	Base    string
	Head    string
}

// CreatePROptions are the fields used to open a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// UpdatePROptions are the fields used to update a pull request.
// Nil pointers leave the corresponding field untouched.
type UpdatePROptions struct {
	Title *string
	Body  *string
	Base  *string
}

// Client is an interface for pull-request service interactions
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequest, error)

	// UpdatePullRequest updates an existing pull request
	UpdatePullRequest(ctx context.Context, number int, opts UpdatePROptions) (*PullRequest, error)

	// GetPullRequestByBranch returns the open PR whose head is branchName, or nil
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequest, error)

	// OwnerRepo returns the repository owner and name
	OwnerRepo() (owner, repo string)
}

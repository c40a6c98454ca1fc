package forge

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// GitHubClient implements Client using the GitHub API
type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubClient creates a GitHubClient for the repository at workspaceRoot.
// The token is taken from GITHUB_TOKEN or GH_TOKEN; owner and repo are
// resolved from the colocated git remote.
func NewGitHubClient(ctx context.Context, workspaceRoot, remote string) (*GitHubClient, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("no GitHub token found: set GITHUB_TOKEN or GH_TOKEN")
	}

	owner, repo, err := ResolveOwnerRepo(workspaceRoot, remote)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository from remote %s: %w", remote, err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)

	return &GitHubClient{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}, nil
}

// OwnerRepo returns the repository owner and name
func (c *GitHubClient) OwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreatePullRequest creates a new pull request
func (c *GitHubClient) CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequest, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	created, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	return toPullRequest(created), nil
}

// UpdatePullRequest updates an existing pull request
func (c *GitHubClient) UpdatePullRequest(ctx context.Context, number int, opts UpdatePROptions) (*PullRequest, error) {
	update := &github.PullRequest{}
	if opts.Title != nil {
		update.Title = opts.Title
	}
	if opts.Body != nil {
		update.Body = opts.Body
	}
	if opts.Base != nil {
		update.Base = &github.PullRequestBranch{Ref: opts.Base}
	}

	updated, _, err := c.client.PullRequests.Edit(ctx, c.owner, c.repo, number, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update pull request #%d: %w", number, err)
	}
	return toPullRequest(updated), nil
}

// GetPullRequestByBranch returns the open PR whose head is branchName, or nil
func (c *GitHubClient) GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequest, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branchName, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequest(prs[0]), nil
}

func toPullRequest(pr *github.PullRequest) *PullRequest {
	if pr == nil {
		return nil
	}
	out := &PullRequest{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		Body:    pr.GetBody(),
		State:   pr.GetState(),
		Draft:   pr.GetDraft(),
	}
	if pr.Base != nil {
		out.Base = pr.Base.GetRef()
	}
	if pr.Head != nil {
		out.Head = pr.Head.GetRef()
	}
	return out
}

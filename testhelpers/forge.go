package testhelpers

import (
	"context"
	"fmt"
	"sync"

	"jig.dev/jig/internal/forge"
)

// FakeForge is an in-memory forge.Client keeping PRs keyed by head branch.
type FakeForge struct {
	mu         sync.Mutex
	prsByHead  map[string]*forge.PullRequest
	nextNumber int

	CreateErr error
	UpdateErr error
	GetErr    error

	CreateCalls []forge.CreatePROptions
	UpdateCalls []int
}

// NewFakeForge creates an empty FakeForge.
func NewFakeForge() *FakeForge {
	return &FakeForge{
		prsByHead:  make(map[string]*forge.PullRequest),
		nextNumber: 1,
	}
}

// SeedPR registers an existing open PR for a head branch.
func (f *FakeForge) SeedPR(pr forge.PullRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := pr
	f.prsByHead[pr.Head] = &copied
	if pr.Number >= f.nextNumber {
		f.nextNumber = pr.Number + 1
	}
}

func (f *FakeForge) CreatePullRequest(_ context.Context, opts forge.CreatePROptions) (*forge.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls = append(f.CreateCalls, opts)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	pr := &forge.PullRequest{
		Number:  f.nextNumber,
		HTMLURL: fmt.Sprintf("https://github.com/acme/widgets/pull/%d", f.nextNumber),
		Title:   opts.Title,
		Body:    opts.Body,
		State:   "open",
		Draft:   opts.Draft,
		Base:    opts.Base,
		Head:    opts.Head,
	}
	f.nextNumber++
	f.prsByHead[opts.Head] = pr
	copied := *pr
	return &copied, nil
}

func (f *FakeForge) UpdatePullRequest(_ context.Context, number int, opts forge.UpdatePROptions) (*forge.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, number)
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}

	for _, pr := range f.prsByHead {
		if pr.Number != number {
			continue
		}
		if opts.Title != nil {
			pr.Title = *opts.Title
		}
		if opts.Body != nil {
			pr.Body = *opts.Body
		}
		if opts.Base != nil {
			pr.Base = *opts.Base
		}
		copied := *pr
		return &copied, nil
	}
	return nil, fmt.Errorf("no pull request #%d", number)
}

func (f *FakeForge) GetPullRequestByBranch(_ context.Context, branchName string) (*forge.PullRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	pr, ok := f.prsByHead[branchName]
	if !ok {
		return nil, nil
	}
	copied := *pr
	return &copied, nil
}

func (f *FakeForge) OwnerRepo() (string, string) {
	return "acme", "widgets"
}

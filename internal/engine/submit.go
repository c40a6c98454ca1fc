package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/forge"
	"jig.dev/jig/internal/tracker"
	"jig.dev/jig/internal/utils"
)

// prLookupConcurrency bounds the fan-out when resolving PRs for a whole
// stack. A latency optimization only; correctness never depends on it.
const prLookupConcurrency = 4

// Submit pushes the current change's bookmark and creates or updates its
// pull request. Push and PR step are reported independently: a failed PR
// step after a successful push yields Pushed=true with a warning, not a
// hard failure.
func (e *engineImpl) Submit(ctx context.Context, opts SubmitOptions) (*SubmitResult, error) {
	if e.forge == nil {
		return nil, fmt.Errorf("no pull-request service configured: set GITHUB_TOKEN")
	}

	current, err := e.CurrentChange(ctx)
	if err != nil {
		return nil, err
	}
	stack, err := e.Stack(ctx)
	if err != nil {
		return nil, err
	}
	if stackIsSettled(stack) {
		return nil, fmt.Errorf("%w: nothing to submit", jigerrors.ErrAtTrunk)
	}
	if current.Description == "" {
		return nil, fmt.Errorf("change %s has no description; describe it before submitting", current.ChangeID)
	}

	result := &SubmitResult{}
	if err := e.ensureBookmark(ctx, current, opts.Bookmark, result); err != nil {
		return nil, err
	}

	if _, err := e.runner.Run(ctx, "git", "push", "--bookmark", result.Bookmark, "--allow-new"); err != nil {
		return result, fmt.Errorf("failed to push bookmark %s: %w", result.Bookmark, err)
	}
	result.Pushed = true

	// The dominant side effect (code on the remote) has happened; from here
	// every failure is reported as a warning on a successful result.
	if err := e.upsertPullRequest(ctx, current, opts, result); err != nil {
		result.Warning = fmt.Sprintf("bookmark pushed but pull request step failed: %v", err)
		return result, nil
	}

	if opts.SessionID != "" && e.events != nil {
		e.subscribeStack(ctx, opts.SessionID, stack, result)
	}

	return result, nil
}

// ensureBookmark resolves which bookmark marks the PR head, creating one
// with a deterministic default name when the change has none.
func (e *engineImpl) ensureBookmark(ctx context.Context, current *Change, requested string, result *SubmitResult) error {
	name := requested
	if name == "" {
		if len(current.Bookmarks) > 0 {
			sorted := slices.Clone(current.Bookmarks)
			slices.Sort(sorted)
			result.Bookmark = sorted[0]
			return nil
		}
		var err error
		name, err = e.defaultBookmarkName(ctx, current)
		if err != nil {
			return err
		}
	}

	if slices.Contains(current.Bookmarks, name) {
		result.Bookmark = name
		return nil
	}

	existing, err := e.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(existing, name) {
		// The bookmark exists but points elsewhere: repoint it at the change
		// being submitted.
		if err := e.MoveBookmark(ctx, name); err != nil {
			return err
		}
	} else {
		if err := e.CreateBookmark(ctx, name); err != nil {
			return err
		}
		result.BookmarkCreated = true
	}
	result.Bookmark = name
	return nil
}

// defaultBookmarkName derives a deterministic bookmark name: the tracker's
// branch name when the workspace is bound to a task, else a slug of the
// change description.
func (e *engineImpl) defaultBookmarkName(ctx context.Context, current *Change) (string, error) {
	st, err := e.state.Load(e.root)
	if err == nil && st.TaskID != "" && e.tracker != nil {
		name, err := e.tracker.BranchName(ctx, st.TaskID)
		if err == nil && name != "" {
			return name, nil
		}
		task, err := e.tracker.GetTask(ctx, st.TaskID)
		if err == nil && task != nil {
			return tracker.DefaultBranchName(task), nil
		}
	}

	name := utils.SanitizeBookmarkName(current.Description)
	if name == "" {
		return "", fmt.Errorf("cannot derive a bookmark name from change %s", current.ChangeID)
	}
	return name, nil
}

// upsertPullRequest creates or updates the PR for the submitted bookmark and
// tags the result with how it concluded.
func (e *engineImpl) upsertPullRequest(ctx context.Context, current *Change, opts SubmitOptions, result *SubmitResult) error {
	base, err := e.prBaseBranch(ctx)
	if err != nil {
		return err
	}

	existing, err := e.forge.GetPullRequestByBranch(ctx, result.Bookmark)
	if err != nil {
		return err
	}

	if existing == nil {
		title := opts.Title
		if title == "" {
			title = current.Description
		}
		pr, err := e.forge.CreatePullRequest(ctx, forge.CreatePROptions{
			Title: title,
			Body:  opts.Body,
			Head:  result.Bookmark,
			Base:  base,
			Draft: opts.Draft || e.cfg.DraftByDefault,
		})
		if err != nil {
			return err
		}
		result.PRNumber = pr.Number
		result.PRURL = pr.HTMLURL
		result.Status = SubmitCreated
		return nil
	}

	result.PRNumber = existing.Number
	result.PRURL = existing.HTMLURL

	update, dirty := diffPullRequest(existing, opts, base)
	if !dirty {
		result.Status = SubmitExists
		return nil
	}

	pr, err := e.forge.UpdatePullRequest(ctx, existing.Number, update)
	if err != nil {
		return err
	}
	result.PRURL = pr.HTMLURL
	result.Status = SubmitUpdated
	return nil
}

// prBaseBranch resolves the PR base: the parent change's bookmark for a
// stacked PR, else the trunk's branch name.
func (e *engineImpl) prBaseBranch(ctx context.Context) (string, error) {
	parent, err := e.ParentChange(ctx)
	if err != nil {
		return "", err
	}
	if parent != nil && len(parent.Bookmarks) > 0 {
		trunk, err := e.TrunkChange(ctx)
		if err != nil {
			return "", err
		}
		if parent.ChangeID != trunk.ChangeID {
			sorted := slices.Clone(parent.Bookmarks)
			slices.Sort(sorted)
			return sorted[0], nil
		}
	}
	return e.trunkBranchName(), nil
}

// trunkBranchName strips the remote suffix from a configured trunk bookmark
// like "main@origin".
func (e *engineImpl) trunkBranchName() string {
	trunk := e.cfg.Trunk
	if trunk == "" {
		return "main"
	}
	if name, _, found := strings.Cut(trunk, "@"); found {
		return name
	}
	return trunk
}

// subscribeStack registers the session for webhook events on every PR in the
// stack. Fire-and-forget: a subscription failure never fails the submit.
func (e *engineImpl) subscribeStack(ctx context.Context, sessionID string, stack []Change, result *SubmitResult) {
	numbers := []int{}
	if result.PRNumber != 0 {
		numbers = append(numbers, result.PRNumber)
	}

	// Bounded fan-out over the other bookmarks in the stack.
	var group errgroup.Group
	group.SetLimit(prLookupConcurrency)
	found := make([]int, len(stack))
	for i, change := range stack {
		if len(change.Bookmarks) == 0 {
			continue
		}
		// First sorted bookmark, matching how ensureBookmark picked the PR head.
		bookmark := slices.Min(change.Bookmarks)
		if bookmark == result.Bookmark {
			continue
		}
		i := i
		group.Go(func() error {
			pr, err := e.forge.GetPullRequestByBranch(ctx, bookmark)
			if err == nil && pr != nil {
				found[i] = pr.Number
			}
			return nil
		})
	}
	_ = group.Wait()

	for _, number := range found {
		if number != 0 {
			numbers = append(numbers, number)
		}
	}
	if len(numbers) == 0 {
		return
	}
	_ = e.events.Subscribe(ctx, sessionID, numbers)
}

func diffPullRequest(existing *forge.PullRequest, opts SubmitOptions, base string) (forge.UpdatePROptions, bool) {
	var update forge.UpdatePROptions
	dirty := false
	if opts.Title != "" && opts.Title != existing.Title {
		title := opts.Title
		update.Title = &title
		dirty = true
	}
	if opts.Body != "" && opts.Body != existing.Body {
		body := opts.Body
		update.Body = &body
		dirty = true
	}
	if base != "" && base != existing.Base {
		baseCopy := base
		update.Base = &baseCopy
		dirty = true
	}
	return update, dirty
}

package engine

import (
	"time"

	"jig.dev/jig/internal/jj"
)

// DefaultWorkspaceName is the reserved name of the primary workspace.
const DefaultWorkspaceName = "default"

// Change is one unit of work in the backend's history. ChangeID survives
// rewrites; CommitID is recomputed whenever ancestry or content changes.
type Change struct {
	ChangeID      string
	CommitID      string
	Description   string // first line of the backend description
	Author        string
	Timestamp     time.Time
	Bookmarks     []string
	IsWorkingCopy bool
	IsEmpty       bool
	IsConflicted  bool
}

func fromRecord(rec jj.Change) Change {
	return Change{
		ChangeID:      rec.ChangeID,
		CommitID:      rec.CommitID,
		Description:   rec.Description,
		Author:        rec.Author,
		Timestamp:     rec.Timestamp,
		Bookmarks:     rec.Bookmarks,
		IsWorkingCopy: rec.IsWorkingCopy,
		IsEmpty:       rec.IsEmpty,
		IsConflicted:  rec.IsConflicted,
	}
}

func fromRecords(recs []jj.Change) []Change {
	changes := make([]Change, len(recs))
	for i, rec := range recs {
		changes[i] = fromRecord(rec)
	}
	return changes
}

// Workspace is an independent working directory sharing one repository.
type Workspace struct {
	Name            string
	Path            string
	CurrentChangeID string
	Description     string
	StackName       string
	TaskID          string
	IsDefault       bool
}

// NavigateResult describes one stack navigation attempt. Reaching a terminal
// position is not an error: Moved is false and To equals From.
type NavigateResult struct {
	Moved bool
	From  Change
	To    Change
}

// SyncResult describes the outcome of one synchronization attempt.
// It is ephemeral: returned to the caller once, never persisted.
type SyncResult struct {
	Fetched                bool
	Rebased                bool
	Conflicted             bool
	TrunkChangeID          string
	StackSizeAfter         int
	AbandonedMergedChanges []Change
	StackFullyMerged       bool
	CleanedUpWorkspace     string
	// Warning carries non-fatal cleanup failures. They are reported to the
	// user but never returned as the operation's primary error.
	Warning string
}

// SubmitStatus tags how the PR step of a submission concluded.
type SubmitStatus string

const (
	// SubmitCreated means a new pull request was opened
	SubmitCreated SubmitStatus = "created"
	// SubmitUpdated means an existing pull request was modified
	SubmitUpdated SubmitStatus = "updated"
	// SubmitExists means an up-to-date pull request already existed
	SubmitExists SubmitStatus = "exists"
)

// SubmitOptions control one submission.
type SubmitOptions struct {
	// Bookmark is the bookmark to submit. Empty means derive a default from
	// the change's task association or description.
	Bookmark string
	Draft    bool
	Title    string
	Body     string
	// SessionID, when set, registers webhook subscriptions for the stack's
	// PR numbers after submission.
	SessionID string
}

// SubmitResult describes the outcome of one submission. Pushed can be true
// while the PR step failed; Warning then carries the partial-failure detail.
type SubmitResult struct {
	Bookmark        string
	BookmarkCreated bool
	Pushed          bool
	PRNumber        int
	PRURL           string
	Status          SubmitStatus
	Warning         string
}

// UndoResult reports the backend operation that was reverted.
type UndoResult struct {
	Operation string
}

// RepairResult reports a stale working-copy repair. Updated is false when the
// working copy was already consistent.
type RepairResult struct {
	Updated bool
}

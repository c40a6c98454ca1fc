package jj

import (
	"fmt"
	"strings"
	"time"
)

// ChangeTemplate is the jj template used for every change query. One change
// per line, fields joined by a tab; descriptions are narrowed to their first
// line so the record stays line-oriented. Full descriptions are fetched
// separately when needed.
//
// Backend-version sensitivity lives entirely in this file: if a jj release
// changes template semantics, only the template and ParseChangeLine move.
const ChangeTemplate = `change_id.short() ++ "\t" ++ commit_id.short() ++ "\t" ++ ` +
	`author.email() ++ "\t" ++ committer.timestamp().format("%Y-%m-%dT%H:%M:%S%z") ++ "\t" ++ ` +
	`bookmarks.join(",") ++ "\t" ++ ` +
	`if(current_working_copy, "true", "false") ++ "\t" ++ ` +
	`if(empty, "true", "false") ++ "\t" ++ ` +
	`if(conflict, "true", "false") ++ "\t" ++ ` +
	`description.first_line() ++ "\n"`

const changeFieldCount = 9

// DescriptionTemplate extracts a change's full description.
const DescriptionTemplate = `description`

// OperationTemplate extracts the latest operation's description from the op log.
const OperationTemplate = `description ++ "\n"`

// BookmarkListTemplate lists bookmark names, one per line.
const BookmarkListTemplate = `name ++ "\n"`

// TitleTemplate extracts description first lines, one per line. Used by
// merge detection to scan recent trunk history.
const TitleTemplate = `description.first_line() ++ "\n"`

// Change is a typed record for one jj change.
type Change struct {
	ChangeID      string
	CommitID      string
	Author        string
	Timestamp     time.Time
	Bookmarks     []string
	IsWorkingCopy bool
	IsEmpty       bool
	IsConflicted  bool
	Description   string // first line only
}

// Title returns the first line of the description.
func (c Change) Title() string {
	return c.Description
}

// ParseChangeLine parses a single line produced by ChangeTemplate.
func ParseChangeLine(line string) (Change, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != changeFieldCount {
		return Change{}, fmt.Errorf("malformed change record: got %d fields, want %d: %q", len(fields), changeFieldCount, line)
	}

	ts, err := time.Parse("2006-01-02T15:04:05-0700", fields[3])
	if err != nil {
		// Some jj builds emit a colon in the zone offset
		ts, err = time.Parse("2006-01-02T15:04:05-07:00", fields[3])
		if err != nil {
			return Change{}, fmt.Errorf("malformed change timestamp %q: %w", fields[3], err)
		}
	}

	var bookmarks []string
	if fields[4] != "" {
		bookmarks = strings.Split(fields[4], ",")
	}

	return Change{
		ChangeID:      fields[0],
		CommitID:      fields[1],
		Author:        fields[2],
		Timestamp:     ts,
		Bookmarks:     bookmarks,
		IsWorkingCopy: fields[5] == "true",
		IsEmpty:       fields[6] == "true",
		IsConflicted:  fields[7] == "true",
		Description:   fields[8],
	}, nil
}

// ParseChangeLines parses multi-line ChangeTemplate output. Empty output is a
// valid empty result, not an error.
func ParseChangeLines(output string) ([]Change, error) {
	output = strings.TrimRight(output, "\n")
	if strings.TrimSpace(output) == "" {
		return []Change{}, nil
	}

	lines := strings.Split(output, "\n")
	changes := make([]Change, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		change, err := ParseChangeLine(line)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// WorkspaceEntry is one row of `jj workspace list`.
type WorkspaceEntry struct {
	Name string
	Rest string // trailing text after the name, typically "<change> <description>"
}

// ParseWorkspaceList parses `jj workspace list` output of the form
// "name: <working copy summary>".
func ParseWorkspaceList(output string) []WorkspaceEntry {
	var entries []WorkspaceEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		entries = append(entries, WorkspaceEntry{
			Name: strings.TrimSpace(name),
			Rest: strings.TrimSpace(rest),
		})
	}
	return entries
}

package testhelpers

import (
	"strconv"
	"strings"

	"jig.dev/jig/internal/jj"
)

// ChangeSpec is the input for building one scripted change record.
type ChangeSpec struct {
	ChangeID    string
	CommitID    string
	Author      string
	Timestamp   string
	Bookmarks   []string // comma-joined into the record
	WorkingCopy bool
	Empty       bool
	Conflict    bool
	Title       string
}

// ChangeLine renders one line in the engine's change record format.
func ChangeLine(spec ChangeSpec) string {
	commit := spec.CommitID
	if commit == "" {
		commit = "c" + spec.ChangeID
	}
	author := spec.Author
	if author == "" {
		author = "dev@example.com"
	}
	ts := spec.Timestamp
	if ts == "" {
		ts = "2026-09-01T10:00:00+0000"
	}

	fields := []string{
		spec.ChangeID,
		commit,
		author,
		ts,
		strings.Join(spec.Bookmarks, ","),
		boolField(spec.WorkingCopy),
		boolField(spec.Empty),
		boolField(spec.Conflict),
		spec.Title,
	}
	return strings.Join(fields, "\t")
}

// ChangeLines renders several records separated by newlines.
func ChangeLines(specs ...ChangeSpec) string {
	lines := make([]string, len(specs))
	for i, spec := range specs {
		lines[i] = ChangeLine(spec)
	}
	return strings.Join(lines, "\n")
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// LogArgs builds the exact argument list the engine uses to read history.
func LogArgs(revset string, reversed bool) []string {
	args := []string{"log", "-r", revset, "--no-graph"}
	if reversed {
		args = append(args, "--reversed")
	}
	return append(args, "-T", jj.ChangeTemplate)
}

// TrunkTitlesArgs builds the argument list for the trunk history title scan.
func TrunkTitlesArgs(trunkRevset string, lookback int) []string {
	return []string{
		"log", "-r", "::" + trunkRevset, "-n", strconv.Itoa(lookback),
		"--no-graph", "-T", jj.TitleTemplate,
	}
}

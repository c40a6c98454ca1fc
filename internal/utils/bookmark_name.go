package utils

import (
	"regexp"
	"strings"
)

const (
	// MaxBookmarkNameByteLength caps generated bookmark names. Git refs have
	// a 256-byte limit; leave headroom for "refs/heads/" and remote prefixes.
	MaxBookmarkNameByteLength = 200
)

var (
	// bookmarkReplaceRegex matches characters that are not valid in bookmark
	// names. Valid characters: letters, numbers, -, _, /, .
	bookmarkReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// bookmarkIgnoreRegex matches trailing slashes and dots to strip.
	bookmarkIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRegex = regexp.MustCompile(`-+`)

	conventionalPrefixRegex = regexp.MustCompile(`^(feat|fix|chore|docs|style|refactor|perf|test|build|ci)(\([^)]+\))?:\s*`)
)

// SanitizeBookmarkName turns free text into a valid bookmark name. Only the
// first line is used; conventional-commit prefixes like "feat:" are dropped.
func SanitizeBookmarkName(text string) string {
	if text == "" {
		return ""
	}

	line, _, _ := strings.Cut(text, "\n")
	name := strings.TrimSpace(line)
	name = conventionalPrefixRegex.ReplaceAllString(name, "")
	name = strings.ToLower(name)

	name = bookmarkIgnoreRegex.ReplaceAllString(name, "")
	name = bookmarkReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > MaxBookmarkNameByteLength {
		name = name[:MaxBookmarkNameByteLength]
		name = strings.TrimSuffix(name, "-")
	}
	return name
}

package forge

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ResolveOwnerRepo reads the named remote of the colocated git repository and
// extracts the owner and repository name from its URL. jig never mutates the
// repository through go-git; all mutation goes through the jj backend.
func ResolveOwnerRepo(workspaceRoot, remote string) (string, string, error) {
	repo, err := git.PlainOpenWithOptions(workspaceRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("failed to open git repository: %w", err)
	}

	rem, err := repo.Remote(remote)
	if err != nil {
		return "", "", fmt.Errorf("remote %s not configured: %w", remote, err)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("remote %s has no URL", remote)
	}

	return parseRemoteURL(urls[0])
}

// parseRemoteURL handles the two common shapes:
//
//	git@github.com:owner/repo.git
//	https://github.com/owner/repo.git
func parseRemoteURL(url string) (string, string, error) {
	path := url
	if idx := strings.Index(path, "://"); idx >= 0 {
		path = path[idx+3:]
		if slash := strings.Index(path, "/"); slash >= 0 {
			path = path[slash+1:]
		}
	} else if idx := strings.Index(path, ":"); idx >= 0 {
		path = path[idx+1:]
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot parse owner/repo from remote URL %q", url)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

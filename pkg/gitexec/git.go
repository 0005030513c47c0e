// Package gitexec wraps the git binary for the clone and update plumbing
// used when installing skills from remote repositories.
package gitexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// Clone clones a repository into target. An empty branch clones the default
// branch. Output is discarded; failures carry git's stderr.
func Clone(ctx context.Context, url, target, branch string) error {
	if parent := filepath.Dir(target); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", parent)
		}
	}

	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, target)

	return run(ctx, "", args...)
}

// Pull fast-forwards the repository at dir.
func Pull(ctx context.Context, dir string) error {
	return run(ctx, dir, "pull", "--ff-only")
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(dir string) bool {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	return cmd.Run() == nil
}

func run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(out)))
	}
	return nil
}

// RepoURL returns the https clone URL for an owner/repo pair.
func RepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}

// ParseGitHubURL parses a GitHub web URL into a skill source. Path segments
// past owner/repo become the subdirectory.
func ParseGitHubURL(raw string) (types.SkillSource, error) {
	trimmed := strings.TrimPrefix(raw, "https://github.com/")
	if trimmed == raw {
		return types.SkillSource{}, errors.Errorf("not a GitHub URL: %s", raw)
	}

	parts := strings.Split(strings.Trim(trimmed, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return types.SkillSource{}, errors.Errorf("invalid GitHub URL: %s", raw)
	}

	subdir := ""
	if len(parts) > 2 {
		subdir = strings.Join(parts[2:], "/")
	}

	return types.GitHubSource(parts[0], strings.TrimSuffix(parts[1], ".git"), subdir, ""), nil
}

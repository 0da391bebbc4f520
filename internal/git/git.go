// Package git queries the local repository for author identity, commit
// messages and branch names. All queries run git as a subprocess behind a
// mockable Runner and degrade to empty results on failure.
package git

import (
	"errors"
	"os/exec"
	"strings"
)

// Runner executes a git command and returns its output.
// This abstraction allows mocking in tests.
type Runner func(workDir string, args ...string) (string, error)

// Client runs git queries in a working directory.
type Client struct {
	WorkDir string
	Runner  Runner // if nil, uses the real git subprocess
}

// defaultRunner runs git as a real subprocess.
func defaultRunner(workDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir
	out, err := cmd.Output()
	return string(out), err
}

func (c *Client) run(args ...string) (string, error) {
	runner := c.Runner
	if runner == nil {
		runner = defaultRunner
	}
	return runner(c.WorkDir, args...)
}

// AuthorName returns the configured git user name, or "" if unavailable.
func (c *Client) AuthorName() (string, error) {
	out, err := c.run("config", "user.name")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitMessage returns the full message of the given commit.
func (c *Client) CommitMessage(hash string) (string, error) {
	out, err := c.run("log", "--format=%B", "-n", "1", hash)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the checked-out branch name.
// Returns "" without error when the directory is not a git repository.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		if isExitCode128(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepository reports whether the working directory is inside a git repo.
func (c *Client) IsRepository() bool {
	_, err := c.run("rev-parse", "--git-dir")
	return err == nil
}

// isExitCode128 reports whether err is an *exec.ExitError with exit code 128,
// git's "not a repository" signal.
func isExitCode128(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == 128
	}
	return false
}

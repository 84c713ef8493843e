package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// HasMarkerToken implements the GitClient interface. The grep's exit status
// is the boolean outcome: zero means the token was found, any other exit
// status means it was not. Only a failure to execute git at all surfaces
// as an error.
func (c *LocalGitClient) HasMarkerToken(_ context.Context, repoPath, token string) (bool, error) {
	cmd := exec.Command("git", "-C", repoPath, "grep", "--quiet", "--cached", "--fixed-strings", token)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("git grep failed to execute: %w. Ensure Git is installed and available on your PATH", err)
}

// BotCommitLog implements the GitClient interface. Each --author pattern is
// matched as a fixed string against the author email; the output is one
// "<date> <author_email>" line per commit in the repository's default log
// order.
func (c *LocalGitClient) BotCommitLog(ctx context.Context, repoPath string, authors []string) ([]byte, error) {
	args := []string{
		"log",
		"--fixed-strings",
		"--date=short",
		"--pretty=format:%ad %ae",
	}
	for _, author := range authors {
		args = append(args, "--author="+author)
	}
	return c.Run(ctx, repoPath, args...)
}

// Package testutil holds helpers shared by tests that drive a real git
// binary.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test if git is not installed.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// InitGitRepo initializes a git repository in dir with one commit on main.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()
	RequireGit(t)

	RunGitCommand(t, dir, "init", "-q")
	RunGitCommand(t, dir, "config", "user.name", "Test User")
	RunGitCommand(t, dir, "config", "user.email", "test@example.com")
	RunGitCommand(t, dir, "config", "commit.gpgsign", "false")
	CreateCommit(t, dir, "README.md", "# Test Project\n")

	// Older git defaults to master.
	cmd := exec.Command("git", "branch", "-m", "main")
	cmd.Dir = dir
	_ = cmd.Run()
}

// RunGitCommand runs git in dir and fails the test on error.
func RunGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// StageFile writes and stages a file without committing it.
func StageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	WriteFile(t, dir, name, content)
	RunGitCommand(t, dir, "add", name)
}

// CreateCommit writes, stages and commits a file.
func CreateCommit(t *testing.T, dir, name, content string) {
	t.Helper()
	StageFile(t, dir, name, content)
	RunGitCommand(t, dir, "commit", "-q", "-m", "Add "+name)
}

// HooksRepo creates a git repository publishing a hook manifest and returns
// its path and the commit hash of HEAD.
func HooksRepo(t *testing.T, manifest string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	InitGitRepo(t, dir)
	CreateCommit(t, dir, ".pre-commit-hooks.yaml", manifest)
	RunGitCommand(t, dir, "tag", "v1.0.0")
	rev := RunGitCommand(t, dir, "rev-parse", "HEAD")
	return dir, strings.TrimSpace(rev)
}

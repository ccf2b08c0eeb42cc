// Package git wraps the git CLI for the operations hook configuration
// needs: locating the work tree, listing candidate files, fetching pinned
// hook repositories, and installing hook scripts.
package git

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/grovetools/hookcfg/command"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/pkg/profiling"
)

var cmdBuilder = command.NewSafeBuilder()

// SetBuilder replaces the builder git commands are created with. It
// returns a function restoring the previous builder.
func SetBuilder(b *command.SafeBuilder) func() {
	prev := cmdBuilder
	cmdBuilder = b
	return func() { cmdBuilder = prev }
}

// run executes git with args in dir and returns stdout. Failures carry the
// command line and git's stderr.
func run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd, err := cmdBuilder.Build(ctx, "git", args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build git command")
	}
	logging.NewLogger("git").WithField("cmd", cmd.String()).WithField("dir", dir).Debug("Running git")

	if len(args) > 0 {
		defer profiling.Start("git " + args[0]).Stop()
	}

	var stderr bytes.Buffer
	execCmd := cmd.Exec()
	defer cmd.Close()
	execCmd.Dir = dir
	execCmd.Stderr = &stderr
	out, err := execCmd.Output()
	if err != nil {
		if goerrors.Is(err, exec.ErrNotFound) {
			return nil, errors.New(errors.ErrCodeGitNotInstalled, "git executable not found in PATH")
		}
		e := errors.CommandFailed(cmd.String(), err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			e = e.WithDetail("stderr", msg)
		}
		return nil, e
	}
	return out, nil
}

func runString(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// IsGitRepo checks if the given directory is inside a git work tree.
func IsGitRepo(ctx context.Context, dir string) bool {
	out, err := runString(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// GetGitRoot returns the top-level directory of the work tree.
func GetGitRoot(ctx context.Context, dir string) (string, error) {
	root, err := runString(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if errors.GetCode(err) == errors.ErrCodeCommandFailed {
			return "", errors.NotARepository(dir)
		}
		return "", err
	}
	return root, nil
}

// GitDir returns the path of the repository's git directory, resolving
// worktrees and GIT_DIR overrides.
func GitDir(ctx context.Context, dir string) (string, error) {
	return runString(ctx, dir, "rev-parse", "--path-format=absolute", "--git-common-dir")
}

// HooksDir returns where git looks for hook scripts, honoring core.hooksPath.
func HooksDir(ctx context.Context, dir string) (string, error) {
	return runString(ctx, dir, "rev-parse", "--path-format=absolute", "--git-path", "hooks")
}

// ResolveRef resolves a ref (branch, tag or commit) to its full commit hash.
func ResolveRef(ctx context.Context, dir, ref string) (string, error) {
	if err := cmdBuilder.Validate("gitRef", ref); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid ref %q", ref))
	}
	return runString(ctx, dir, "rev-parse", "--verify", "--end-of-options", ref+"^{commit}")
}

// GetHeadCommit returns the HEAD commit hash.
func GetHeadCommit(ctx context.Context, dir string) (string, error) {
	return ResolveRef(ctx, dir, "HEAD")
}

// Version returns the installed git version string.
func Version(ctx context.Context) (string, error) {
	out, err := runString(ctx, "", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "git version "), nil
}

// extractRepoName returns the last path element of a repository location
// without a .git suffix.
func extractRepoName(url string) string {
	url = strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	if url == "" {
		return "unknown"
	}
	return url
}

// RepoName is the short display name for a hook repository location.
func RepoName(url string) string {
	return extractRepoName(url)
}

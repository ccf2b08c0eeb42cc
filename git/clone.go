package git

import (
	"context"
	"fmt"
	"os"

	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/logging"
)

// Clone fetches a single revision of url into dest. dest must not exist.
// The revision may be a tag, a branch or a full commit hash.
func Clone(ctx context.Context, url, rev, dest string) error {
	if err := cmdBuilder.Validate("repoURL", url); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid repository %q", url))
	}
	if err := cmdBuilder.Validate("gitRef", rev); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid rev %q", rev))
	}

	logger := logging.NewLogger("git")
	logger.WithField("repo", url).WithField("rev", rev).Info("Fetching hook repository")

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeGitCloneFailed, "failed to create clone directory").
			WithDetail("path", dest)
	}

	fail := func(step string, err error) error {
		_ = os.RemoveAll(dest)
		return errors.Wrap(err, errors.ErrCodeGitCloneFailed, fmt.Sprintf("failed to %s %s@%s", step, url, rev)).
			WithDetail("repo", url).
			WithDetail("rev", rev)
	}

	if _, err := run(ctx, dest, "init", "-q"); err != nil {
		return fail("initialize clone of", err)
	}
	if _, err := run(ctx, dest, "remote", "add", "origin", url); err != nil {
		return fail("add remote for", err)
	}
	if _, err := run(ctx, dest, "fetch", "-q", "--depth", "1", "origin", rev); err != nil {
		// Servers may refuse shallow fetches of arbitrary commits.
		logger.WithError(err).Debug("Shallow fetch failed, fetching full history")
		if _, err := run(ctx, dest, "fetch", "-q", "origin", "--tags"); err != nil {
			return fail("fetch", err)
		}
		if _, err := run(ctx, dest, "-c", "advice.detachedHead=false", "checkout", "-q", rev); err != nil {
			return fail("check out", err)
		}
		return nil
	}
	if _, err := run(ctx, dest, "-c", "advice.detachedHead=false", "checkout", "-q", "FETCH_HEAD"); err != nil {
		return fail("check out", err)
	}
	return nil
}

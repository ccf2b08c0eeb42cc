package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/hookcfg/errors"
)

// StagedFiles lists files added, copied, modified or renamed in the index,
// relative to the work tree root.
func StagedFiles(ctx context.Context, root string) ([]string, error) {
	out, err := run(ctx, root, "diff", "--cached", "--name-only", "--no-ext-diff", "-z", "--diff-filter=ACMR")
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

// AllFiles lists every tracked file.
func AllFiles(ctx context.Context, root string) ([]string, error) {
	out, err := run(ctx, root, "ls-files", "-z")
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

// ChangedFiles lists files changed between two refs, as used by pre-push
// style checks.
func ChangedFiles(ctx context.Context, root, from, to string) ([]string, error) {
	for _, ref := range []string{from, to} {
		if err := cmdBuilder.Validate("gitRef", ref); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid ref %q", ref))
		}
	}
	out, err := run(ctx, root, "diff", "--name-only", "--no-ext-diff", "-z", "--diff-filter=ACMRT", from+"..."+to)
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

func splitNUL(out []byte) []string {
	var files []string
	for _, f := range strings.Split(string(out), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

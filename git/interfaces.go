package git

import "context"

// HookProvider defines git hook script management
type HookProvider interface {
	InstallHooks(ctx context.Context, repoPath string, hookTypes []string) ([]string, error)
	UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) ([]string, error)
}

// RepositoryProvider defines the repository queries used to pick candidate
// files for hooks.
type RepositoryProvider interface {
	IsGitRepo(ctx context.Context, dir string) bool
	GetGitRoot(ctx context.Context, dir string) (string, error)
	StagedFiles(ctx context.Context, root string) ([]string, error)
	AllFiles(ctx context.Context, root string) ([]string, error)
	ChangedFiles(ctx context.Context, root, from, to string) ([]string, error)
}

// Cloner fetches a pinned revision of a repository.
type Cloner interface {
	Clone(ctx context.Context, url, rev, dest string) error
}

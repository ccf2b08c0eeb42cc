package git

import "context"

// CLIRepository implements RepositoryProvider and Cloner using the git CLI
type CLIRepository struct{}

// Ensure it implements the interfaces
var (
	_ RepositoryProvider = (*CLIRepository)(nil)
	_ Cloner             = (*CLIRepository)(nil)
)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

func (r *CLIRepository) IsGitRepo(ctx context.Context, dir string) bool {
	return IsGitRepo(ctx, dir)
}

func (r *CLIRepository) GetGitRoot(ctx context.Context, dir string) (string, error) {
	return GetGitRoot(ctx, dir)
}

func (r *CLIRepository) StagedFiles(ctx context.Context, root string) ([]string, error) {
	return StagedFiles(ctx, root)
}

func (r *CLIRepository) AllFiles(ctx context.Context, root string) ([]string, error) {
	return AllFiles(ctx, root)
}

func (r *CLIRepository) ChangedFiles(ctx context.Context, root, from, to string) ([]string, error) {
	return ChangedFiles(ctx, root, from, to)
}

func (r *CLIRepository) Clone(ctx context.Context, url, rev, dest string) error {
	return Clone(ctx, url, rev, dest)
}

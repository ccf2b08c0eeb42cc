package cmd

import (
	"fmt"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/repo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func NewFetchCmd() *cobra.Command {
	var (
		jobs  int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch external hook repositories at their pinned revs",
		Long: `Fetch every external hook repository at its pinned rev into the local
cache and check that each referenced hook id is published there.

Examples:
  hookcfg fetch
  hookcfg fetch --jobs 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				jobs = 1
			}
			ctx := cli.Context(cmd)
			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			store := repo.NewStore("", nil)
			progress := cli.NewProgressReporter(cmd.OutOrStdout(), quiet || cli.GetOptions(cmd).JSONOutput)

			// Every repository is attempted so that all failures are reported.
			var g errgroup.Group
			g.SetLimit(jobs)
			for _, src := range cfg.ExternalRepos() {
				label := src.Repo + "@" + src.Rev
				g.Go(func() error {
					progress.Update(label, cli.StatusStarted)
					if _, err := store.Manifest(ctx, src.Repo, src.Rev); err != nil {
						progress.Update(label, cli.StatusFailed)
						return err
					}
					progress.Update(label, cli.StatusCompleted)
					return nil
				})
			}
			fetchErr := g.Wait()
			progress.Done()

			if failed := progress.Failed(); len(failed) > 0 {
				return errors.Wrap(fetchErr, errors.ErrCodeGitCloneFailed,
					fmt.Sprintf("failed to fetch %d repository(ies)", len(failed))).
					WithDetail("failed", failed)
			}

			resolver := repo.NewResolver(store)
			resolver.Concurrency = jobs
			resolved, err := resolver.Resolve(ctx, cfg)
			if err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				entries, err := store.List()
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"hooks": len(resolved.AllHooks()),
					"repos": entries,
				})
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", repo.DefaultConcurrency, "Repositories to fetch in parallel")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing on success")
	return cmd
}

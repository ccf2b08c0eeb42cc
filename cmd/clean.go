package cmd

import (
	"fmt"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/repo"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached hook repositories",
		Long: `Remove every cached hook repository. With --list, show the cache
contents instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.Context(cmd)
			store := repo.NewStore("", nil)
			entries, err := store.List()
			if err != nil {
				return err
			}

			if list {
				if cli.GetOptions(cmd).JSONOutput {
					if entries == nil {
						entries = []repo.Entry{}
					}
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				table := theme.NewTable("SOURCE", "PATH")
				for _, e := range entries {
					table.Row(e.Source, e.Path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), table.String())
				return nil
			}

			if err := store.Clean(); err != nil {
				return err
			}
			logging.NewUnifiedLogger("clean").
				Success(fmt.Sprintf("removed %d cached repository(ies)", len(entries))).
				Field("path", store.Root()).
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List cached repositories instead of removing them")
	return cmd
}

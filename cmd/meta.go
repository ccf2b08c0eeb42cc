package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/filter"
	"github.com/grovetools/hookcfg/git"
	"github.com/spf13/cobra"
)

// NewMetaCmd groups the implementations of the built-in meta hooks.
func NewMetaCmd() *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:    "meta",
		Short:  "Built-in meta hooks",
		Hidden: true,
	}
	cmd.PersistentFlags().BoolVar(&resolve, "resolve", true, "Merge external hooks with their published definitions")

	metaCheck := func(use, short, problem string, check func(cmd *cobra.Command, root string, files []string) ([]string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cli.Context(cmd)
				_, path, err := cli.LoadConfig(cmd)
				if err != nil {
					return err
				}
				root, err := git.GetGitRoot(ctx, filepath.Dir(path))
				if err != nil {
					return err
				}
				files, err := git.AllFiles(ctx, root)
				if err != nil {
					return err
				}
				problems, err := check(cmd, root, files)
				if err != nil {
					return err
				}
				for _, p := range problems {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				if len(problems) > 0 {
					return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("%d %s", len(problems), problem)).
						WithDetail("problems", problems)
				}
				return nil
			},
		}
	}

	cmd.AddCommand(
		metaCheck("check-hooks-apply", "Report hooks that match no tracked file", "hook(s) do not apply to this repository",
			func(cmd *cobra.Command, root string, files []string) ([]string, error) {
				cfg, _, err := loadConfig(cli.Context(cmd), cmd, resolve)
				if err != nil {
					return nil, err
				}
				ids, err := filter.HooksThatNeverApply(cfg, files, filter.Options{Root: root})
				if err != nil {
					return nil, err
				}
				var out []string
				for _, id := range ids {
					out = append(out, id+" does not apply to this repository")
				}
				return out, nil
			}),
		metaCheck("check-useless-excludes", "Report exclude patterns that match no tracked file", "useless exclude(s)",
			func(cmd *cobra.Command, root string, files []string) ([]string, error) {
				cfg, _, err := loadConfig(cli.Context(cmd), cmd, resolve)
				if err != nil {
					return nil, err
				}
				return filter.UselessExcludes(cfg, files)
			}),
		&cobra.Command{
			Use:   "identity [files...]",
			Short: "Print the arguments it receives",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, "\n"))
				}
				return nil
			},
		},
	)
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	var (
		format  string
		resolve bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the normalized configuration",
		Long: `Print the configuration after validation and defaulting, in YAML, TOML
or JSON. The output is itself a valid configuration document.

Examples:
  hookcfg show
  hookcfg show --format toml > .pre-commit-config.toml
  hookcfg show --resolve --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cli.Context(cmd), cmd, resolve)
			if err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				format = string(config.FormatJSON)
			}
			data, err := config.Marshal(cfg, config.Format(format))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			if len(data) > 0 && data[len(data)-1] != '\n' {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "Output format: yaml, toml or json")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Merge external hooks with their published definitions")
	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

type listedHook struct {
	Repo     string   `json:"repo"`
	Rev      string   `json:"rev,omitempty"`
	Kind     string   `json:"kind"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Language string   `json:"language,omitempty"`
	Entry    string   `json:"entry,omitempty"`
	Types    []string `json:"types,omitempty"`
	Stages   []string `json:"stages,omitempty"`
}

func NewListCmd() *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured hooks",
		Long: `List every configured hook in document order.

With --resolve, external hooks are merged with the definitions their
repository publishes at the pinned rev, fetching it if needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.Context(cmd)
			cfg, _, err := loadConfig(ctx, cmd, resolve)
			if err != nil {
				return err
			}

			var hooks []listedHook
			for _, ref := range cfg.AllHooks() {
				hooks = append(hooks, listedHook{
					Repo:     ref.Source.Repo,
					Rev:      ref.Source.Rev,
					Kind:     ref.Source.Kind(),
					ID:       ref.Hook.ID,
					Name:     ref.Hook.DisplayName(),
					Language: ref.Hook.Language,
					Entry:    ref.Hook.Entry,
					Types:    ref.Hook.Types,
					Stages:   ref.Hook.Stages,
				})
			}

			if cli.GetOptions(cmd).JSONOutput {
				if hooks == nil {
					hooks = []listedHook{}
				}
				return writeJSON(cmd.OutOrStdout(), hooks)
			}

			table := theme.NewTable("ID", "SOURCE", "LANGUAGE", "ENTRY")
			for _, h := range hooks {
				source := h.Kind
				if h.Kind == "external" {
					source = h.Repo + "@" + h.Rev
				}
				table.Row(h.ID, source, dash(h.Language), dash(h.Entry))
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Merge external hooks with their published definitions")
	return cmd
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Package cmd implements the hookcfg subcommands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the hookcfg command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("hookcfg", "Validate and inspect pre-commit hook configuration")
	root.Long = `Validate and inspect pre-commit hook configuration.

hookcfg reads .pre-commit-config.yaml (or .yml/.toml), checks it against
the configuration schema and its semantic rules, and shows which hooks
apply to which files. It does not execute hooks.`
	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(
		NewValidateCmd(),
		NewListCmd(),
		NewPlanCmd(),
		NewShowCmd(),
		NewSchemaCmd(),
		NewInstallCmd(),
		NewUninstallCmd(),
		NewFetchCmd(),
		NewCleanCmd(),
		NewMetaCmd(),
		cli.NewVersionCommand("hookcfg"),
	)
	return root
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

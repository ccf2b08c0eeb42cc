package profiling

import (
	"github.com/spf13/cobra"
)

// AddFlags registers --timing on cmd.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("timing", false, "Print a per-stage timing summary on exit")
}

// PreRun enables recording when --timing is set.
func PreRun(cmd *cobra.Command) {
	if timing, _ := cmd.Flags().GetBool("timing"); timing {
		Enable()
	}
}

package rebootme

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X github.com/disneysandhya1/RebootMe-Backend/cmd/rebootme.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "rebootme %s (commit %s, built %s, %s)\n", version, commit, date, runtime.Version())
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

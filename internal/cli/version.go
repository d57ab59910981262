package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X github.com/mgpai22/subcue/internal/cli.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the subcue version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "subcue", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

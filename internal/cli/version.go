package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydehq/ryu"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ryu %s\n", ryu.Version())
		logger.Debug("Build", "info", ryu.BuildInfo())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

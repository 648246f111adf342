package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydehq/ryu/internal/api"
	"github.com/mydehq/ryu/internal/ui"
)

var flagYes bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change local preferences",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with its current value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		states, err := api.ListSettings(apiOptions()...)
		if err != nil {
			fail("Failed to read settings", err)
		}

		width := 0
		for _, s := range states {
			width = max(width, len(s.Setting.Key))
		}
		for _, s := range states {
			origin := ""
			if !s.IsSet {
				origin = ui.StyleDim.Render(" (default)")
			}
			fmt.Printf("%s  %s%s\n",
				ui.StyleCommand.Render(fmt.Sprintf("%-*s", width, s.Setting.Key)),
				s.Label,
				origin,
			)
		}
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := api.GetSetting(args[0], apiOptions()...)
		if err != nil {
			fail("Failed to read setting", err)
		}
		fmt.Println(s.Value.String())
		logger.Debug("Setting", "key", s.Setting.Key, "kind", s.Setting.Kind, "set", s.IsSet)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := api.SetSetting(args[0], args[1], apiOptions()...)
		if err != nil {
			fail("Failed to update setting", err)
		}
		logger.Success(s.Label)
	},
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Restore one setting to its default",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.UnsetSetting(args[0], apiOptions()...); err != nil {
			fail("Failed to reset setting", err)
		}
		logger.Success("Setting restored to default", "key", args[0])
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase every stored setting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := confirm(flagYes, "Reset App Data", "All settings and search history will be erased.")
		if err != nil {
			fail("Reset aborted", err)
		}
		if !ok {
			logger.Info("Reset cancelled")
			return
		}
		if err := api.ResetSettings(apiOptions()...); err != nil {
			fail("Failed to reset app data", err)
		}
	},
}

func init() {
	settingsResetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation")

	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsSetCmd, settingsUnsetCmd, settingsResetCmd)
	RootCmd.AddCommand(settingsCmd)
}

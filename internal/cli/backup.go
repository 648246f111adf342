package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mydehq/ryu/internal/api"
	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/ui"
)

var (
	flagMode     string
	flagCleanAll bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import preferences",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all preferences to a backup file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := api.ExportBackup(cmd.Context(), apiOptions()...)
		if err != nil {
			fail("Failed to create backup", err)
		}
		fmt.Println(rec.Path)
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Apply a backup file to the current preferences",
	Long: `Apply a backup file to the current preferences.

--mode replace erases current data first; --mode merge keeps current keys the
backup does not mention. Without --mode the mode is asked for on a terminal
and defaults to replace otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode, err := importMode()
		if err != nil {
			if errors.Is(err, ui.ErrUserBack) {
				logger.Info("Import cancelled")
				return
			}
			fail("Failed to import backup", err)
		}

		if err := api.ImportBackup(cmd.Context(), args[0], mode, apiOptions()...); err != nil {
			fail("Failed to import backup", err)
		}
	},
}

func importMode() (types.ImportMode, error) {
	switch types.ImportMode(flagMode) {
	case types.ImportReplace, types.ImportMerge:
		return types.ImportMode(flagMode), nil
	case "":
		if interactive() {
			return ui.SelectImportMode()
		}
		return types.ImportReplace, nil
	}
	return "", fmt.Errorf("unknown import mode %q (use replace or merge)", flagMode)
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exported backups",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := api.ListBackups(cmd.Context(), apiOptions()...)
		if err != nil {
			fail("Failed to list backups", err)
		}
		if len(records) == 0 {
			logger.Info("No backups found")
			return
		}

		for _, r := range records {
			fmt.Printf("%s  %s  %s\n",
				ui.StyleDim.Render(r.Timestamp.Format("2006-01-02 15:04")),
				ui.StylePath.Render(filepath.Base(r.Path)),
				ui.StyleDim.Render(fmt.Sprintf("(%d keys, %s)", r.Keys, r.ID)),
			)
		}
	},
}

var backupCleanCmd = &cobra.Command{
	Use:   "clean [id]",
	Short: "Delete an exported backup",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if flagCleanAll {
			if err := api.CleanAllBackups(ctx, apiOptions()...); err != nil {
				fail("Failed to clean backups", err)
			}
			return
		}

		if len(args) == 0 {
			fail("Nothing to clean", errors.New("give a backup id or --all"))
		}
		if err := api.CleanBackup(ctx, args[0], apiOptions()...); err != nil {
			fail("Failed to clean backup", err)
		}
	},
}

func init() {
	backupImportCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "Import mode: replace or merge")
	backupCleanCmd.Flags().BoolVarP(&flagCleanAll, "all", "a", false, "Delete every exported backup")

	backupCmd.AddCommand(backupExportCmd, backupImportCmd, backupListCmd, backupCleanCmd)
	RootCmd.AddCommand(backupCmd)
}

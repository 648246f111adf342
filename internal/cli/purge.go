package cli

import (
	"github.com/spf13/cobra"

	"github.com/mydehq/ryu/internal/api"
)

var flagPurgeYes bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the cache directory",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove everything in the cache directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		res, err := api.ClearCache(cmd.Context(), apiOptions()...)
		if err != nil {
			fail(api.MsgCacheFailed, err)
		}
		logger.Debug("Cache cleared", "dir", res.Dir, "removed", len(res.Removed))
	},
}

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Manage downloaded files",
}

var downloadsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all downloaded files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := confirm(flagPurgeYes, "Delete all downloads", "Every downloaded file will be removed. This cannot be undone.")
		if err != nil {
			fail("Purge aborted", err)
		}
		if !ok {
			logger.Info("Purge cancelled")
			return
		}

		res, err := api.PurgeDownloads(cmd.Context(), apiOptions()...)
		if err != nil {
			fail(api.MsgDownloadsFailed, err)
		}
		logger.Debug("Downloads purged", "dir", res.Dir, "removed", len(res.Removed))
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage search history",
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored search history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := api.ClearSearchHistory(apiOptions()...); err != nil {
			fail("Failed to clear search history", err)
		}
	},
}

func init() {
	downloadsPurgeCmd.Flags().BoolVarP(&flagPurgeYes, "yes", "y", false, "Skip confirmation")

	cacheCmd.AddCommand(cacheClearCmd)
	downloadsCmd.AddCommand(downloadsPurgeCmd)
	historyCmd.AddCommand(historyClearCmd)
	RootCmd.AddCommand(cacheCmd, downloadsCmd, historyCmd)
}

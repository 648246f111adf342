package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mydehq/ryu/internal/api"
	"github.com/mydehq/ryu/internal/catalog"
	"github.com/mydehq/ryu/internal/ui"
)

var (
	flagPlain bool
	flagWidth int
)

var infoCmd = &cobra.Command{
	Use:   "info <id|url>",
	Short: "Show anime details from AniList",
	Long: `Fetch one anime from AniList and show its details.

Accepts a numeric AniList ID or an anilist.co/anime URL. On a terminal the
details open in an interactive screen (r to reload, q to quit); use --plain
to print them instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if flagPlain || !interactive() {
			d, err := api.FetchDetail(ctx, args[0], apiOptions()...)
			if err != nil {
				fail("Failed to fetch details", err)
			}
			fmt.Println(ui.RenderDetail(d, flagWidth))
			return
		}

		id, err := catalog.ExtractID(args[0])
		if err != nil {
			fail("Invalid media reference", err)
		}
		if theme, err := api.CurrentTheme(apiOptions()...); err == nil {
			ui.ApplyTheme(theme)
		} else {
			logger.Debug("Using default theme", "error", err)
		}

		client, err := api.NewCatalogClient(apiOptions()...)
		if err != nil {
			fail("Failed to create catalog client", err)
		}

		screen, err := ui.RunDetail(ctx, id, client.Fetch)
		if err != nil {
			fail("Failed to show details", err)
		}
		if err := screen.Err(); err != nil {
			fail("Failed to fetch details", err)
		}
	},
}

func init() {
	infoCmd.Flags().BoolVarP(&flagPlain, "plain", "p", false, "Print details instead of opening the interactive screen")
	infoCmd.Flags().IntVarP(&flagWidth, "width", "w", 80, "Wrap width for printed details")
	RootCmd.AddCommand(infoCmd)
}

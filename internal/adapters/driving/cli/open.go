package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui"
)

var openCmd = &cobra.Command{
	Use:   "open [page-id or url]",
	Short: "Open a page in the reader",
	Long: `Open a single page in the interactive reader.

The argument is either a numeric page identifier or a full page URL as
copied from a browser address bar. URLs are expected in the standard
https://<host>/wiki/spaces/<space>/pages/<id>/<title> shape.

Examples:
  confluence-reader open 123456
  confluence-reader open "https://example.atlassian.net/wiki/spaces/ENG/pages/123456/Runbook"`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	target := args[0]

	if services == nil {
		return ErrNoServices
	}

	return launchTUI(cmd, func(app *tui.App) {
		if strings.Contains(target, "/") {
			app.WithInitialURL(target)
			return
		}
		app.WithInitialPage(target)
	})
}

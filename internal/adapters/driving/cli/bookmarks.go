package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/messages"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Browse saved bookmarks",
	Long: `Browse, open, and delete saved bookmarks.

Run without a subcommand to open the interactive bookmark browser.`,
	RunE: runBookmarks,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved bookmarks",
	RunE:  runBookmarksList,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove [bookmark-id]",
	Short: "Remove a saved bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksRemove,
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarks(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return ErrNoServices
	}
	return launchTUI(cmd, func(app *tui.App) {
		app.WithInitialView(messages.ViewBookmarks)
	})
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return ErrNoServices
	}

	bookmarks, err := services.Bookmark.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list bookmarks: %w", err)
	}

	if len(bookmarks) == 0 {
		cmd.Println("No bookmarks.")
		return nil
	}

	for _, b := range bookmarks {
		cmd.Printf("%s  %s  (page %s, saved %s)\n",
			b.ID, b.Title, b.PageID, b.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runBookmarksRemove(cmd *cobra.Command, args []string) error {
	if services == nil {
		return ErrNoServices
	}

	if err := services.Bookmark.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

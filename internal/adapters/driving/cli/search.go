package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui"
	"github.com/Whil-/confluence-reader/internal/core/domain"
	coreservices "github.com/Whil-/confluence-reader/internal/core/services"
)

var (
	searchRaw   bool
	searchLimit int
	searchJSON  bool
	searchPlain bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Confluence pages",
	Long: `Search pages on the configured Confluence host.

By default the query is treated as free text and wrapped in a CQL text
search. With --raw the query is passed through as CQL verbatim.

Opens the interactive reader on the results. Use --plain or --json to
print the results and exit instead.

Examples:
  confluence-reader search "deploy runbook"
  confluence-reader search --raw 'space = ENG and type = page'
  confluence-reader search --plain --limit 20 "oncall"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchRaw, "raw", false, "treat the query as raw CQL")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", coreservices.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON and exit")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "print results as text and exit")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if services == nil {
		return ErrNoServices
	}

	if searchJSON || searchPlain {
		results, err := services.Search.Search(cmd.Context(), query, searchRaw, searchLimit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if searchJSON {
			return outputSearchJSON(cmd, results)
		}
		return outputSearchPlain(cmd, results)
	}

	return launchTUI(cmd, func(app *tui.App) {
		app.WithSearchOptions(searchRaw, searchLimit)
		app.WithInitialQuery(query)
	})
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchPlain(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%s)\n", i+1, results[i].Title, results[i].PageID)
		if results[i].SpaceTitle != "" {
			cmd.Printf("      Space: %s\n", results[i].SpaceTitle)
		}
		if results[i].LastModified != "" {
			cmd.Printf("      Modified: %s\n", results[i].LastModified)
		}
		cmd.Println()
	}
	return nil
}

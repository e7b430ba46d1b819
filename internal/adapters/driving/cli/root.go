// Package cli provides the command-line interface for the Confluence
// reader. Each command lives in its own file and registers itself on
// the root command.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// version is the application version, overridable at build time.
var version = "0.1.0"

// Services aggregates everything the CLI commands need from the core.
type Services struct {
	Search      driving.SearchService
	Page        driving.PageService
	Bookmark    driving.BookmarkService
	Renderer    tui.PageRenderer
	Credentials driven.CredentialStore
	Config      driven.ConfigStore

	// Host is the configured Confluence host.
	Host string
}

// services holds the injected core services.
var services *Services

// SetServices injects the core services used by the commands.
func SetServices(s *Services) {
	services = s
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "confluence-reader",
	Short: "Read Confluence wikis from the terminal",
	Long: `A terminal reader for Confluence wikis.

Search pages with CQL, read them as rendered text with followable
links, and keep bookmarks. Run without arguments to start the
interactive reader.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return launchTUI(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// launchTUI builds the interactive reader and runs it. configure may
// adjust the app before it starts (initial query, page, or view).
func launchTUI(cmd *cobra.Command, configure func(*tui.App)) error {
	// Panic recovery so a TUI crash leaves a stack trace behind
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if services == nil {
		return ErrNoServices
	}
	if services.Search == nil {
		return ErrNoHostConfigured
	}

	ports := tui.NewPorts(services.Search, services.Page, services.Bookmark, services.Renderer)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if configure != nil {
		configure(app)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Command confluence-reader is a terminal reader for Confluence wikis.
package main

import (
	"fmt"
	"os"

	"github.com/Whil-/confluence-reader/internal/adapters/driven/auth"
	"github.com/Whil-/confluence-reader/internal/adapters/driven/bookmarks/sqlite"
	"github.com/Whil-/confluence-reader/internal/adapters/driven/browser"
	configfile "github.com/Whil-/confluence-reader/internal/adapters/driven/config/file"
	"github.com/Whil-/confluence-reader/internal/adapters/driven/confluence"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/cli"
	"github.com/Whil-/confluence-reader/internal/core/services"
	"github.com/Whil-/confluence-reader/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	credentialStore, err := auth.NewNetrcStore(configStore.GetString(configfile.KeyNetrc))
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}

	bookmarkStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("bookmark store: %w", err)
	}
	defer bookmarkStore.Close()

	host := configStore.GetString(configfile.KeyHost)

	svc := &cli.Services{
		Credentials: credentialStore,
		Config:      configStore,
		Host:        host,
	}

	// Without a host only auth and config management work; the reader
	// itself needs a configured host.
	if host != "" {
		client, err := confluence.NewClient(host, credentialStore, nil)
		if err != nil {
			return fmt.Errorf("confluence client: %w", err)
		}

		svc.Search = services.NewSearchService(client)
		svc.Page = services.NewPageService(
			client,
			bookmarkStore,
			browser.New(),
			configStore.GetString(configfile.KeyBrowserURLTemplate),
		)
		svc.Bookmark = services.NewBookmarkService(bookmarkStore)
		svc.Renderer = render.NewRenderer(nil, client)
	}

	cli.SetServices(svc)
	return cli.Execute()
}

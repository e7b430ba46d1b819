// Package domain defines the core entities of the Confluence reader.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: A fetched page in its export (HTML) view
//   - SearchResult: A single hit from the search endpoint
//   - LinkClassification: The internal/external/anchor decision per link
//   - Bookmark: A record handed to the bookmark store
//   - Credential: Username + API token for a host
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain

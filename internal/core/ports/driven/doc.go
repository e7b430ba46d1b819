// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them. They model the host facilities the reader delegates to:
//
//   - ConfluenceAPI: Authenticated access to the two REST endpoints
//   - CredentialStore: Credential lookup per host
//   - BookmarkStore: The external bookmark record store
//   - URLOpener: The generic "open in browser" facility
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

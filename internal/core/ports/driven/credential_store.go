package driven

import (
	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// CredentialStore looks up stored credentials by host.
// Implementations handle persistence; the core never sees where
// credentials live.
type CredentialStore interface {
	// Lookup returns the credential for the given host.
	// Returns domain.ErrNoCredentials if none is stored.
	Lookup(host string) (domain.Credential, error)

	// Store saves or replaces the credential for the given host.
	Store(host string, cred domain.Credential) error
}

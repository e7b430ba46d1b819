// Package auth provides a netrc-style file credential store.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
)

// Ensure NetrcStore implements the interface.
var _ driven.CredentialStore = (*NetrcStore)(nil)

// NetrcStore reads and writes credentials in netrc format:
//
//	machine example.atlassian.net login user@example.com password <token>
//
// The file is re-read on every lookup, so edits made outside the
// application are picked up without a restart.
type NetrcStore struct {
	mu   sync.Mutex
	path string
}

// NewNetrcStore creates a store backed by the given file. If path is
// empty, defaults to ~/.confluence-reader/netrc.
func NewNetrcStore(path string) (*NetrcStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, ".confluence-reader")
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "netrc")
	}
	return &NetrcStore{path: path}, nil
}

// Path returns the credential file path.
func (s *NetrcStore) Path() string {
	return s.path
}

// Lookup implements driven.CredentialStore.
func (s *NetrcStore) Lookup(host string) (domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return domain.Credential{}, err
	}

	cred, ok := entries[host]
	if !ok || !cred.IsValid() {
		return domain.Credential{}, fmt.Errorf("host %q: %w", host, domain.ErrNoCredentials)
	}
	return cred, nil
}

// Store implements driven.CredentialStore.
func (s *NetrcStore) Store(host string, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[host] = cred

	var b strings.Builder
	for machine, c := range entries {
		fmt.Fprintf(&b, "machine %s login %s password %s\n", machine, c.Username, c.Secret)
	}

	// Credentials file; owner-only permissions
	return os.WriteFile(s.path, []byte(b.String()), 0600)
}

// read parses the netrc file into a host -> credential map. A missing
// file is an empty store.
func (s *NetrcStore) read() (map[string]domain.Credential, error) {
	entries := make(map[string]domain.Credential)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, err
	}

	// netrc is whitespace-separated tokens; newlines carry no meaning.
	tokens := strings.Fields(string(data))
	var machine string
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "machine":
			if i+1 < len(tokens) {
				i++
				machine = tokens[i]
			}
		case "default":
			machine = ""
		case "login":
			if i+1 < len(tokens) && machine != "" {
				i++
				cred := entries[machine]
				cred.Username = tokens[i]
				entries[machine] = cred
			}
		case "password":
			if i+1 < len(tokens) && machine != "" {
				i++
				cred := entries[machine]
				cred.Secret = tokens[i]
				entries[machine] = cred
			}
		}
	}

	return entries, nil
}

package domain

// Credential is a username plus API token pair for a Confluence host.
// Confluence Cloud accepts these as HTTP Basic auth on every request.
type Credential struct {
	// Username is the account email address.
	Username string

	// Secret is the API token.
	Secret string
}

// IsValid returns true if both parts of the credential are present.
func (c Credential) IsValid() bool {
	return c.Username != "" && c.Secret != ""
}

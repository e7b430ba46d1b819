package cli

import "errors"

// Errors returned when the CLI is missing its wiring.
var (
	// ErrNoServices indicates SetServices was never called.
	ErrNoServices = errors.New("services not configured")

	// ErrNoHostConfigured indicates no Confluence host has been set.
	ErrNoHostConfigured = errors.New(
		"no Confluence host configured (run: confluence-reader config set confluence.host <host>)")
)

// Package browser hands URLs to the system browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// Ensure Opener implements the interface.
var _ driven.URLOpener = (*Opener)(nil)

// Opener opens URLs via the platform's default launcher.
type Opener struct{}

// New creates a new opener.
func New() *Opener {
	return &Opener{}
}

// Open implements driven.URLOpener. The launch is fire-and-forget: the
// browser process is not waited on.
func (o *Opener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	logger.Debug("Opening URL: %s", url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

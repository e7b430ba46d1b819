package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Indicator glyphs appended to rendered links.
const (
	// InternalGlyph marks links that resolve to another page in-app.
	InternalGlyph = "›"

	// ExternalGlyph marks links that open in the system browser.
	ExternalGlyph = "↗"
)

// Styles are the lipgloss styles applied while rendering a page body.
type Styles struct {
	// Heading styles h1-h6 text.
	Heading lipgloss.Style

	// Internal styles links that resolve to another page.
	Internal lipgloss.Style

	// External styles links opened via the system browser.
	External lipgloss.Style

	// Anchor styles in-page fragment links: visually distinct and
	// disabled-looking, since they have no navigation target.
	Anchor lipgloss.Style

	// Image styles image placeholder lines.
	Image lipgloss.Style

	// Help styles help-text overlays.
	Help lipgloss.Style

	// Code styles inline code and preformatted blocks.
	Code lipgloss.Style
}

// DefaultStyles returns the default page rendering styles.
func DefaultStyles() *Styles {
	return &Styles{
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")), // Purple

		Internal: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("#06B6D4")), // Cyan

		External: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("#A6E3A1")), // Green

		Anchor: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#6C7086")), // Medium gray

		Image: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#F9E2AF")), // Yellow

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")), // Medium gray

		Code: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")), // Red
	}
}

package render

import (
	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// Link is a classified link span in a rendered document. Anchor links
// are never recorded here: their spans carry no activation handler.
type Link struct {
	// Line is the index of the document line the link sits on.
	Line int

	// Text is the link text as rendered.
	Text string

	// Classification is the internal/external decision for this link.
	Classification domain.LinkClassification
}

// Image is a rendered image placeholder with its fetched bytes.
type Image struct {
	// Line is the index of the placeholder line.
	Line int

	// Alt is the alternative text.
	Alt string

	// Src is the image source as authored.
	Src string

	// Width and Height are the declared dimensions, verbatim.
	Width  string
	Height string

	// Help is the help-text overlay (the title attribute).
	Help string

	// Data holds the image bytes fetched through the authenticated
	// dispatcher. Nil when the fetch failed.
	Data []byte
}

// Document is a page body rendered for terminal display, along with
// the link and image spans found while rendering.
type Document struct {
	// Title is the page title.
	Title string

	// Lines are the rendered text lines, unwrapped.
	Lines []string

	// Links are the activatable link spans, in document order.
	Links []Link

	// Images are the image placeholders, in document order.
	Images []Image
}

// LinkAt returns the link on the given line. Activation at a line with
// no stored link fails with domain.ErrNotALink.
func (d *Document) LinkAt(line int) (*Link, error) {
	for i := range d.Links {
		if d.Links[i].Line == line {
			return &d.Links[i], nil
		}
	}
	return nil, domain.ErrNotALink
}

// NextLinkLine returns the line of the first link after the given line,
// or -1 if there is none.
func (d *Document) NextLinkLine(after int) int {
	for i := range d.Links {
		if d.Links[i].Line > after {
			return d.Links[i].Line
		}
	}
	return -1
}

// PrevLinkLine returns the line of the last link before the given line,
// or -1 if there is none.
func (d *Document) PrevLinkLine(before int) int {
	for i := len(d.Links) - 1; i >= 0; i-- {
		if d.Links[i].Line < before {
			return d.Links[i].Line
		}
	}
	return -1
}

package domain

import "strings"

// LinkClass is the three-way classification of an anchor element in a
// rendered page. Every link falls into exactly one class.
type LinkClass int

const (
	// LinkInternal is a link authored as an in-product reference to
	// another page. It carries a resolvable page identifier.
	LinkInternal LinkClass = iota

	// LinkExternal is an ordinary link, opened via the generic URL opener.
	LinkExternal

	// LinkAnchor is an in-page fragment reference. It has no navigation
	// target in this model and is rendered disabled.
	LinkAnchor
)

// String returns the string representation of the link class.
func (c LinkClass) String() string {
	switch c {
	case LinkInternal:
		return "internal"
	case LinkExternal:
		return "external"
	case LinkAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// LinkClassification is the outcome of classifying a single anchor
// element. Recomputed on every render; never persisted.
type LinkClassification struct {
	// Class is the link class.
	Class LinkClass

	// PageID is the target page identifier. Set only for LinkInternal.
	PageID string

	// Target is the literal href. Set only for LinkExternal.
	Target string
}

// ClassifyLink derives a classification from an anchor element's
// attributes: the resource-identifier attribute value and the href.
//
// A fragment href is always an anchor, even when a resource identifier is
// present. A non-empty resource identifier makes the link internal.
// Everything else is external with the literal target.
func ClassifyLink(resourceID, href string) LinkClassification {
	if strings.HasPrefix(href, "#") {
		return LinkClassification{Class: LinkAnchor}
	}
	if resourceID != "" {
		return LinkClassification{Class: LinkInternal, PageID: resourceID}
	}
	return LinkClassification{Class: LinkExternal, Target: href}
}

// Package render converts a page's HTML body into a terminal document.
//
// The conversion is a tree walk with a tag-handler override table:
// anchor and image elements get special handling (link classification,
// authenticated image fetch), everything else falls back to generic
// block/inline text extraction.
package render

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// resourceIDAttr names the internal identifier of another page on a
// link element. Present only when the link was authored as an
// in-product reference.
const resourceIDAttr = "data-linked-resource-id"

// ImageFetcher retrieves image bytes. The Confluence client satisfies
// this, so private attachments are fetched with credentials.
type ImageFetcher interface {
	FetchImage(ctx context.Context, src string) ([]byte, error)
}

// TagHandler renders one element and its subtree. Handlers that return
// without descending suppress the default child walk.
type TagHandler func(rc *renderContext, n *html.Node)

// Renderer converts HTML page bodies into Documents. It installs
// overriding handlers for anchor and image elements; all other tags
// get default handling.
type Renderer struct {
	styles   *Styles
	images   ImageFetcher
	handlers map[atom.Atom]TagHandler
}

// NewRenderer creates a renderer. images may be nil, in which case
// image placeholders carry no data.
func NewRenderer(styles *Styles, images ImageFetcher) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}

	r := &Renderer{
		styles: styles,
		images: images,
	}
	r.handlers = map[atom.Atom]TagHandler{
		atom.A:   r.renderAnchor,
		atom.Img: r.renderImage,
	}
	return r
}

// Render converts a page into a terminal document.
func (r *Renderer) Render(ctx context.Context, page *domain.Page) (*Document, error) {
	root, err := html.Parse(strings.NewReader(page.HTMLBody))
	if err != nil {
		return nil, fmt.Errorf("parse page body: %w", err)
	}

	rc := &renderContext{
		ctx:      ctx,
		renderer: r,
		doc:      &Document{Title: page.Title},
	}
	rc.walk(root)
	rc.flush()

	logger.Debug("Rendered page %s: %d lines, %d links, %d images",
		page.ID, len(rc.doc.Lines), len(rc.doc.Links), len(rc.doc.Images))
	return rc.doc, nil
}

// renderContext carries mutable state for a single render pass.
type renderContext struct {
	ctx      context.Context
	renderer *Renderer
	doc      *Document
	line     strings.Builder
	preDepth int
}

// flush terminates the current line.
func (rc *renderContext) flush() {
	line := rc.line.String()
	rc.line.Reset()
	if rc.preDepth == 0 {
		line = strings.TrimRight(line, " ")
	}
	if line == "" {
		// Collapse runs of blank lines
		if n := len(rc.doc.Lines); n > 0 && rc.doc.Lines[n-1] == "" {
			return
		}
	}
	rc.doc.Lines = append(rc.doc.Lines, line)
}

// blankLine flushes and inserts a paragraph break.
func (rc *renderContext) blankLine() {
	if rc.line.Len() > 0 {
		rc.flush()
	}
	rc.flush()
}

// currentLine is the index the in-progress line will have once flushed.
func (rc *renderContext) currentLine() int {
	return len(rc.doc.Lines)
}

// write appends text to the current line.
func (rc *renderContext) write(s string) {
	if rc.preDepth == 0 && rc.line.Len() == 0 {
		s = strings.TrimLeft(s, " ")
	}
	rc.line.WriteString(s)
}

// walk renders a node and its subtree with default handling, deferring
// to the override table for element kinds that have one.
func (rc *renderContext) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if rc.preDepth > 0 {
			rc.writePre(n.Data)
		} else {
			rc.write(collapseSpace(n.Data))
		}
		return

	case html.ElementNode:
		if handler, ok := rc.renderer.handlers[n.DataAtom]; ok {
			handler(rc, n)
			return
		}
		rc.walkElement(n)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rc.walk(c)
	}
}

// walkElement applies default handling for an element without an
// override.
func (rc *renderContext) walkElement(n *html.Node) {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Title, atom.Noscript:
		return

	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		rc.blankLine()
		rc.write(rc.renderer.styles.Heading.Render(textContent(n)))
		rc.flush()
		return

	case atom.P, atom.Div, atom.Section, atom.Article, atom.Table,
		atom.Ul, atom.Ol, atom.Blockquote:
		rc.blankLine()
		rc.walkChildren(n)
		if rc.line.Len() > 0 {
			rc.flush()
		}
		return

	case atom.Li:
		if rc.line.Len() > 0 {
			rc.flush()
		}
		rc.write("• ")
		rc.walkChildren(n)
		rc.flush()
		return

	case atom.Tr:
		if rc.line.Len() > 0 {
			rc.flush()
		}
		rc.walkChildren(n)
		rc.flush()
		return

	case atom.Td, atom.Th:
		rc.walkChildren(n)
		rc.write("  ")
		return

	case atom.Br:
		rc.flush()
		return

	case atom.Hr:
		rc.blankLine()
		rc.write(strings.Repeat("─", 40))
		rc.flush()
		return

	case atom.Pre:
		rc.blankLine()
		rc.preDepth++
		rc.walkChildren(n)
		rc.preDepth--
		if rc.line.Len() > 0 {
			rc.flush()
		}
		return

	case atom.Code:
		rc.write(rc.renderer.styles.Code.Render(textContent(n)))
		return
	}

	rc.walkChildren(n)
}

func (rc *renderContext) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rc.walk(c)
	}
}

// writePre writes preformatted text, honouring embedded newlines.
func (rc *renderContext) writePre(s string) {
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			rc.flush()
		}
		rc.line.WriteString(part)
	}
}

// renderAnchor is the overriding handler for anchor elements. Each link
// is classified exactly once, at render time; the classification is
// total. Fragment targets render disabled with no recorded span,
// internal and external links get an indicator glyph and a span the
// viewer can activate.
func (r *Renderer) renderAnchor(rc *renderContext, n *html.Node) {
	text := textContent(n)
	if text == "" {
		return
	}

	cls := domain.ClassifyLink(attr(n, resourceIDAttr), attr(n, "href"))
	switch cls.Class {
	case domain.LinkAnchor:
		rc.write(r.styles.Anchor.Render(text))

	case domain.LinkInternal:
		rc.doc.Links = append(rc.doc.Links, Link{
			Line:           rc.currentLine(),
			Text:           text,
			Classification: cls,
		})
		rc.write(r.styles.Internal.Render(text) + InternalGlyph)

	case domain.LinkExternal:
		rc.doc.Links = append(rc.doc.Links, Link{
			Line:           rc.currentLine(),
			Text:           text,
			Classification: cls,
		})
		rc.write(r.styles.External.Render(text) + ExternalGlyph)
	}
}

// renderImage is the overriding handler for image elements. The bytes
// come through the authenticated dispatcher so private attachments
// succeed; the placeholder keeps alt text, declared dimensions and the
// help-text overlay.
func (r *Renderer) renderImage(rc *renderContext, n *html.Node) {
	src := attr(n, "src")
	if src == "" {
		return
	}

	img := Image{
		Alt:    attr(n, "alt"),
		Src:    src,
		Width:  attr(n, "width"),
		Height: attr(n, "height"),
		Help:   attr(n, "title"),
	}

	if r.images != nil {
		data, err := r.images.FetchImage(rc.ctx, src)
		if err != nil {
			logger.Warn("Image fetch failed for %s: %v", src, err)
		} else {
			img.Data = data
		}
	}

	if rc.line.Len() > 0 {
		rc.flush()
	}
	img.Line = rc.currentLine()
	rc.doc.Images = append(rc.doc.Images, img)

	rc.write(r.styles.Image.Render(imageLabel(img)))
	if img.Help != "" {
		rc.write(" " + r.styles.Help.Render("("+img.Help+")"))
	}
	rc.flush()
}

// imageLabel builds the placeholder text for an image.
func imageLabel(img Image) string {
	label := img.Alt
	if label == "" {
		label = img.Src
	}
	if img.Data == nil {
		label = "unavailable: " + label
	}
	if img.Width != "" && img.Height != "" {
		return fmt.Sprintf("[image: %s %sx%s]", label, img.Width, img.Height)
	}
	return fmt.Sprintf("[image: %s]", label)
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a subtree with
// whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.TrimSpace(collapseSpace(b.String()))
}

// collapseSpace folds runs of whitespace into single spaces.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

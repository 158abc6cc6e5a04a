package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	// Background paints <html> and <body>. Empty leaves them transparent.
	Background string
	// Theme overrides the document theme on <html> and <body>.
	Theme string
}

// Snapshot serializes a standalone page holding only root. The document's
// <head> is copied so stylesheets apply, and the page has no margins so
// root starts at the viewport origin.
func (d *Document) Snapshot(root *html.Node, opts SnapshotOptions) (string, error) {
	theme := opts.Theme
	if theme == "" {
		theme = d.Theme()
	}
	background := opts.Background
	if background == "" {
		background = "transparent"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, `<html data-theme="%s"><head>`, html.EscapeString(theme))
	for c := d.head.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", fmt.Errorf("render head: %w", err)
		}
	}
	fmt.Fprintf(&sb, "<style>html, body { margin: 0; padding: 0; overflow: hidden; background: %s; }</style>", cssValue(background))
	fmt.Fprintf(&sb, `</head><body data-theme="%s">`, html.EscapeString(theme))
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("render snapshot root: %w", err)
	}
	sb.WriteString("</body></html>")
	return sb.String(), nil
}

// cssValue keeps a value from closing the declaration or the style element.
func cssValue(v string) string {
	return strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "").Replace(v)
}

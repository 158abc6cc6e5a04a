package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// InteractiveTags are form controls with no meaning in a static export.
var InteractiveTags = []string{"button", "input", "select", "textarea"}

// nonRendered elements never produce boxes and are left untouched.
var nonRendered = map[string]bool{
	"head": true, "style": true, "script": true, "template": true,
	"meta": true, "link": true, "title": true, "noscript": true,
}

// ForceVisible makes every rendered element under root visible: inline
// visibility and opacity are reset and an inline "display: none" becomes
// "display: block". Stylesheet rules are not touched.
func ForceVisible(root *html.Node) {
	walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if nonRendered[n.Data] {
			return false
		}
		SetStyle(n, "visibility", "visible")
		SetStyle(n, "opacity", "1")
		if display, ok := Style(n, "display"); ok && strings.EqualFold(display, "none") {
			SetStyle(n, "display", "block")
		}
		return true
	})
}

// StripInteractive removes form controls under root and returns how many
// were removed.
func StripInteractive(root *html.Node) int {
	nodes := QueryAll(root, InteractiveTags...)
	for _, n := range nodes {
		Remove(n)
	}
	return len(nodes)
}

// SyncTheme copies theme onto the first element under root (inclusive)
// that carries a data-theme attribute. It reports whether one was found.
func SyncTheme(root *html.Node, theme string) bool {
	if theme == "" {
		theme = "light"
	}
	n := find(root, func(n *html.Node) bool {
		_, ok := Attr(n, "data-theme")
		return n.Type == html.ElementNode && ok
	})
	if n == nil {
		return false
	}
	SetAttr(n, "data-theme", theme)
	return true
}

// Package dom holds the live visual tree that templates are mounted into
// and that capture strategies clone, normalize and snapshot.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PreviewID is the id of the element templates are mounted into.
const PreviewID = "preview"

// ErrNotFound is returned when an element id does not exist.
var ErrNotFound = errors.New("dom: element not found")

// PageOptions configures a new document.
type PageOptions struct {
	Title      string
	Theme      string // data-theme of <html> and <body>; empty means light
	Stylesheet string // CSS placed in a <style> element in <head>
	Background string // CSS background of the preview element
}

// Document is a parsed HTML page with a preview mount point.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

// NewDocument builds an empty page containing the preview element.
func NewDocument(opts PageOptions) *Document {
	root, err := html.Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	if err != nil {
		// The skeleton is constant; parsing it cannot fail.
		panic(fmt.Sprintf("dom: parse skeleton: %v", err))
	}

	d := &Document{root: root}
	d.head = findFirst(root, atom.Head)
	d.body = findFirst(root, atom.Body)
	d.SetTheme(opts.Theme)

	meta := d.CreateElement("meta")
	SetAttr(meta, "charset", "utf-8")
	d.head.AppendChild(meta)

	if opts.Title != "" {
		title := d.CreateElement("title")
		title.AppendChild(&html.Node{Type: html.TextNode, Data: opts.Title})
		d.head.AppendChild(title)
	}
	if opts.Stylesheet != "" {
		style := d.CreateElement("style")
		style.AppendChild(&html.Node{Type: html.TextNode, Data: opts.Stylesheet})
		d.head.AppendChild(style)
	}

	preview := d.CreateElement("div")
	SetAttr(preview, "id", PreviewID)
	if opts.Background != "" {
		SetStyle(preview, "background", opts.Background)
	}
	d.body.AppendChild(preview)

	return d
}

// Theme returns the data-theme of the body.
func (d *Document) Theme() string {
	theme, _ := Attr(d.body, "data-theme")
	return theme
}

// SetTheme updates the data-theme of <html> and <body>. Empty means light.
func (d *Document) SetTheme(theme string) {
	if theme == "" {
		theme = "light"
	}
	SetAttr(findFirst(d.root, atom.Html), "data-theme", theme)
	SetAttr(d.body, "data-theme", theme)
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *html.Node {
	return find(d.root, func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// Mount replaces the children of the element with the given id by the
// parsed markup and returns that element.
func (d *Document) Mount(id, markup string) (*html.Node, error) {
	target := d.ByID(id)
	if target == nil {
		return nil, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     target.Data,
		DataAtom: target.DataAtom,
	})
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	for c := target.FirstChild; c != nil; {
		next := c.NextSibling
		target.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		target.AppendChild(n)
	}
	return target, nil
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// AppendToBody attaches n as the last child of <body>.
func (d *Document) AppendToBody(n *html.Node) {
	Remove(n)
	d.body.AppendChild(n)
}

// IsAttached reports whether n belongs to the document tree.
func (d *Document) IsAttached(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

// Render serializes the whole document.
func (d *Document) Render() (string, error) {
	return Render(d.root)
}

// Remove detaches n from its parent, if any.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Clone returns a deep, detached copy of n.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// QueryAll returns elements under root (inclusive) whose tag is one of tags.
func QueryAll(root *html.Node, tags ...string) []*html.Node {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToLower(t)] = true
	}
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && want[n.Data] {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Render serializes n and its descendants.
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", fmt.Errorf("render node: %w", err)
	}
	return sb.String(), nil
}

// Attr returns the value of an attribute.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// walk visits n and its descendants depth-first. The children of a node
// are skipped when fn returns false for it.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// find returns the first node in document order matching pred.
func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func findFirst(root *html.Node, a atom.Atom) *html.Node {
	return find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	})
}

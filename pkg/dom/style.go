package dom

import (
	"strings"

	"github.com/gorilla/css/scanner"
	"golang.org/x/net/html"
)

// declaration is one "property: value" pair of an inline style.
type declaration struct {
	Property string
	Value    string
}

// parseStyle splits an inline style on top-level ";" tokens, so strings
// and url() values keep their semicolons.
func parseStyle(s string) []declaration {
	var decls []declaration
	var prop, val strings.Builder
	inValue := false

	flush := func() {
		p := strings.ToLower(strings.TrimSpace(prop.String()))
		if inValue && p != "" {
			decls = append(decls, declaration{Property: p, Value: strings.TrimSpace(val.String())})
		}
		prop.Reset()
		val.Reset()
		inValue = false
	}

	sc := scanner.New(s)
	for {
		tok := sc.Next()
		switch {
		case tok.Type == scanner.TokenEOF, tok.Type == scanner.TokenError:
			flush()
			return decls
		case tok.Type == scanner.TokenComment:
		case tok.Type == scanner.TokenChar && tok.Value == ";":
			flush()
		case tok.Type == scanner.TokenChar && tok.Value == ":" && !inValue:
			inValue = true
		case inValue:
			val.WriteString(tok.Value)
		default:
			prop.WriteString(tok.Value)
		}
	}
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Style returns the inline value of a CSS property.
func Style(n *html.Node, property string) (string, bool) {
	raw, _ := Attr(n, "style")
	property = strings.ToLower(property)
	value, found := "", false
	// Later declarations win, as in CSS.
	for _, d := range parseStyle(raw) {
		if d.Property == property {
			value, found = d.Value, true
		}
	}
	return value, found
}

// SetStyle sets an inline CSS property, keeping the order of the others.
func SetStyle(n *html.Node, property, value string) {
	raw, _ := Attr(n, "style")
	property = strings.ToLower(property)
	decls := parseStyle(raw)

	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.Property == property {
			if !replaced {
				out = append(out, declaration{Property: property, Value: value})
				replaced = true
			}
			continue
		}
		out = append(out, d)
	}
	if !replaced {
		out = append(out, declaration{Property: property, Value: value})
	}
	SetAttr(n, "style", formatStyle(out))
}

// SetStyles applies several properties in order.
func SetStyles(n *html.Node, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		SetStyle(n, pairs[i], pairs[i+1])
	}
}

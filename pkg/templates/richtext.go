package templates

import (
	"html/template"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextOnce   sync.Once
	richTextPolicy *bluemonday.Policy
)

// richText sanitizes a user supplied body, keeping inline formatting only.
func richText(raw string) template.HTML {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return template.HTML(richTextSanitizer().Sanitize(raw))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "i", "em", "strong", "u", "s", "br", "code", "span", "small", "mark")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.AllowAttrs("class").OnElements("span")
		richTextPolicy = policy
	})
	return richTextPolicy
}

// initial returns the uppercased first character of name, or fallback.
func initial(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// orDefault returns s, or def when s is blank.
func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

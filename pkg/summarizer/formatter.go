package summarizer

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// YAMLFormatter renders a Summary as a YAML document for scripts.
var YAMLFormatter = FormatFunc(func(s *Summary) string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
})

// ForPath picks a formatter by file extension: .yaml and .yml get
// YAMLFormatter, anything else gets markdown.
func ForPath(path string, markdown *MarkdownFormatter) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormatter
	default:
		return markdown
	}
}

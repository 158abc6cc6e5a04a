// Package transcript turns rendered template markup into Markdown, for
// pasting a mock into places that cannot show images.
package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/user/tagshot/pkg/templates"
)

// Converter converts markup to Markdown.
type Converter struct {
	conv *converter.Converter
}

// New creates a Converter. Interactive controls are dropped; button labels
// are kept as text.
func New() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				strikethrough.NewStrikethroughPlugin(),
			),
		),
	}
}

// Markdown converts a markup fragment.
func (c *Converter) Markdown(ctx context.Context, markup string) (string, error) {
	md, err := c.conv.ConvertString(markup, converter.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("convert markup: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// Document converts markup and puts a heading naming the variant on top.
func (c *Converter) Document(ctx context.Context, kind templates.Kind, markup string) (string, error) {
	body, err := c.Markdown(ctx, markup)
	if err != nil {
		return "", err
	}

	label := kind.String()
	if d, ok := templates.Describe(kind); ok && d.Label != "" {
		label = d.Label
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", label)
	if body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used for headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Export Summary"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Template"))
	f.table(&sb, [][2]string{
		{t("Variant"), variantLabel(s.Variant)},
		{t("Theme"), orDash(s.Variant.Theme)},
		{t("Tag"), orDash(s.Variant.Tag)},
	})

	fmt.Fprintf(&sb, "## %s\n\n", t("Capture"))
	background := orDash(s.Settings.Background)
	if s.Settings.Transparent {
		background = t("Transparent")
	}
	f.table(&sb, [][2]string{
		{t("Mode"), orDash(s.Settings.Mode)},
		{t("Engine"), orDash(s.Settings.Engine)},
		{t("Scale"), formatScale(s.Settings.Scale)},
		{t("Background"), background},
	})

	fmt.Fprintf(&sb, "## %s\n\n", t("Output"))
	f.table(&sb, [][2]string{
		{t("File"), orDash(s.Output.Filename)},
		{t("Location"), orDash(s.Output.Location)},
		{t("Size"), fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height)},
		{t("File Size"), formatBytes(s.Output.FileSize)},
		{t("Duration"), fmt.Sprintf("%d ms", s.Output.DurationMs)},
	})

	sb.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" · tagshot %s", f.version)
	}
	sb.WriteString(footer)
	sb.WriteString("\n")

	return sb.String()
}

func (f *MarkdownFormatter) table(sb *strings.Builder, rows [][2]string) {
	fmt.Fprintf(sb, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	sb.WriteString("|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s |\n", r[0], escapeCell(r[1]))
	}
	sb.WriteString("\n")
}

func variantLabel(v VariantInfo) string {
	switch {
	case v.Label != "" && v.Kind != "":
		return fmt.Sprintf("%s (%s)", v.Label, v.Kind)
	case v.Kind != "":
		return v.Kind
	default:
		return "-"
	}
}

func formatScale(scale float64) string {
	if scale <= 0 {
		return "-"
	}
	return fmt.Sprintf("%gx", scale)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

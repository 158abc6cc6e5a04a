// Package summarizer provides summary generation for export results.
package summarizer

import "time"

// Summary contains all data collected during one export.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `yaml:"generated_at"`

	// Which mock was rendered
	Variant VariantInfo `yaml:"variant"`

	// Capture settings
	Settings Settings `yaml:"settings"`

	// Output file details
	Output OutputInfo `yaml:"output"`
}

// VariantInfo describes the rendered template.
type VariantInfo struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label,omitempty"`
	Theme string `yaml:"theme"`
	Tag   string `yaml:"tag,omitempty"`
}

// Settings contains the capture configuration.
type Settings struct {
	Mode        string  `yaml:"mode"`
	Engine      string  `yaml:"engine"`
	Scale       float64 `yaml:"scale"`
	Background  string  `yaml:"background,omitempty"`
	Transparent bool    `yaml:"transparent"`
}

// OutputInfo contains information about the exported PNG.
type OutputInfo struct {
	Filename   string `yaml:"filename"`
	Location   string `yaml:"location"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FileSize   int64  `yaml:"file_size"`
	DurationMs int    `yaml:"duration_ms"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithVariant sets the rendered template.
func (b *Builder) WithVariant(variant VariantInfo) *Builder {
	b.summary.Variant = variant
	return b
}

// WithSettings sets capture settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output file information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithGeneratedAt overrides the timestamp.
func (b *Builder) WithGeneratedAt(t time.Time) *Builder {
	b.summary.GeneratedAt = t
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

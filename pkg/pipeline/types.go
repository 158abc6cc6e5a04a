package pipeline

import (
	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/templates"
	"golang.org/x/net/html"
)

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput carries the variant record to turn into markup.
type RenderInput struct {
	Record templates.Record
}

// RenderResult is the markup fragment of one variant.
type RenderResult struct {
	Kind   templates.Kind
	Markup string
}

// =============================================================================
// Mount Stage Types
// =============================================================================

// MountInput describes the page the markup is mounted into.
type MountInput struct {
	Markup string
	Theme  string // data-theme of the page; empty means light
	Title  string

	// Background is the CSS background of the preview element. Empty leaves
	// the preview transparent.
	Background string
}

// MountResult is the live document and its preview element.
type MountResult struct {
	Document *dom.Document
	Preview  *html.Node
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput selects what to capture and how.
type ExportInput struct {
	Document *dom.Document
	Node     *html.Node
	Mode     capture.Mode
	Request  capture.Request
}

// ExportResult is the delivered PNG.
type ExportResult struct {
	capture.Result
}

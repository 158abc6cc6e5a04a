// Package export implements the PNG export stage.
package export

import (
	"context"

	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"golang.org/x/net/html"
)

// Capturer exports a node of a live document. *capture.Pipeline
// implements it.
type Capturer interface {
	Capture(ctx context.Context, mode capture.Mode, doc *dom.Document, node *html.Node, req capture.Request) (capture.Result, error)
}

// Stage captures the preview and delivers it.
type Stage struct {
	capturer Capturer
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(capturer Capturer, logger ports.Logger) *Stage {
	return &Stage{
		capturer: capturer,
		logger:   logger.WithComponent("export"),
	}
}

// Execute captures input.Node. Errors come back unchanged so callers can
// match capture.ErrExportFailed and capture.ErrInvalidSize.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	mode := input.Mode
	if mode == "" {
		mode = capture.ModeHighQuality
	}
	s.logger.Debug("Export requested: %dx%d (%s)", input.Request.Width, input.Request.Height, mode)

	res, err := s.capturer.Capture(ctx, mode, input.Document, input.Node, input.Request)
	if err != nil {
		return pipeline.ExportResult{}, err
	}
	return pipeline.ExportResult{Result: res}, nil
}

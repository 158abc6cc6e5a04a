// Package render implements the template rendering stage.
package render

import (
	"context"
	"fmt"

	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/templates"
)

// Stage turns a variant record into markup.
type Stage struct {
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new render stage.
func NewStage(sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("render"),
	}
}

// Execute renders input.Record with its own kind.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	result := pipeline.RenderResult{}

	if input.Record == nil {
		return result, fmt.Errorf("render: %w", templates.ErrRecordMismatch)
	}

	markup, err := templates.RenderRecord(input.Record)
	if err != nil {
		return result, err
	}

	result.Kind = input.Record.Kind()
	result.Markup = markup
	s.logger.Debug("Rendered %s (%d bytes)", result.Kind, len(markup))

	if s.sink.Enabled() {
		if err := s.sink.SaveMarkup([]byte(markup)); err != nil {
			s.logger.Warn("Failed to save debug output: %v", err)
		}
	}

	return result, nil
}

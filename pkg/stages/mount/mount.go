// Package mount implements the stage that places rendered markup into a
// live document.
package mount

import (
	"context"
	"fmt"

	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/templates"
)

// DefaultTitle is the page title when the input leaves it empty.
const DefaultTitle = "tagshot"

// Stage builds the preview document.
type Stage struct {
	stylesheet string
	logger     ports.Logger
}

// NewStage creates a new mount stage using the template stylesheet.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		stylesheet: templates.Stylesheet,
		logger:     logger.WithComponent("mount"),
	}
}

// Execute creates a document and mounts input.Markup under #preview. Any
// previous preview content is replaced wholesale.
func (s *Stage) Execute(ctx context.Context, input pipeline.MountInput) (pipeline.MountResult, error) {
	result := pipeline.MountResult{}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	doc := dom.NewDocument(dom.PageOptions{
		Title:      title,
		Theme:      input.Theme,
		Stylesheet: s.stylesheet,
		Background: input.Background,
	})

	preview, err := doc.Mount(dom.PreviewID, input.Markup)
	if err != nil {
		return result, fmt.Errorf("mount preview: %w", err)
	}
	s.logger.Debug("Mounted preview (theme %s)", doc.Theme())

	result.Document = doc
	result.Preview = preview
	return result, nil
}

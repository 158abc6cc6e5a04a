// Package orchestrator coordinates the render, mount and export stages
// for one application state.
package orchestrator

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/state"
	"github.com/user/tagshot/pkg/templates"
	"golang.org/x/net/html"
)

// Config contains everything one run needs.
type Config struct {
	State state.AppState
	Mode  capture.Mode

	// Transparent drops the state background so the PNG keeps its alpha.
	Transparent bool

	// Title of the preview page; empty uses the mount stage default.
	Title string
}

// DefaultConfig returns a Config for the default state in high-quality
// mode.
func DefaultConfig() Config {
	return Config{
		State: state.Defaults(),
		Mode:  capture.ModeHighQuality,
	}
}

// Background is the CSS background used for the preview and the export.
func (c Config) Background() string {
	if c.Transparent {
		return ""
	}
	return c.State.Bg
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	mountStage  pipeline.Stage[pipeline.MountInput, pipeline.MountResult]
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	logger      ports.Logger
	now         func() time.Time
}

// New creates a new Orchestrator.
func New(
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	mountStage pipeline.Stage[pipeline.MountInput, pipeline.MountResult],
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		renderStage: renderStage,
		mountStage:  mountStage,
		exportStage: exportStage,
		logger:      logger,
		now:         time.Now,
	}
}

// Preview is a rendered and mounted state.
type Preview struct {
	Kind     templates.Kind
	Markup   string
	Document *dom.Document
	Node     *html.Node
}

// Preview renders the state and mounts it without exporting.
func (o *Orchestrator) Preview(ctx context.Context, config Config) (Preview, error) {
	if err := config.State.Validate(); err != nil {
		return Preview{}, err
	}
	rec, err := config.State.Record()
	if err != nil {
		return Preview{}, err
	}

	o.logger.Info(l10n.F("Rendering %s", rec.Kind()))
	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{Record: rec})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render template: %s", err))
		return Preview{}, fmt.Errorf("render stage: %w", err)
	}

	mounted, err := o.mountStage.Execute(ctx, pipeline.MountInput{
		Markup:     rendered.Markup,
		Theme:      config.State.Theme,
		Title:      config.Title,
		Background: config.Background(),
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to mount preview: %s", err))
		return Preview{}, fmt.Errorf("mount stage: %w", err)
	}

	return Preview{
		Kind:     rendered.Kind,
		Markup:   rendered.Markup,
		Document: mounted.Document,
		Node:     mounted.Preview,
	}, nil
}

// Run renders, mounts and exports the state.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := o.now()
	o.logger.Info(l10n.T("Starting pipeline"))

	preview, err := o.Preview(ctx, config)
	if err != nil {
		return RunResult{}, err
	}

	mode := config.Mode
	if mode == "" {
		mode = capture.ModeHighQuality
	}
	req := capture.Request{
		Width:      config.State.Width,
		Height:     config.State.Height,
		Background: config.Background(),
	}

	o.logger.Info(l10n.F("Exporting %dx%d PNG (%s)", req.Width, req.Height, mode))
	exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{
		Document: preview.Document,
		Node:     preview.Node,
		Mode:     mode,
		Request:  req,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to export: %s", err))
		return RunResult{}, fmt.Errorf("export stage: %w", err)
	}

	o.logger.Info(l10n.F("Saved %s (%d bytes)", exported.Location, exported.Bytes))

	return RunResult{
		Kind:        preview.Kind,
		Markup:      preview.Markup,
		Mode:        exported.Mode,
		Image:       exported.Image,
		Filename:    exported.Filename,
		Location:    exported.Location,
		Bytes:       exported.Bytes,
		Width:       req.Width,
		Height:      req.Height,
		Background:  req.Background,
		Transparent: config.Transparent,
		Duration:    o.now().Sub(start),
	}, nil
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	Kind   templates.Kind
	Markup string

	Mode     capture.Mode
	Image    image.Image
	Filename string
	Location string
	Bytes    int

	Width       int
	Height      int
	Background  string
	Transparent bool

	Duration time.Duration
}

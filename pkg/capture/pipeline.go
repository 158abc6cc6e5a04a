// Package capture rasterizes a mounted preview into a PNG of an exact size.
//
// Two strategies share one pipeline:
//
//   - direct: the preview is cloned, forced visible and rasterized at its
//     target size with a device scale of 2, then downsampled with bilinear
//     filtering.
//   - high quality: the clone is placed in an off-screen container scaled by
//     3, rasterized at three times the target size and downsampled with
//     Catmull-Rom filtering.
//
// Both produce exactly Width x Height pixels and hand the encoded PNG to a
// DownloadSink.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/ports"
)

// Mode selects a capture strategy.
type Mode string

const (
	ModeDirect      Mode = "direct"
	ModeHighQuality Mode = "hq"
)

// Modes lists the supported strategies.
func Modes() []Mode { return []Mode{ModeDirect, ModeHighQuality} }

// ParseMode parses a mode name. Empty means high quality.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return ModeDirect, nil
	case "", "hq", "high", "high-quality":
		return ModeHighQuality, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options tunes the pipeline. Zero fields take their defaults.
type Options struct {
	Product          string        // File name prefix
	DirectScale      float64       // Device scale of direct captures
	HighQualityScale float64       // Oversampling factor of high-quality captures
	ImageTimeout     time.Duration // Upper bound on waiting for images
	Clock            func() time.Time
}

// DefaultOptions returns the default pipeline options.
func DefaultOptions() Options {
	return Options{
		Product:          DefaultProduct,
		DirectScale:      2,
		HighQualityScale: 3,
		ImageTimeout:     15 * time.Second,
		Clock:            time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Product == "" {
		o.Product = d.Product
	}
	if o.DirectScale <= 0 {
		o.DirectScale = d.DirectScale
	}
	if o.HighQualityScale <= 0 {
		o.HighQualityScale = d.HighQualityScale
	}
	if o.ImageTimeout <= 0 {
		o.ImageTimeout = d.ImageTimeout
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}

// Request describes the wanted output.
type Request struct {
	Width  int
	Height int
	// Background is a CSS color. Empty keeps the output transparent.
	Background string
}

// Validate checks the target size.
func (r Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, r.Width, r.Height)
	}
	return nil
}

// Result is a delivered export.
type Result struct {
	Mode     Mode
	Image    image.Image
	Filename string
	Location string // Where the sink put the file
	Bytes    int
}

// Pipeline captures preview nodes. It serves one capture at a time.
type Pipeline struct {
	rasterizer ports.Rasterizer
	renderer   ports.Renderer
	sink       ports.DownloadSink
	debug      ports.DebugSink
	logger     ports.Logger
	opts       Options
}

// New creates a capture pipeline.
func New(rasterizer ports.Rasterizer, renderer ports.Renderer, sink ports.DownloadSink, debug ports.DebugSink, logger ports.Logger, opts Options) *Pipeline {
	return &Pipeline{
		rasterizer: rasterizer,
		renderer:   renderer,
		sink:       sink,
		debug:      debug,
		logger:     logger.WithComponent("capture"),
		opts:       opts.withDefaults(),
	}
}

// CaptureDirect exports node with the direct strategy.
func (p *Pipeline) CaptureDirect(ctx context.Context, doc *dom.Document, node *html.Node, req Request) (Result, error) {
	return p.Capture(ctx, ModeDirect, doc, node, req)
}

// CaptureHighQuality exports node with the oversampled strategy.
func (p *Pipeline) CaptureHighQuality(ctx context.Context, doc *dom.Document, node *html.Node, req Request) (Result, error) {
	return p.Capture(ctx, ModeHighQuality, doc, node, req)
}

// Capture rasterizes node, encodes it as PNG and delivers it to the sink.
func (p *Pipeline) Capture(ctx context.Context, mode Mode, doc *dom.Document, node *html.Node, req Request) (Result, error) {
	if err := checkCall(mode, doc, node, req); err != nil {
		return Result{}, err
	}

	img, err := p.rasterize(ctx, mode, doc, node, req)
	if err != nil {
		return Result{}, p.fail(mode, err)
	}

	data, err := p.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return Result{}, p.fail(mode, fmt.Errorf("encode png: %w", err))
	}

	name := Filename(p.opts.Product, p.opts.Clock())
	location, err := p.sink.Deliver(ctx, name, data)
	if err != nil {
		return Result{}, p.fail(mode, fmt.Errorf("deliver %s: %w", name, err))
	}
	p.logger.Debug("Delivered %s (%d bytes)", name, len(data))

	return Result{
		Mode:     mode,
		Image:    img,
		Filename: name,
		Location: location,
		Bytes:    len(data),
	}, nil
}

// Rasterize returns the Width x Height raster of node without encoding or
// delivering it.
func (p *Pipeline) Rasterize(ctx context.Context, mode Mode, doc *dom.Document, node *html.Node, req Request) (image.Image, error) {
	if err := checkCall(mode, doc, node, req); err != nil {
		return nil, err
	}
	img, err := p.rasterize(ctx, mode, doc, node, req)
	if err != nil {
		return nil, p.fail(mode, err)
	}
	return img, nil
}

func checkCall(mode Mode, doc *dom.Document, node *html.Node, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if mode != ModeDirect && mode != ModeHighQuality {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if doc == nil || node == nil {
		return fmt.Errorf("%w: nothing to capture", dom.ErrNotFound)
	}
	return nil
}

func (p *Pipeline) rasterize(ctx context.Context, mode Mode, doc *dom.Document, node *html.Node, req Request) (image.Image, error) {
	p.logger.Debug("Capturing %dx%d (%s)", req.Width, req.Height, mode)
	if mode == ModeHighQuality {
		return p.highQuality(ctx, doc, node, req)
	}
	return p.direct(ctx, doc, node, req)
}

func (p *Pipeline) direct(ctx context.Context, doc *dom.Document, node *html.Node, req Request) (image.Image, error) {
	clone := dom.Clone(node)
	dom.ForceVisible(clone)
	dom.SyncTheme(clone, doc.Theme())
	if req.Background != "" {
		dom.SetStyle(clone, "background", req.Background)
	}

	snapshot, err := doc.Snapshot(clone, dom.SnapshotOptions{Background: req.Background})
	if err != nil {
		return nil, fmt.Errorf("snapshot preview: %w", err)
	}

	raw, err := p.rasterizer.Rasterize(ctx, p.rasterRequest(snapshot, req.Width, req.Height, p.opts.DirectScale, req.Background))
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	p.saveDebug(ModeDirect, snapshot, raw)

	return p.downsample(raw, req, ports.ResampleFast)
}

func (p *Pipeline) highQuality(ctx context.Context, doc *dom.Document, node *html.Node, req Request) (image.Image, error) {
	scale := p.opts.HighQualityScale
	scaledW := int(math.Round(float64(req.Width) * scale))
	scaledH := int(math.Round(float64(req.Height) * scale))

	container := doc.CreateElement("div")
	dom.SetStyles(container,
		"position", "fixed",
		"left", "-99999px",
		"top", "0",
		"width", px(scaledW),
		"height", px(scaledH),
		"overflow", "hidden",
		"transform", fmt.Sprintf("scale(%g)", scale),
		"transform-origin", "top left",
	)
	if req.Background != "" {
		dom.SetStyle(container, "background-color", req.Background)
	}

	clone := dom.Clone(node)
	dom.SetStyles(clone,
		"width", px(req.Width),
		"height", px(req.Height),
		"margin", "0",
		"padding", "0",
	)
	if n := dom.StripInteractive(clone); n > 0 {
		p.logger.Debug("Removed %d interactive elements", n)
	}
	dom.SyncTheme(clone, doc.Theme())

	container.AppendChild(clone)
	doc.AppendToBody(container)
	defer dom.Remove(container)

	// The snapshot page holds only the container, moved into the viewport.
	view := dom.Clone(container)
	dom.SetStyle(view, "left", "0")
	snapshot, err := doc.Snapshot(view, dom.SnapshotOptions{Background: req.Background})
	if err != nil {
		return nil, fmt.Errorf("snapshot container: %w", err)
	}

	raw, err := p.rasterizer.Rasterize(ctx, p.rasterRequest(snapshot, scaledW, scaledH, 1, req.Background))
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	p.saveDebug(ModeHighQuality, snapshot, raw)

	return p.downsample(raw, req, ports.ResampleHigh)
}

func (p *Pipeline) rasterRequest(snapshot string, width, height int, scale float64, background string) ports.RasterRequest {
	return ports.RasterRequest{
		HTML:         snapshot,
		Width:        width,
		Height:       height,
		Scale:        scale,
		Background:   background,
		Transparent:  background == "",
		ImageTimeout: p.opts.ImageTimeout,
	}
}

// downsample draws raw onto a Width x Height canvas carrying the background.
func (p *Pipeline) downsample(raw image.Image, req Request, q ports.ResampleQuality) (image.Image, error) {
	if raw == nil || raw.Bounds().Empty() {
		return nil, errors.New("capture: rasterizer returned an empty image")
	}

	var bg color.Color
	if req.Background != "" {
		c, err := ParseColor(req.Background)
		if err != nil {
			// The engine already painted it; only the canvas fill is lost.
			p.logger.Debug("Background %q is not a hex color, keeping the rendered one", req.Background)
		} else {
			bg = c
		}
	}

	canvas := p.renderer.CreateCanvas(req.Width, req.Height, bg)
	canvas.DrawImageScaled(raw, 0, 0, req.Width, req.Height, q)
	return canvas.ToImage(), nil
}

func (p *Pipeline) saveDebug(mode Mode, snapshot string, raw image.Image) {
	if p.debug == nil || !p.debug.Enabled() {
		return
	}
	if err := p.debug.SaveSnapshot(string(mode), []byte(snapshot)); err != nil {
		p.logger.Warn("Failed to save debug output: %v", err)
	}
	if err := p.debug.SaveRaster(string(mode), raw); err != nil {
		p.logger.Warn("Failed to save debug output: %v", err)
	}
}

func (p *Pipeline) fail(mode Mode, err error) error {
	p.logger.Error("Export failed (%s): %v", mode, err)
	return &ExportError{Mode: mode, Err: err}
}

func px(n int) string { return fmt.Sprintf("%dpx", n) }

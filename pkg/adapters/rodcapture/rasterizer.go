// Package rodcapture rasterizes HTML pages with a headless Chrome driven by
// go-rod.
package rodcapture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/user/tagshot/pkg/adapters/headless"
	"github.com/user/tagshot/pkg/ports"
)

// Rasterizer implements ports.Rasterizer with go-rod.
type Rasterizer struct {
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a rod rasterizer. Pages are loaded with
// Page.setDocumentContent, so nothing touches the disk.
func New(opts ports.BrowserOptions, logger ports.Logger) *Rasterizer {
	return &Rasterizer{opts: opts, logger: logger.WithComponent("rod")}
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Rasterize renders req.HTML and returns a screenshot of the viewport.
func (r *Rasterizer) Rasterize(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", req.Width, req.Height)
	}

	l := launcher.New().
		Context(ctx).
		Headless(r.opts.Headless).
		NoSandbox(r.opts.NoSandbox).
		Set("hide-scrollbars").
		Set("force-color-profile", "srgb")
	if path := headless.Resolve(r.opts.ChromePath); path != "" {
		l = l.Bin(path)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()
	defer l.Kill()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	r.logger.Debug("Rasterizing %dx%d at scale %.1f", req.Width, req.Height, req.DeviceScale())

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             req.Width,
		Height:            req.Height,
		DeviceScaleFactor: req.DeviceScale(),
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	if req.Transparent {
		alpha := 0.0
		if err := (proto.EmulationSetDefaultBackgroundColorOverride{
			Color: &proto.DOMRGBA{A: &alpha},
		}).Call(page); err != nil {
			return nil, fmt.Errorf("clear background: %w", err)
		}
	}

	if err := page.SetDocumentContent(req.HTML); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	res, err := page.Eval(headless.ImageWaitFunction(), headless.TimeoutMillis(req.ImageTimeout))
	if err != nil {
		return nil, fmt.Errorf("wait images: %w", err)
	}
	if pending := res.Value.Int(); pending > 0 {
		r.logger.Warn("%d images still loading after %d ms, capturing anyway", pending, headless.TimeoutMillis(req.ImageTimeout))
	}

	buf, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format:      proto.PageCaptureScreenshotFormatPng,
		FromSurface: true,
		Clip: &proto.PageViewport{
			Width:  float64(req.Width),
			Height: float64(req.Height),
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	w, h := req.PixelSize()
	return headless.Fit(img, w, h), nil
}

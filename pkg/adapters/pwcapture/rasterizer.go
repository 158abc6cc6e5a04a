// Package pwcapture rasterizes HTML pages with Chromium driven by
// playwright-go.
package pwcapture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/user/tagshot/pkg/adapters/headless"
	"github.com/user/tagshot/pkg/ports"
)

// Rasterizer implements ports.Rasterizer with playwright-go. The playwright
// driver must be installed (see playwright.Install).
type Rasterizer struct {
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a playwright rasterizer.
func New(opts ports.BrowserOptions, logger ports.Logger) *Rasterizer {
	return &Rasterizer{opts: opts, logger: logger.WithComponent("playwright")}
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Rasterize renders req.HTML and returns a screenshot of the viewport.
// Cancelling ctx stops the driver, which aborts any pending call.
func (r *Rasterizer) Rasterize(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", req.Width, req.Height)
	}

	pw, err := playwright.Run(&playwright.RunOptions{SkipInstallBrowsers: true})
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	var once sync.Once
	stop := func() { once.Do(func() { pw.Stop() }) }
	stopped := make(chan struct{})
	defer close(stopped)
	defer stop()
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-stopped:
		}
	}()

	browser, err := pw.Chromium.Launch(r.launchOptions())
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport:          &playwright.Size{Width: req.Width, Height: req.Height},
		DeviceScaleFactor: playwright.Float(req.DeviceScale()),
	})
	if err != nil {
		return nil, fmt.Errorf("new context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}

	r.logger.Debug("Rasterizing %dx%d at scale %.1f", req.Width, req.Height, req.DeviceScale())

	if err := page.SetContent(req.HTML, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	pending, err := page.Evaluate(headless.ImageWaitFunction(), headless.TimeoutMillis(req.ImageTimeout))
	if err != nil {
		return nil, fmt.Errorf("wait images: %w", err)
	}
	if n, ok := pending.(int); ok && n > 0 {
		r.logger.Warn("%d images still loading after %d ms, capturing anyway", n, headless.TimeoutMillis(req.ImageTimeout))
	}

	buf, err := page.Screenshot(playwright.PageScreenshotOptions{
		Type:           playwright.ScreenshotTypePng,
		OmitBackground: playwright.Bool(req.Transparent),
		Clip: &playwright.Rect{
			Width:  float64(req.Width),
			Height: float64(req.Height),
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

func (r *Rasterizer) launchOptions() playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless:        playwright.Bool(r.opts.Headless),
		ChromiumSandbox: playwright.Bool(!r.opts.NoSandbox),
		Args:            []string{"--hide-scrollbars", "--force-color-profile=srgb"},
	}
	if path := headless.Resolve(r.opts.ChromePath); path != "" {
		opts.ExecutablePath = playwright.String(path)
	}
	return opts
}

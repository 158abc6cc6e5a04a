// Package chromecapture rasterizes HTML pages with a headless Chrome driven
// by chromedp.
package chromecapture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/user/tagshot/pkg/adapters/headless"
	"github.com/user/tagshot/pkg/ports"
)

// Rasterizer implements ports.Rasterizer with chromedp. Each call starts
// its own browser and tears it down before returning.
type Rasterizer struct {
	fs     ports.FileSystem
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a chromedp rasterizer. Pages are written to temporary files
// through fs and loaded over file://.
func New(fs ports.FileSystem, opts ports.BrowserOptions, logger ports.Logger) *Rasterizer {
	return &Rasterizer{
		fs:     fs,
		opts:   opts,
		logger: logger.WithComponent("chromedp"),
	}
}

// Ensure Rasterizer implements ports.Rasterizer
var _ ports.Rasterizer = (*Rasterizer)(nil)

// Rasterize renders req.HTML and returns a screenshot of the viewport.
func (r *Rasterizer) Rasterize(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", req.Width, req.Height)
	}

	tmpFile, err := r.fs.WriteTemp("tagshot-*.html", []byte(req.HTML))
	if err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	defer r.fs.Remove(tmpFile)

	allocOpts, err := r.allocatorOptions()
	if err != nil {
		return nil, err
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	r.logger.Debug("Rasterizing %dx%d at scale %.1f", req.Width, req.Height, req.DeviceScale())

	var buf []byte
	var pending int64
	if err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(int64(req.Width), int64(req.Height), req.DeviceScale(), false),
		backgroundOverride(req),
		chromedp.Navigate("file://"+tmpFile),
		chromedp.Evaluate(headless.ImageWaitExpression(req.ImageTimeout), &pending, awaitPromise),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithFromSurface(true).
				WithClip(&page.Viewport{Width: float64(req.Width), Height: float64(req.Height), Scale: 1}).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	if pending > 0 {
		r.logger.Warn("%d images still loading after %d ms, capturing anyway", pending, headless.TimeoutMillis(req.ImageTimeout))
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	w, h := req.PixelSize()
	return headless.Fit(img, w, h), nil
}

func (r *Rasterizer) allocatorOptions() ([]chromedp.ExecAllocatorOption, error) {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("metrics-recording-only", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("safebrowsing-disable-auto-update", true),
		chromedp.Flag("force-color-profile", "srgb"),
		chromedp.Flag("hide-scrollbars", true),
		// Templates reference remote avatars from a file:// page.
		chromedp.Flag("allow-file-access-from-files", true),
	}
	if r.opts.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}
	if r.opts.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}

	chromePath := headless.Resolve(r.opts.ChromePath)
	if chromePath == "" {
		return nil, fmt.Errorf("chrome not found: install Chrome/Chromium, set %s, or use --chrome-path", headless.EnvVar)
	}
	return append(opts, chromedp.ExecPath(chromePath)), nil
}

// backgroundOverride clears the default white page background when the
// request wants transparency.
func backgroundOverride(req ports.RasterRequest) chromedp.Action {
	if !req.Transparent {
		return chromedp.ActionFunc(func(context.Context) error { return nil })
	}
	return emulation.SetDefaultBackgroundColorOverride().WithColor(&cdp.RGBA{R: 0, G: 0, B: 0, A: 0})
}

func awaitPromise(p *runtime.EvaluateParams) *runtime.EvaluateParams {
	return p.WithAwaitPromise(true)
}

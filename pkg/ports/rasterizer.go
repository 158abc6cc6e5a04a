package ports

import (
	"context"
	"image"
	"time"
)

// Rasterizer turns a standalone HTML page into a bitmap.
type Rasterizer interface {
	// Rasterize renders req.HTML in a viewport of req.Width x req.Height CSS
	// pixels and returns an image of (Width*Scale) x (Height*Scale) pixels.
	Rasterize(ctx context.Context, req RasterRequest) (image.Image, error)
}

// RasterRequest describes a single rasterization.
type RasterRequest struct {
	HTML   string
	Width  int     // Viewport width in CSS pixels
	Height int     // Viewport height in CSS pixels
	Scale  float64 // Device scale factor; 0 means 1

	// Background is a CSS color painted behind the page. Ignored when
	// Transparent is set.
	Background string
	// Transparent asks the engine to keep the default page background at
	// zero alpha so it survives into the PNG alpha channel.
	Transparent bool

	// ImageTimeout bounds the wait for images; zero uses the engine default.
	ImageTimeout time.Duration
}

// DeviceScale returns the effective device scale factor.
func (r RasterRequest) DeviceScale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// PixelSize returns the expected output size in device pixels.
func (r RasterRequest) PixelSize() (width, height int) {
	s := r.DeviceScale()
	return int(float64(r.Width)*s + 0.5), int(float64(r.Height)*s + 0.5)
}

// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/user/tagshot/pkg/ports"
)

// Rasterizer is a mock implementation of ports.Rasterizer.
// By default it returns an image of the requested pixel size filled with Fill
// (fully transparent when Fill is nil).
type Rasterizer struct {
	mu sync.Mutex

	RasterizeFunc func(ctx context.Context, req ports.RasterRequest) (image.Image, error)
	Fill          color.Color

	// Recorded calls for verification
	Calls []ports.RasterRequest
}

func (m *Rasterizer) Rasterize(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.RasterizeFunc != nil {
		return m.RasterizeFunc(ctx, req)
	}
	w, h := req.PixelSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if m.Fill != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(m.Fill), image.Point{}, draw.Src)
	}
	return img, nil
}

// LastCall returns the most recent request, if any.
func (m *Rasterizer) LastCall() (ports.RasterRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return ports.RasterRequest{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

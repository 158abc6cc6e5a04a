// Package debugsink saves intermediate capture output to a directory.
package debugsink

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/user/tagshot/pkg/ports"
)

// Sink saves debug output to files under baseDir:
//
//	markup.html
//	<mode>/snapshot.html
//	<mode>/raster.png
//	<mode>/preview.jpg
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// PreviewWidth bounds the width of preview.jpg.
const PreviewWidth = 480

const previewQuality = 80

// New creates a new debug Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveMarkup saves the rendered template markup.
func (s *Sink) SaveMarkup(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "markup.html"), data)
}

// SaveSnapshot saves the page handed to the rasterizer.
func (s *Sink) SaveSnapshot(mode string, data []byte) error {
	dir := filepath.Join(s.baseDir, mode)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, "snapshot.html"), data)
}

// SaveRaster saves the raster before it is downsampled, plus a small JPEG
// flattened on white for quick inspection.
func (s *Sink) SaveRaster(mode string, img image.Image) error {
	dir := filepath.Join(s.baseDir, mode)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode raster: %w", err)
	}
	if err := s.fs.WriteFile(filepath.Join(dir, "raster.png"), data); err != nil {
		return err
	}

	w, h := previewSize(img.Bounds())
	if w == 0 || h == 0 {
		return nil
	}
	canvas := s.renderer.CreateCanvas(w, h, color.White)
	canvas.DrawImage(s.renderer.ResizeImage(img, w, h, ports.ResampleHigh), 0, 0)
	preview, err := s.renderer.EncodeImage(canvas.ToImage(), ports.FormatJPEG, previewQuality)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, "preview.jpg"), preview)
}

// previewSize fits b into PreviewWidth, keeping the aspect ratio.
func previewSize(b image.Rectangle) (int, int) {
	w, h := b.Dx(), b.Dy()
	if w <= PreviewWidth {
		return w, h
	}
	h = h * PreviewWidth / w
	if h < 1 {
		h = 1
	}
	return PreviewWidth, h
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)

package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/user/tagshot/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()

	// Create test image
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	// Encode
	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	// Encode
	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	// Create 100x100 image
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	// Resize to 50x50
	resized := r.ResizeImage(img, 50, 50, ports.ResampleHigh)

	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	// Draw red rectangle
	canvas.DrawRect(10, 10, 30, 30, color.RGBA{R: 255, A: 255})

	img := canvas.ToImage()

	// Check that pixel inside rectangle is red
	c := img.At(20, 20)
	red, _, _, _ := c.RGBA()
	if red == 0 {
		t.Error("expected red pixel inside rectangle")
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	// Create small red image
	small := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			small.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	// Draw at position (10, 10)
	canvas.DrawImage(small, 10, 10)

	img := canvas.ToImage()

	// Check pixel at (15, 15) should be red
	c := img.At(15, 15)
	red, _, _, _ := c.RGBA()
	if red == 0 {
		t.Error("expected red pixel from drawn image")
	}
}

func TestRenderer_CreateCanvas_Transparent(t *testing.T) {
	r := New()

	img := r.CreateCanvas(10, 10, nil).ToImage()
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("expected transparent pixel, got alpha %d", a)
	}
}

func TestCanvas_DrawImageScaled(t *testing.T) {
	r := New()

	src := image.NewRGBA(image.Rect(0, 0, 300, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	tests := []struct {
		name    string
		quality ports.ResampleQuality
	}{
		{"fast", ports.ResampleFast},
		{"high", ports.ResampleHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := r.CreateCanvas(100, 100, nil)
			canvas.DrawImageScaled(src, 0, 0, 100, 100, tt.quality)

			img := canvas.ToImage()
			if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
				t.Fatalf("expected 100x100, got %v", img.Bounds())
			}
			_, _, b, a := img.At(50, 50).RGBA()
			if b < 0xf000 || a < 0xf000 {
				t.Errorf("expected opaque blue center, got b=%d a=%d", b, a)
			}
		})
	}
}

func TestCanvas_DrawImageScaled_KeepsAlpha(t *testing.T) {
	r := New()

	// Opaque square in the middle of a transparent raster.
	src := image.NewRGBA(image.Rect(0, 0, 90, 90))
	for y := 30; y < 60; y++ {
		for x := 30; x < 60; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	canvas := r.CreateCanvas(30, 30, nil)
	canvas.DrawImageScaled(src, 0, 0, 30, 30, ports.ResampleHigh)
	img := canvas.ToImage()

	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	if _, _, _, a := img.At(15, 15).RGBA(); a == 0 {
		t.Error("expected opaque center")
	}
}

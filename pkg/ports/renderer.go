package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions.
	// A nil background leaves the canvas fully transparent.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int, q ResampleQuality) image.Image
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image resampled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height int, q ResampleQuality)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ResampleQuality selects the interpolation kernel used when scaling.
type ResampleQuality int

const (
	// ResampleFast is bilinear-equivalent, used by direct capture.
	ResampleFast ResampleQuality = iota
	// ResampleHigh is bicubic-equivalent, used by high-quality capture.
	ResampleHigh
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

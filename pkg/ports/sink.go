package ports

import (
	"context"
	"image"
)

// DownloadSink delivers an encoded export to the user.
type DownloadSink interface {
	// Deliver hands data over under filename and returns where it went
	// (a path, a URL, ...). A nil error does not imply the user saw it.
	Deliver(ctx context.Context, filename string, data []byte) (string, error)
}

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveMarkup saves the rendered template markup.
	SaveMarkup(data []byte) error

	// SaveSnapshot saves the standalone page handed to the rasterizer.
	SaveSnapshot(mode string, data []byte) error

	// SaveRaster saves the oversampled raster before downsampling.
	SaveRaster(mode string, img image.Image) error
}

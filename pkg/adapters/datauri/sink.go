// Package datauri delivers exports as base64 data URLs.
package datauri

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/user/tagshot/pkg/ports"
)

// Prefix starts every PNG data URL.
const Prefix = "data:image/png;base64,"

// Encode returns data as a PNG data URL.
func Encode(data []byte) string {
	return Prefix + base64.StdEncoding.EncodeToString(data)
}

// Sink writes one data URL per delivery, followed by a newline.
type Sink struct {
	w io.Writer
}

// New creates a Sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Deliver writes the data URL and returns its prefix as the location.
func (s *Sink) Deliver(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(s.w, Encode(data)); err != nil {
		return "", fmt.Errorf("write data url: %w", err)
	}
	return Prefix, nil
}

var _ ports.DownloadSink = (*Sink)(nil)

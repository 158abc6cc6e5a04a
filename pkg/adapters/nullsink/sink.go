// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/tagshot/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveMarkup does nothing.
func (s *Sink) SaveMarkup(data []byte) error {
	return nil
}

// SaveSnapshot does nothing.
func (s *Sink) SaveSnapshot(mode string, data []byte) error {
	return nil
}

// SaveRaster does nothing.
func (s *Sink) SaveRaster(mode string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)

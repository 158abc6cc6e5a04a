package mocks

import (
	"context"
	"image"
	"sync"

	"github.com/user/tagshot/pkg/ports"
)

// Delivery records a call to DownloadSink.Deliver.
type Delivery struct {
	Filename string
	Data     []byte
}

// DownloadSink is a mock implementation of ports.DownloadSink.
type DownloadSink struct {
	mu sync.Mutex

	DeliverFunc func(ctx context.Context, filename string, data []byte) (string, error)

	Deliveries []Delivery
}

func (m *DownloadSink) Deliver(ctx context.Context, filename string, data []byte) (string, error) {
	m.mu.Lock()
	m.Deliveries = append(m.Deliveries, Delivery{Filename: filename, Data: data})
	m.mu.Unlock()

	if m.DeliverFunc != nil {
		return m.DeliverFunc(ctx, filename, data)
	}
	return "mock://" + filename, nil
}

var _ ports.DownloadSink = (*DownloadSink)(nil)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Markup    []byte
	Snapshots map[string][]byte
	Rasters   map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:   enabled,
		Snapshots: make(map[string][]byte),
		Rasters:   make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveMarkup(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Markup = data
	return nil
}

func (m *DebugSink) SaveSnapshot(mode string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots[mode] = data
	return nil
}

func (m *DebugSink) SaveRaster(mode string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rasters[mode] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                               { return false }
func (m *NullSink) SaveMarkup(data []byte) error                { return nil }
func (m *NullSink) SaveSnapshot(mode string, data []byte) error { return nil }
func (m *NullSink) SaveRaster(mode string, img image.Image) error {
	return nil
}

var _ ports.DebugSink = (*NullSink)(nil)

// Package filesink delivers exports into a download directory.
package filesink

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/tagshot/pkg/ports"
)

// ErrInvalidFilename is returned for names that would escape the directory.
var ErrInvalidFilename = errors.New("filesink: invalid file name")

// Sink writes each delivery to <dir>/<filename>.
type Sink struct {
	dir string
	fs  ports.FileSystem
}

// New creates a Sink writing into dir. The directory is created on the
// first delivery.
func New(dir string, fs ports.FileSystem) *Sink {
	if dir == "" {
		dir = "."
	}
	return &Sink{dir: dir, fs: fs}
}

// Dir returns the download directory.
func (s *Sink) Dir() string { return s.dir }

// Deliver writes data and returns the file path.
func (s *Sink) Deliver(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	if err := s.fs.MkdirAll(s.dir); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Ensure Sink implements ports.DownloadSink
var _ ports.DownloadSink = (*Sink)(nil)

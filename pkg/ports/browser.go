// Package ports defines interfaces for external dependencies.
package ports

import "time"

// BrowserOptions configures how a rasterizer engine launches its browser.
type BrowserOptions struct {
	Headless   bool
	ChromePath string // Explicit browser executable (falls back to CHROME_PATH, then system default)
	NoSandbox  bool   // Disable the Chrome sandbox (containers, CI)

	// ImageTimeout bounds how long an engine waits for <img> elements to
	// settle before taking the screenshot.
	ImageTimeout time.Duration
}

package headless

import (
	"fmt"
	"image"
	"image/draw"
	"time"
)

// DefaultImageTimeout bounds the image wait when a request sets none.
const DefaultImageTimeout = 15 * time.Second

// imageWaitJS resolves once every <img> has loaded or failed, or after the
// timeout with whatever has loaded. It resolves to the number of images
// still pending.
const imageWaitJS = `(timeoutMs) => new Promise((resolve) => {
  const pending = Array.from(document.images).filter((img) => !img.complete);
  if (pending.length === 0) { resolve(0); return; }
  let left = pending.length;
  const done = () => { left--; if (left <= 0) resolve(0); };
  pending.forEach((img) => {
    img.addEventListener('load', done, { once: true });
    img.addEventListener('error', done, { once: true });
  });
  setTimeout(() => resolve(left), timeoutMs);
})`

// ImageWaitFunction returns the wait as a function taking the timeout in
// milliseconds, for engines that pass arguments.
func ImageWaitFunction() string { return imageWaitJS }

// ImageWaitExpression returns the wait as a self-invoking expression.
func ImageWaitExpression(timeout time.Duration) string {
	return fmt.Sprintf("(%s)(%d)", imageWaitJS, TimeoutMillis(timeout))
}

// TimeoutMillis returns timeout in milliseconds, defaulting when unset.
func TimeoutMillis(timeout time.Duration) int64 {
	if timeout <= 0 {
		timeout = DefaultImageTimeout
	}
	return timeout.Milliseconds()
}

// Fit returns img as exactly width x height pixels. Larger screenshots are
// cropped at the bottom right; smaller ones are padded with transparency.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) && b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

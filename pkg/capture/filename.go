package capture

import (
	"fmt"
	"time"
)

// DefaultProduct prefixes exported file names.
const DefaultProduct = "tagshot"

// Filename returns "<product>-<epoch milliseconds>.png".
func Filename(product string, t time.Time) string {
	if product == "" {
		product = DefaultProduct
	}
	return fmt.Sprintf("%s-%d.png", product, t.UnixMilli())
}

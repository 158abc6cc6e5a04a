package capture

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseColor parses a CSS hex color (#rgb, #rrggbb, #rrggbbaa) or
// "transparent". The leading '#' is optional.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		v, ok := hexValue(hex[i])
		if !ok {
			return nil, fmt.Errorf("parse color %q: invalid hex digit", s)
		}
		digits[i] = v
	}

	switch len(hex) {
	case 3:
		return color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 6:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}, nil
	case 8:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: digits[6]<<4 | digits[7],
		}, nil
	default:
		return nil, fmt.Errorf("parse color %q: unsupported format", s)
	}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

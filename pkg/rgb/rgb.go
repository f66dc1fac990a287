// Package rgb provides a float RGB color type with CSS-style hex parsing.
package rgb

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// White is full-intensity white.
var White = Color{1, 1, 1}

// FromBytes creates a color from 8-bit channel values.
func FromBytes(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
	}
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Expand shorthand #abc -> #aabbcc
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return FromBytes(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Only use it for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Bytes returns the color quantised to 8-bit channels.
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Vec returns the color as a 3-component array for shader uniforms.
func (c Color) Vec() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

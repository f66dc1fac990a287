package ui2d

import "github.com/Faultbox/scrollscene/pkg/rgb"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Theme colors.
var (
	ColorTransparent  = Color{0, 0, 0, 0}
	ColorWhite        = Color{1, 1, 1, 1}
	ColorPanelBg      = Color{0.07, 0.06, 0.08, 0.92}
	ColorPanelBorder  = Color{0.35, 0.32, 0.38, 1}
	ColorButtonNormal = Color{0.16, 0.14, 0.18, 1}
	ColorButtonHover  = Color{0.26, 0.23, 0.29, 1}
	ColorButtonActive = Color{0.45, 0.28, 0.35, 1}
	ColorTrack        = Color{0.04, 0.04, 0.05, 1}
	ColorText         = Color{0.93, 0.9, 0.9, 1}
	ColorTextDim      = Color{0.55, 0.52, 0.58, 1}
)

// FromRGB converts a scene color to an opaque UI color.
func FromRGB(c rgb.Color) Color {
	return Color{c.R, c.G, c.B, 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

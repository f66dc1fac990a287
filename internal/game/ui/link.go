package ui

import "github.com/Faultbox/scrollscene/internal/engine/ui2d"

// LinkButton draws the external link button in the bottom-left corner and
// reports whether it was clicked.
func LinkButton(c *ui2d.Context, label string) bool {
	if label == "" {
		return false
	}
	_, sh := c.ScreenSize()
	tw, th := c.MeasureText(label)
	r := ui2d.Rect{X: 16, Y: sh - th - 20 - 16, W: tw + 32, H: th + 20}
	return c.ButtonAt("link", r, label)
}

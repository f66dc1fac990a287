package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResize(t *testing.T) {
	tests := []struct {
		name          string
		w, h, dw      int
		wantAspect    float32
		wantPixelRate float32
	}{
		{"standard", 1280, 720, 1280, 1280.0 / 720.0, 1},
		{"retina", 1280, 720, 2560, 1280.0 / 720.0, 2},
		{"capped", 800, 800, 2400, 1, 2},
		{"fractional", 1000, 500, 1500, 2, 1.5},
		{"zero drawable", 640, 480, 0, 640.0 / 480.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &FrameContext{}
			ctx.Resize(tt.w, tt.h, tt.dw, 2)
			assert.Equal(t, tt.w, ctx.Viewport.Width)
			assert.Equal(t, tt.h, ctx.Viewport.Height)
			assert.InDelta(t, tt.wantAspect, ctx.Viewport.Aspect(), 1e-6)
			assert.InDelta(t, tt.wantPixelRate, ctx.Viewport.PixelRatio, 1e-6)
		})
	}
}

func TestResizeIgnoresPriorState(t *testing.T) {
	a := NewFrameContext(300, 200, 900, 2)
	a.Resize(1024, 768, 1024, 2)

	b := NewFrameContext(1024, 768, 1024, 2)
	assert.Equal(t, b.Viewport, a.Viewport)
}

func TestPointerMove(t *testing.T) {
	ctx := NewFrameContext(800, 600, 800, 2)

	ctx.PointerMove(0, 0)
	assert.Equal(t, Cursor{-0.5, -0.5}, ctx.Cursor)

	ctx.PointerMove(400, 300)
	assert.Equal(t, Cursor{0, 0}, ctx.Cursor)

	ctx.PointerMove(800, 600)
	assert.Equal(t, Cursor{0.5, 0.5}, ctx.Cursor)
}

func TestPointerMoveWithoutViewport(t *testing.T) {
	ctx := &FrameContext{}
	ctx.PointerMove(10, 10)
	assert.Equal(t, Cursor{}, ctx.Cursor)
}

func TestViewportAspectDegenerate(t *testing.T) {
	assert.Equal(t, float32(1), Viewport{}.Aspect())
}

func TestSurfaceCapsShadingDensity(t *testing.T) {
	tests := []struct {
		name          string
		drawableWidth int
		wantW, wantH  int
	}{
		{"standard", 1280, 1280, 720},
		{"retina", 2560, 2560, 1440},
		{"3x display shaded at 2x", 3840, 2560, 1440},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewFrameContext(1280, 720, tt.drawableWidth, 2)
			w, h := ctx.Viewport.Surface()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestSurfaceRoundsAndNeverEmpty(t *testing.T) {
	w, h := Viewport{Width: 333, Height: 201, PixelRatio: 1.5}.Surface()
	assert.Equal(t, 500, w) // 499.5 rounds up
	assert.Equal(t, 302, h) // 301.5 rounds up

	w, h = Viewport{}.Surface()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

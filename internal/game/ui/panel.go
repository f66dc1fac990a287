package ui

import (
	"fmt"

	"github.com/Faultbox/scrollscene/internal/engine/ui2d"
	"github.com/Faultbox/scrollscene/pkg/rgb"
)

const (
	panelWidth  = 240
	panelHeight = 250
	panelMargin = 10
)

// SceneInfo is the read-only state shown in the debug panel.
type SceneInfo struct {
	Section        int
	Sections       int
	Scroll         float32
	Tweens         int
	TexturesLoaded int
	TexturesFailed int
}

// PanelResult reports what the user changed this frame.
type PanelResult struct {
	Tint        rgb.Color
	TintChanged bool
	Save        bool
}

// DebugPanel edits the material color and shows frame statistics.
type DebugPanel struct {
	Open  bool
	Stats FrameStats
}

// Toggle opens or closes the panel.
func (p *DebugPanel) Toggle() {
	p.Open = !p.Open
}

// Draw lays the panel out in the top-right corner. tint is the current
// shared material color.
func (p *DebugPanel) Draw(c *ui2d.Context, tint rgb.Color, info SceneInfo) PanelResult {
	res := PanelResult{Tint: tint}
	if !p.Open {
		return res
	}

	sw, _ := c.ScreenSize()
	c.BeginPanel(sw-panelWidth-panelMargin, panelMargin, panelWidth, panelHeight, "Debug")
	defer c.EndPanel()

	fpsColor := ui2d.ColorText
	if p.Stats.FPS() > 0 && p.Stats.FPS() < 30 {
		fpsColor = ui2d.Color{R: 1, G: 0.35, B: 0.3, A: 1}
	}
	c.LabelColored(fmt.Sprintf("FPS %.1f (%.2f ms)", p.Stats.FPS(), p.Stats.FrameTime()), fpsColor)
	c.LabelColored(fmt.Sprintf("Heap %s", formatBytes(p.Stats.HeapAlloc())), ui2d.ColorTextDim)
	c.Label(fmt.Sprintf("Section %d/%d  scroll %.0f", info.Section+1, info.Sections, info.Scroll))
	c.LabelColored(fmt.Sprintf("Tweens %d  tex %d ok %d failed", info.Tweens, info.TexturesLoaded, info.TexturesFailed), ui2d.ColorTextDim)

	w := c.ContentWidth()
	c.Label("materialColor")
	c.Swatch(24, 16, ui2d.FromRGB(tint))
	c.SameLine()
	c.Label(tint.Hex())

	r, rc := c.Slider("tint_r", w, "R", tint.R, 0, 1)
	g, gc := c.Slider("tint_g", w, "G", tint.G, 0, 1)
	b, bc := c.Slider("tint_b", w, "B", tint.B, 0, 1)
	if rc || gc || bc {
		res.Tint = rgb.Color{R: r, G: g, B: b}
		res.TintChanged = true
	}

	res.Save = c.Button("save", w, "Save")
	return res
}

package scene

import "github.com/Faultbox/scrollscene/pkg/rgb"

// TextureMaps names the optional per-mesh texture files, relative to the
// asset roots. Empty entries keep the default appearance.
type TextureMaps struct {
	Color            string
	AmbientOcclusion string
	Height           string
	Normal           string
	Roughness        string
}

// Paths returns the non-empty map paths.
func (m TextureMaps) Paths() []string {
	var out []string
	for _, p := range []string{m.Color, m.AmbientOcclusion, m.Height, m.Normal, m.Roughness} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToonMaterial is the banded-lighting material shared by the section meshes.
type ToonMaterial struct {
	Color       rgb.Color
	GradientMap string // sampled with nearest filtering
}

// PointsMaterial styles the particle field.
type PointsMaterial struct {
	Color           rgb.Color
	Size            float32
	SizeAttenuation bool
	Transparent     bool
}

// ScreenSize returns the point size in render target pixels and the
// attenuation scale for a window logicalHeight pixels tall. Attenuated
// points are further multiplied by scale / -viewZ.
func (m PointsMaterial) ScreenSize(pixelRatio, logicalHeight float32) (size, scale float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return m.Size * pixelRatio, logicalHeight / 2
}

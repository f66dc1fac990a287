package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/config"
	"github.com/Faultbox/scrollscene/internal/logger"
	"github.com/Faultbox/scrollscene/pkg/rgb"
)

// Mesh is one section's object.
type Mesh struct {
	Name      string
	Geometry  *Geometry
	Maps      TextureMaps
	Transform Transform
}

// Points is a static point cloud. Positions are xyz triplets.
type Points struct {
	Positions []float32
	Material  *PointsMaterial
}

// Count returns the number of points.
func (p *Points) Count() int {
	return len(p.Positions) / 3
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Position  mgl32.Vec3
	Color     rgb.Color
	Intensity float32
}

// Direction returns the unit vector the light travels along.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}

// World is the full scene handed to the renderer. Its topology is fixed
// after Build; only transforms and material colors change.
type World struct {
	Meshes         []*Mesh
	Material       *ToonMaterial
	Particles      *Points
	Light          DirectionalLight
	Rig            *Rig
	ObjectDistance float32
}

// SetTint sets the color of the mesh material and the particles together.
func (w *World) SetTint(c rgb.Color) {
	w.Material.Color = c
	w.Particles.Material.Color = c
}

// Tint returns the current shared color.
func (w *World) Tint() rgb.Color {
	return w.Material.Color
}

// SectionCount returns the number of scroll sections.
func (w *World) SectionCount() int {
	return len(w.Meshes)
}

// Build creates the scene graph from configuration. rng drives the particle
// placement; pass a seeded source for reproducible layouts.
func Build(cfg config.SceneConfig, rng *rand.Rand) (*World, error) {
	if len(cfg.Sections) == 0 {
		return nil, fmt.Errorf("scene needs at least one section")
	}

	tint, err := rgb.ParseHex(cfg.MaterialColor)
	if err != nil {
		return nil, fmt.Errorf("material color: %w", err)
	}
	lightColor, err := rgb.ParseHex(cfg.Light.Color)
	if err != nil {
		return nil, fmt.Errorf("light color: %w", err)
	}

	log := logger.Named("scene")
	w := &World{
		Material:       &ToonMaterial{Color: tint, GradientMap: cfg.GradientMap},
		ObjectDistance: cfg.ObjectDistance,
		Light: DirectionalLight{
			Position:  mgl32.Vec3(cfg.Light.Position),
			Color:     lightColor,
			Intensity: cfg.Light.Intensity,
		},
	}

	for i, sec := range cfg.Sections {
		geom, err := Shape(sec.Shape)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		if sec.Model != "" {
			model, err := LoadGeometry(ResolvePath(cfg.AssetRoots, sec.Model))
			if err != nil {
				log.Warn("model override failed, keeping built-in shape",
					zap.Int("section", i),
					zap.String("model", sec.Model),
					zap.Error(err))
			} else {
				geom = model
			}
		}

		mesh := &Mesh{
			Name:     fmt.Sprintf("section%d_%s", i, geom.Name),
			Geometry: geom,
			Maps: TextureMaps{
				Color:            sec.Textures.Color,
				AmbientOcclusion: sec.Textures.AmbientOcclusion,
				Height:           sec.Textures.Height,
				Normal:           sec.Textures.Normal,
				Roughness:        sec.Textures.Roughness,
			},
			Transform: NewTransform(),
		}
		mesh.Transform.Position = mgl32.Vec3{sec.OffsetX, -cfg.ObjectDistance * float32(i), 0}
		w.Meshes = append(w.Meshes, mesh)
	}

	w.Particles = &Points{
		Positions: scatter(rng, cfg.Particles.Count, cfg.Particles.Spread, cfg.ObjectDistance, len(cfg.Sections)),
		Material: &PointsMaterial{
			Color:           tint,
			Size:            cfg.Particles.Size,
			SizeAttenuation: true,
			Transparent:     true,
		},
	}

	cam := NewPerspectiveCamera(cfg.Camera.FOV, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.Transform.Position = mgl32.Vec3{0, 0, cfg.Camera.Distance}
	w.Rig = NewRig(cam)

	log.Debug("scene built",
		zap.Int("meshes", len(w.Meshes)),
		zap.Int("particles", w.Particles.Count()))
	return w, nil
}

// Shape returns the built-in geometry for a section shape name.
func Shape(name string) (*Geometry, error) {
	switch name {
	case "torus":
		return Torus(1, 0.4, 16, 60), nil
	case "cone":
		return Cone(1, 2, 32), nil
	case "torusknot":
		return TorusKnot(0.8, 0.35, 100, 16, 2, 3), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// scatter places count points with x and z in (-spread/2, spread/2) and y
// covering the vertical extent of all sections.
func scatter(rng *rand.Rand, count int, spread, distance float32, sections int) []float32 {
	if count <= 0 {
		return nil
	}
	pos := make([]float32, count*3)
	for i := 0; i < count; i++ {
		pos[i*3+0] = (rng.Float32() - 0.5) * spread
		pos[i*3+1] = distance*0.5 - rng.Float32()*distance*float32(sections)
		pos[i*3+2] = (rng.Float32() - 0.5) * spread
	}
	return pos
}

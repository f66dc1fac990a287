package stage

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/anim"
	"github.com/Faultbox/scrollscene/internal/logger"
	"github.com/Faultbox/scrollscene/internal/scene"
)

// SpinConfig describes the tween started when a section becomes current.
type SpinConfig struct {
	Delta    mgl32.Vec3 // radians added to rotation x, y, z
	Duration float64    // seconds
	Ease     anim.Ease
}

// SectionTrigger tracks the current section and spins its mesh when the
// scroll position enters a new one.
type SectionTrigger struct {
	meshes   []*scene.Mesh
	timeline *anim.Timeline
	spin     SpinConfig
	current  int
	log      *zap.Logger
}

// NewSectionTrigger starts at section 0.
func NewSectionTrigger(meshes []*scene.Mesh, timeline *anim.Timeline, spin SpinConfig) *SectionTrigger {
	return &SectionTrigger{
		meshes:   meshes,
		timeline: timeline,
		spin:     spin,
		log:      logger.Named("section"),
	}
}

// Current returns the current section index.
func (s *SectionTrigger) Current() int {
	return s.current
}

// SectionAt returns round(scroll/height) clamped to the mesh range.
func (s *SectionTrigger) SectionAt(scroll float32, height int) int {
	idx := int(math32.Floor(scroll/float32(height) + 0.5))
	if idx < 0 {
		return 0
	}
	if last := len(s.meshes) - 1; idx > last {
		return last
	}
	return idx
}

// OnScroll handles a scroll event. When the section changes it queues a
// spin on the new section's mesh and returns true. Rapid changes are not
// debounced; spins on the same mesh add up.
func (s *SectionTrigger) OnScroll(scroll float32, height int) bool {
	if height <= 0 || len(s.meshes) == 0 {
		return false
	}

	next := s.SectionAt(scroll, height)
	if next == s.current {
		return false
	}
	s.current = next

	mesh := s.meshes[next]
	s.timeline.Add(anim.NewTween(&mesh.Transform.Rotation, s.spin.Delta, s.spin.Duration, s.spin.Ease))
	s.log.Info("section changed",
		zap.Int("section", next),
		zap.String("mesh", mesh.Name),
		zap.Int("running", s.timeline.RunningOn(&mesh.Transform.Rotation)))
	return true
}

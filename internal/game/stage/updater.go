package stage

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scrollscene/internal/anim"
	"github.com/Faultbox/scrollscene/internal/scene"
)

// Renderer draws the world once.
type Renderer interface {
	Render(w *scene.World) error
}

// Motion holds the per-frame animation constants.
type Motion struct {
	ParallaxStrength float32
	Damping          float32
	RotationSpeed    float32 // rad/s on x and y
}

// Updater advances the world by one frame.
type Updater struct {
	world    *scene.World
	timeline *anim.Timeline
	motion   Motion
	previous float64
}

// NewUpdater creates an updater whose first delta is measured from zero.
func NewUpdater(world *scene.World, timeline *anim.Timeline, motion Motion) *Updater {
	return &Updater{world: world, timeline: timeline, motion: motion}
}

// Frame runs one frame at time elapsed (seconds, monotonic):
//
//  1. delta since the previous frame
//  2. camera y from the scroll offset
//  3. rig eased toward the cursor target
//  4. mesh spin, then running tweens
//  5. draw
//
// Returns the delta used.
func (u *Updater) Frame(ctx *FrameContext, elapsed float64, r Renderer) (float64, error) {
	delta := elapsed - u.previous
	if delta < 0 {
		delta = 0
	}
	u.previous = elapsed

	u.placeCamera(ctx)
	u.parallax(ctx, float32(delta))
	u.spin(delta)

	if r == nil {
		return delta, nil
	}
	return delta, r.Render(u.world)
}

// CameraY returns the camera height for a scroll offset.
func CameraY(scroll float32, height int, distance float32) float32 {
	if height <= 0 {
		return 0
	}
	return -scroll / float32(height) * distance
}

func (u *Updater) placeCamera(ctx *FrameContext) {
	cam := u.world.Rig.Camera
	cam.Transform.Position[1] = CameraY(ctx.Scroll, ctx.Viewport.Height, u.world.ObjectDistance)
}

func (u *Updater) parallax(ctx *FrameContext, delta float32) {
	k := u.motion.ParallaxStrength
	target := mgl32.Vec2{ctx.Cursor.X * k, -ctx.Cursor.Y * k}

	// Clamped so a long stall lands on the target instead of past it
	blend := u.motion.Damping * delta
	if blend > 1 {
		blend = 1
	}

	pos := &u.world.Rig.Transform.Position
	pos[0] += (target[0] - pos[0]) * blend
	pos[1] += (target[1] - pos[1]) * blend
}

func (u *Updater) spin(delta float64) {
	step := float32(delta) * u.motion.RotationSpeed
	for _, m := range u.world.Meshes {
		m.Transform.Rotation[0] += step
		m.Transform.Rotation[1] += step
	}
	u.timeline.Advance(delta)
}

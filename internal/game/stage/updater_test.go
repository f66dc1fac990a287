package stage

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scrollscene/internal/anim"
	"github.com/Faultbox/scrollscene/internal/config"
	"github.com/Faultbox/scrollscene/internal/scene"
)

type recordingRenderer struct {
	frames  int
	cameraY []float32
	err     error
}

func (r *recordingRenderer) Render(w *scene.World) error {
	r.frames++
	r.cameraY = append(r.cameraY, w.Rig.Camera.Transform.Position.Y())
	return r.err
}

func testWorld(t *testing.T) *scene.World {
	t.Helper()
	w, err := scene.Build(config.Default().Scene, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return w
}

func defaultMotion() Motion {
	return Motion{ParallaxStrength: 0.5, Damping: 5, RotationSpeed: 0.1}
}

func TestCameraY(t *testing.T) {
	assert.InDelta(t, 0, CameraY(0, 720, 4), 1e-6)
	assert.InDelta(t, -4, CameraY(720, 720, 4), 1e-6)
	assert.InDelta(t, -6, CameraY(1080, 720, 4), 1e-6)
	assert.Equal(t, float32(0), CameraY(500, 0, 4))
}

func TestFrameCameraIsIdempotent(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(1280, 720, 1280, 2)
	ctx.Scroll = 1080

	r := &recordingRenderer{}
	for i := 1; i <= 3; i++ {
		_, err := u.Frame(ctx, float64(i)/60, r)
		require.NoError(t, err)
	}
	for _, y := range r.cameraY {
		assert.InDelta(t, -6, y, 1e-5)
	}
}

func TestFrameDelta(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(1280, 720, 1280, 2)

	d, err := u.Frame(ctx, 0.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-9)

	d, _ = u.Frame(ctx, 0.75, nil)
	assert.InDelta(t, 0.25, d, 1e-9)

	d, _ = u.Frame(ctx, 0.7, nil)
	assert.Zero(t, d, "clock going backwards yields zero delta")
}

func TestParallaxConvergesWithoutOvershoot(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(800, 600, 800, 2)
	ctx.PointerMove(800, 600) // cursor (0.5, 0.5) -> target (0.25, -0.25)

	clock := &ManualClock{}
	prevDist := float32(1)
	for i := 0; i < 240; i++ {
		clock.Tick(1.0 / 60)
		_, err := u.Frame(ctx, clock.Elapsed(), nil)
		require.NoError(t, err)

		pos := w.Rig.Transform.Position
		if pos.X() > 0.25 || pos.Y() < -0.25 {
			t.Fatalf("frame %d overshot target: %v", i, pos)
		}
		dist := mgl32.Vec2{0.25 - pos.X(), -0.25 - pos.Y()}.Len()
		if dist > prevDist {
			t.Fatalf("frame %d moved away from target", i)
		}
		prevDist = dist
	}
	assert.InDelta(t, 0.25, w.Rig.Transform.Position.X(), 1e-3)
	assert.InDelta(t, -0.25, w.Rig.Transform.Position.Y(), 1e-3)
}

func TestParallaxLongStallLandsOnTarget(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(800, 600, 800, 2)
	ctx.PointerMove(0, 0) // target (-0.25, 0.25)

	_, err := u.Frame(ctx, 3, nil)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, w.Rig.Transform.Position.X(), 1e-6)
	assert.InDelta(t, 0.25, w.Rig.Transform.Position.Y(), 1e-6)
}

func TestRotationAccumulates(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(1280, 720, 1280, 2)

	const n, d = 120, 1.0 / 60
	clock := &ManualClock{}
	for i := 0; i < n; i++ {
		clock.Tick(d)
		_, err := u.Frame(ctx, clock.Elapsed(), nil)
		require.NoError(t, err)
	}

	for _, m := range w.Meshes {
		assert.InDelta(t, n*d*0.1, m.Transform.Rotation.X(), 1e-4)
		assert.InDelta(t, n*d*0.1, m.Transform.Rotation.Y(), 1e-4)
		assert.Zero(t, m.Transform.Rotation.Z())
	}
}

func TestFrameAdvancesSectionSpin(t *testing.T) {
	w := testWorld(t)
	tl := anim.NewTimeline()
	u := NewUpdater(w, tl, defaultMotion())
	ctx := NewFrameContext(1280, 720, 1280, 2)
	trigger := NewSectionTrigger(w.Meshes, tl, testSpin())

	ctx.Scroll = 720
	require.True(t, trigger.OnScroll(ctx.Scroll, ctx.Viewport.Height))

	clock := &ManualClock{}
	for i := 0; i < 100; i++ {
		clock.Tick(1.0 / 50)
		_, err := u.Frame(ctx, clock.Elapsed(), nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, tl.Len())

	spin := float32(clock.Elapsed() * 0.1)
	rot := w.Meshes[1].Transform.Rotation
	assert.InDelta(t, 6+spin, rot.X(), 1e-3)
	assert.InDelta(t, 3+spin, rot.Y(), 1e-3)
	assert.InDelta(t, 1.5, rot.Z(), 1e-4)

	// Other meshes only spin
	assert.InDelta(t, spin, w.Meshes[0].Transform.Rotation.X(), 1e-3)
}

func TestFrameReturnsRenderError(t *testing.T) {
	w := testWorld(t)
	u := NewUpdater(w, anim.NewTimeline(), defaultMotion())
	ctx := NewFrameContext(1280, 720, 1280, 2)

	r := &recordingRenderer{err: errors.New("lost context")}
	_, err := u.Frame(ctx, 0.1, r)
	assert.Error(t, err)
	assert.Equal(t, 1, r.frames)
}

package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTimelineDropsFinished(t *testing.T) {
	var a, b mgl32.Vec3
	tl := NewTimeline()
	tl.Add(NewTween(&a, mgl32.Vec3{1, 0, 0}, 0.5, Linear))
	tl.Add(NewTween(&b, mgl32.Vec3{0, 1, 0}, 1.0, Linear))
	assert.Equal(t, 2, tl.Len())

	assert.Equal(t, 0, tl.Advance(0.25))
	assert.Equal(t, 1, tl.Advance(0.25))
	assert.Equal(t, 1, tl.Len())
	assert.Equal(t, 0, tl.RunningOn(&a))
	assert.Equal(t, 1, tl.RunningOn(&b))

	assert.Equal(t, 1, tl.Advance(0.5))
	assert.Equal(t, 0, tl.Len())
	assert.InDelta(t, 1.0, a.X(), 1e-6)
	assert.InDelta(t, 1.0, b.Y(), 1e-6)
}

func TestTimelineOverlappingTweensAdd(t *testing.T) {
	var rot mgl32.Vec3
	tl := NewTimeline()
	tl.Add(NewTween(&rot, mgl32.Vec3{6, 3, 1.5}, 1.5, Power2InOut))
	tl.Advance(0.5)
	tl.Add(NewTween(&rot, mgl32.Vec3{6, 3, 1.5}, 1.5, Power2InOut))
	assert.Equal(t, 2, tl.RunningOn(&rot))

	for tl.Len() > 0 {
		tl.Advance(1.0 / 60)
	}

	assert.InDelta(t, 12, rot.X(), 1e-3)
	assert.InDelta(t, 6, rot.Y(), 1e-3)
	assert.InDelta(t, 3, rot.Z(), 1e-3)
}

func TestTimelineClear(t *testing.T) {
	var rot mgl32.Vec3
	tl := NewTimeline()
	tl.Add(NewTween(&rot, mgl32.Vec3{1, 1, 1}, 1, Linear))
	tl.Advance(0.5)
	tl.Clear()

	assert.Equal(t, 0, tl.Len())
	assert.Equal(t, 0, tl.Advance(1))
	assert.InDelta(t, 0.5, rot.X(), 1e-6)
}

package anim

import "github.com/go-gl/mathgl/mgl32"

// Timeline is the list of running tweens, advanced once per frame.
// It is not safe for concurrent use; the frame loop owns it.
type Timeline struct {
	tweens []*Tween
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{tweens: make([]*Tween, 0, 4)}
}

// Add starts a tween. It takes its first step on the next Advance.
func (tl *Timeline) Add(t *Tween) {
	tl.tweens = append(tl.tweens, t)
}

// Advance steps every tween by dt in insertion order, drops finished ones
// and returns how many finished during this call.
func (tl *Timeline) Advance(dt float64) int {
	finished := 0
	live := tl.tweens[:0]
	for _, t := range tl.tweens {
		if t.Advance(dt) {
			finished++
			continue
		}
		live = append(live, t)
	}
	// Release finished tweens held in the tail of the backing array
	for i := len(live); i < len(tl.tweens); i++ {
		tl.tweens[i] = nil
	}
	tl.tweens = live
	return finished
}

// Len returns the number of running tweens.
func (tl *Timeline) Len() int {
	return len(tl.tweens)
}

// RunningOn counts running tweens that write to target.
func (tl *Timeline) RunningOn(target *mgl32.Vec3) int {
	n := 0
	for _, t := range tl.tweens {
		if t.Target == target {
			n++
		}
	}
	return n
}

// Clear drops all running tweens without applying their remainder.
func (tl *Timeline) Clear() {
	for i := range tl.tweens {
		tl.tweens[i] = nil
	}
	tl.tweens = tl.tweens[:0]
}

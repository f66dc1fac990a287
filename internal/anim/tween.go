package anim

import "github.com/go-gl/mathgl/mgl32"

// Tween adds Delta to *Target over Duration seconds, shaped by Ease.
//
// It is relative: each Advance applies only the increment between the eased
// progress before and after the step. Other writers to the same vector (the
// per-frame spin, other tweens) therefore compose additively with it.
type Tween struct {
	Target   *mgl32.Vec3
	Delta    mgl32.Vec3
	Duration float64
	Ease     Ease

	elapsed  float64
	progress float64 // eased progress already applied
}

// NewTween creates a tween. A nil ease means Linear.
func NewTween(target *mgl32.Vec3, delta mgl32.Vec3, duration float64, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		Target:   target,
		Delta:    delta,
		Duration: duration,
		Ease:     ease,
	}
}

// Advance moves the tween forward by dt seconds and reports whether it has
// finished. Negative dt is treated as zero.
func (t *Tween) Advance(dt float64) bool {
	if t.Done() {
		return true
	}
	if dt > 0 {
		t.elapsed += dt
	}

	p := 1.0
	if t.Duration > 0 && t.elapsed < t.Duration {
		p = t.Ease(t.elapsed / t.Duration)
	}

	step := float32(p - t.progress)
	t.progress = p
	if t.Target != nil && step != 0 {
		*t.Target = t.Target.Add(t.Delta.Mul(step))
	}

	return t.Done()
}

// Done reports whether the full delta has been applied.
func (t *Tween) Done() bool {
	return t.progress >= 1
}

// Progress returns the eased progress applied so far, in [0, 1].
func (t *Tween) Progress() float64 {
	return t.progress
}

// Package anim provides explicit, frame-driven interpolation tasks.
//
// Nothing here runs on its own: the frame loop owns a Timeline and advances
// it by the frame delta.
package anim

import "math"

// Ease maps linear progress t in [0, 1] to eased progress.
// Every Ease returns 0 at t=0 and 1 at t=1.
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// powerIn, powerOut and powerInOut follow GSAP naming: powerN uses exponent N+1,
// so power2 is a cubic curve.
func powerIn(exp float64) Ease {
	return func(t float64) float64 { return math.Pow(t, exp) }
}

func powerOut(exp float64) Ease {
	return func(t float64) float64 { return 1 - math.Pow(1-t, exp) }
}

func powerInOut(exp float64) Ease {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, exp) / 2
		}
		return 1 - math.Pow(2*(1-t), exp)/2
	}
}

var (
	Power1In    = powerIn(2)
	Power1Out   = powerOut(2)
	Power1InOut = powerInOut(2)
	Power2In    = powerIn(3)
	Power2Out   = powerOut(3)
	Power2InOut = powerInOut(3)
	Power3InOut = powerInOut(4)
)

// SineInOut eases along half a cosine period.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// CircInOut eases along two quarter circles.
func CircInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	u := -2*t + 2
	return (math.Sqrt(1-u*u) + 1) / 2
}

// ExpoInOut eases exponentially at both ends.
func ExpoInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

var easesByName = map[string]Ease{
	"none":         Linear,
	"linear":       Linear,
	"power1.in":    Power1In,
	"power1.out":   Power1Out,
	"power1.inOut": Power1InOut,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inOut": Power2InOut,
	"power3.inOut": Power3InOut,
	"sine.inOut":   SineInOut,
	"circ.inOut":   CircInOut,
	"expo.inOut":   ExpoInOut,
}

// EaseByName looks up an ease by its GSAP-style name ("power2.inOut").
func EaseByName(name string) (Ease, bool) {
	e, ok := easesByName[name]
	return e, ok
}

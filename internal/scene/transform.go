// Package scene holds the CPU-side scene graph: meshes, particles, light and
// the camera rig. It has no GL dependency; the renderer reads it each frame.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a node's local placement.
// Rotation is Euler angles in radians applied in X, Y, Z order.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix composes T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

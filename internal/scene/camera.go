package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera has fixed intrinsics except the aspect ratio, which
// follows the viewport.
type PerspectiveCamera struct {
	FOV       float32 // vertical, degrees
	Aspect    float32
	Near, Far float32
	Transform Transform
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:       fov,
		Aspect:    aspect,
		Near:      near,
		Far:       far,
		Transform: NewTransform(),
	}
}

// SetAspect updates the aspect ratio. Non-positive values are ignored.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// Projection returns the projection matrix.
func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Rig is the parallax group: the camera is its only child, so scroll moves
// the camera inside the rig while the cursor moves the rig itself.
type Rig struct {
	Transform Transform
	Camera    *PerspectiveCamera
}

// NewRig wraps a camera in a group at the origin.
func NewRig(cam *PerspectiveCamera) *Rig {
	return &Rig{Transform: NewTransform(), Camera: cam}
}

// CameraWorld returns the camera's world matrix.
func (r *Rig) CameraWorld() mgl32.Mat4 {
	return r.Transform.Matrix().Mul4(r.Camera.Transform.Matrix())
}

// View returns the view matrix (inverse camera world matrix).
func (r *Rig) View() mgl32.Mat4 {
	return r.CameraWorld().Inv()
}

// CameraPosition returns the camera's world-space position.
func (r *Rig) CameraPosition() mgl32.Vec3 {
	return r.CameraWorld().Col(3).Vec3()
}

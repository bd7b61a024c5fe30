// Package camera builds the view and projection transforms for an orbital camera
// circling a look-at point.
package camera

import (
	"mc-skin-renderer/internal/mathutil"
)

const (
	near = 0.1
	far  = 1000.0
)

// ProjectionKind selects how view space maps to clip space.
type ProjectionKind uint8

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// Projection describes the lens. FOV is the vertical field of view in degrees
// (perspective only); Aspect is the vertical half-extent in model units
// (orthographic only).
type Projection struct {
	Kind   ProjectionKind
	FOV    float64
	Aspect float64
}

// NewPerspective returns a perspective lens with the given vertical FOV in degrees.
func NewPerspective(fov float64) Projection {
	return Projection{Kind: Perspective, FOV: fov}
}

// NewOrthographic returns an orthographic lens showing aspect units above and below
// the look-at point.
func NewOrthographic(aspect float64) Projection {
	return Projection{Kind: Orthographic, Aspect: aspect}
}

// Camera orbits LookAt at Distance. With zero yaw and pitch it sits on the -Z side
// looking at the model's front. Angles are in degrees; positive pitch raises the
// camera so it looks down.
type Camera struct {
	LookAt     mathutil.Vec3
	Yaw        float64
	Pitch      float64
	Roll       float64
	Distance   float64
	Projection Projection
}

// Eye returns the camera position in model space.
func (c Camera) Eye() mathutil.Vec3 {
	orbit := mathutil.RotY(mathutil.Deg2Rad(c.Yaw)).Mul(mathutil.RotX(mathutil.Deg2Rad(c.Pitch)))
	return c.LookAt.Add(orbit.MulVec3(mathutil.Vec3{0, 0, -c.Distance}))
}

// View returns the model-to-view transform, roll applied about the view axis.
func (c Camera) View() mathutil.Mat4 {
	view := mathutil.LookAt(c.Eye(), c.LookAt, mathutil.Vec3{0, 1, 0})
	if c.Roll == 0 {
		return view
	}
	roll := mathutil.RotZ(mathutil.Deg2Rad(c.Roll)).Mat4()
	return mathutil.Mat4Mul(roll, view)
}

// ProjectionMatrix returns the view-to-clip transform for a viewport with the
// given width/height ratio.
func (c Camera) ProjectionMatrix(aspect float64) mathutil.Mat4 {
	switch c.Projection.Kind {
	case Orthographic:
		h := c.Projection.Aspect
		w := h * aspect
		return mathutil.Orthographic(-w, w, -h, h, near, far)
	default:
		return mathutil.Perspective(mathutil.Deg2Rad(c.Projection.FOV), aspect, near, far)
	}
}

// ViewProjection returns the combined model-to-clip transform for a w×h viewport.
func (c Camera) ViewProjection(w, h int) mathutil.Mat4 {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return mathutil.Mat4Mul(c.ProjectionMatrix(aspect), c.View())
}

package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// EulerDeg builds Rz @ Ry @ Rx from per-axis angles in degrees, so X is applied first.
func EulerDeg(r Vec3) Mat3 {
	return RotZ(Deg2Rad(r[2])).Mul(RotY(Deg2Rad(r[1]))).Mul(RotX(Deg2Rad(r[0])))
}

// PivotRotation rotates by the Euler angles r (degrees) about pivot.
func PivotRotation(r, pivot Vec3) Mat4 {
	if r == (Vec3{}) {
		return Mat4Identity()
	}
	rot := EulerDeg(r).Mat4()
	return Mat4Mul(Mat4Mul(Translation(pivot), rot), Translation(pivot.Scale(-1)))
}

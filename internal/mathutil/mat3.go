package mathutil

// Mat3 is a row-major 3×3 rotation matrix. Vectors are columns, so m.Mul(o)
// applies o first.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns m × o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 9; r += 3 {
		for c := 0; c < 3; c++ {
			out[r+c] = m[r]*o[c] + m[r+1]*o[3+c] + m[r+2]*o[6+c]
		}
	}
	return out
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Mat4 embeds the rotation in an affine 4×4 matrix with no translation.
func (m Mat3) Mat4() Mat4 {
	return FromMat3Translation(m, Vec3{})
}

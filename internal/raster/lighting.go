package raster

import "mc-skin-renderer/internal/mathutil"

// Sun is a directional light. Direction points from the model towards the light.
type Sun struct {
	Direction mathutil.Vec3
	Intensity float64
	Ambient   float64
}

// FlatSun lights every face fully, ignoring normals.
func FlatSun() Sun {
	return Sun{Ambient: 1}
}

// ComputeShade returns the light factor in [0,1] for a surface normal.
func (s Sun) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := normal.Normalize().Dot(s.Direction.Normalize())
	if ndl < 0 {
		ndl = 0
	}
	return mathutil.Clamp(s.Ambient+s.Intensity*ndl, 0, 1)
}

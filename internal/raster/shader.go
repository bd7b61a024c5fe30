package raster

import (
	"image"

	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/primitive"
)

// ShaderState is everything a draw call shares across its triangles. It is passed
// explicitly so independent draws never share mutable state.
type ShaderState struct {
	// Transform maps model space to clip space.
	Transform mathutil.Mat4
	Sun       Sun
	// Texture may be nil, in which case faces are drawn white.
	Texture *image.NRGBA
	Depth   DepthFunc
	// Texels with alpha at or below AlphaCutoff are discarded.
	AlphaCutoff uint8
}

// VertexOutput is a vertex in screen space: X and Y in pixels with Y down, Z the
// depth in [0,1] for points between the clip planes.
type VertexOutput struct {
	Position mathutil.Vec3
	UV       mathutil.Vec2
	Normal   mathutil.Vec3
}

// VertexShader projects v into a w×h viewport. It reports false for vertices at or
// behind the eye, where the perspective divide is undefined.
func VertexShader(v primitive.Vertex, s *ShaderState, w, h int) (VertexOutput, bool) {
	p := v.Position
	clip := s.Transform.MulVec4(mathutil.Vec4{p[0], p[1], p[2], 1})
	if clip[3] < mathutil.Epsilon {
		return VertexOutput{}, false
	}
	ndc := clip.XYZ().Scale(1 / clip[3])
	return VertexOutput{
		Position: mathutil.Vec3{
			(ndc[0] + 1) / 2 * float64(w),
			(1 - ndc[1]) / 2 * float64(h),
			(ndc[2] + 1) / 2,
		},
		UV:     v.UV,
		Normal: v.Normal,
	}, true
}

// FragmentShader shades one interpolated fragment. It reports false when the
// texel is transparent and the fragment must be discarded.
func FragmentShader(in VertexOutput, s *ShaderState) (r, g, b, a uint8, ok bool) {
	r, g, b, a = 255, 255, 255, 255
	if s.Texture != nil {
		r, g, b, a = SampleNearest(s.Texture, in.UV[0], in.UV[1])
		if a <= s.AlphaCutoff {
			return 0, 0, 0, 0, false
		}
	}

	shade := s.Sun.ComputeShade(in.Normal)
	return clamp255(float64(r) * shade), clamp255(float64(g) * shade), clamp255(float64(b) * shade), a, true
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

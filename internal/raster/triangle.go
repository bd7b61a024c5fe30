package raster

import (
	"math"

	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/primitive"
)

// Draw rasterizes every triangle of p into fb. Each index triple is taken in
// reverse order, which keeps the clockwise orientation once Y points down.
func Draw(fb *FrameBuffer, p primitive.Primitive, s *ShaderState) {
	verts := p.Vertices()
	idx := p.Indices()

	for t := 0; t+2 < len(idx); t += 3 {
		var tri [3]VertexOutput
		ok := true
		for k, i := range [3]uint16{idx[t+2], idx[t+1], idx[t]} {
			if int(i) >= len(verts) {
				ok = false
				break
			}
			if tri[k], ok = VertexShader(verts[i], s, fb.Width, fb.Height); !ok {
				break
			}
		}
		if ok {
			DrawTriangle(fb, tri, s)
		}
	}
}

// DrawTriangle rasterizes one screen-space triangle with depth test and shading.
// Pixels whose centre lies outside the triangle are left untouched; degenerate
// triangles draw nothing.
//
// This is the HOT PATH: no allocation in the pixel loop.
func DrawTriangle(fb *FrameBuffer, tri [3]VertexOutput, s *ShaderState) {
	a, b, c := tri[0], tri[1], tri[2]
	x0, y0, z0 := a.Position[0], a.Position[1], a.Position[2]
	x1, y1, z1 := b.Position[0], b.Position[1], b.Position[2]
	x2, y2, z2 := c.Position[0], c.Position[1], c.Position[2]

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if math.Abs(det) < mathutil.Epsilon || math.IsNaN(det) {
		return
	}
	invDet := 1.0 / det

	// Bounding box, clamped to the viewport
	minX := clampIndex(int(math.Floor(min(x0, x1, x2))), fb.Width+1)
	maxX := clampIndex(int(math.Ceil(max(x0, x1, x2))), fb.Width+1)
	minY := clampIndex(int(math.Floor(min(y0, y1, y2))), fb.Height+1)
	maxY := clampIndex(int(math.Ceil(max(y0, y1, y2))), fb.Height+1)

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy < maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx < maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			// Negated so NaN weights and depths are rejected too.
			if !(w0 >= 0 && w1 >= 0 && w2 >= 0) {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if !(z >= 0 && z <= 1) {
				continue
			}
			zIdx := rowOff + sx
			if !s.Depth.Pass(z, fb.Depth[zIdx]) {
				continue
			}

			frag := VertexOutput{
				Position: mathutil.Vec3{float64(sx) + 0.5, float64(sy) + 0.5, z},
				UV: mathutil.Vec2{
					w0*a.UV[0] + w1*b.UV[0] + w2*c.UV[0],
					w0*a.UV[1] + w1*b.UV[1] + w2*c.UV[1],
				},
				Normal: a.Normal.Scale(w0).Add(b.Normal.Scale(w1)).Add(c.Normal.Scale(w2)),
			}
			r, g, bl, al, ok := FragmentShader(frag, s)
			if !ok {
				continue
			}

			fb.Depth[zIdx] = z
			px := zIdx * 4
			fb.Color[px] = r
			fb.Color[px+1] = g
			fb.Color[px+2] = bl
			fb.Color[px+3] = al
		}
	}
}

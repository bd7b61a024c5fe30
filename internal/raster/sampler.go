package raster

import "image"

// SampleNearest returns the texel under (u, v) in [0,1] texture space. UVs outside
// the texture clamp to the edge. Accesses tex.Pix directly for performance.
func SampleNearest(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	x := clampIndex(int(u*float64(w)), w)
	y := clampIndex(int(v*float64(h)), h)

	i := y*tex.Stride + x*4
	p := tex.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

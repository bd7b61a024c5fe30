package raster

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/primitive"
)

func screenTri(z float64, pts ...[2]float64) [3]VertexOutput {
	var tri [3]VertexOutput
	for i, p := range pts {
		tri[i] = VertexOutput{Position: mathutil.Vec3{p[0], p[1], z}}
	}
	return tri
}

// patterned returns a buffer whose contents are easy to tell apart from writes.
func patterned(w, h int) *FrameBuffer {
	fb := NewFrameBuffer(w, h, DepthLess)
	for i := range fb.Color {
		fb.Color[i] = byte(i*7 + 3)
	}
	return fb
}

// edge is the 2D cross product of (b-a) and (p-a).
func edge(a, b, p [2]float64) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func TestTriangleCoverage(t *testing.T) {
	pts := [][2]float64{{2.3, 1.7}, {17.1, 4.2}, {6.6, 15.9}}
	fb := patterned(24, 20)
	before := slices.Clone(fb.Color)
	s := &ShaderState{Sun: FlatSun(), Depth: DepthLess}

	DrawTriangle(fb, screenTri(0.5, pts...), s)

	painted := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			e0, e1, e2 := edge(pts[0], pts[1], c), edge(pts[1], pts[2], c), edge(pts[2], pts[0], c)
			inside := (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0)

			i := y*fb.Width + x
			got := fb.Color[i*4 : i*4+4]
			if inside {
				painted++
				if !bytes.Equal(got, []byte{255, 255, 255, 255}) {
					t.Errorf("pixel (%d, %d) inside: got %v, want white", x, y, got)
				}
				if math.Abs(fb.Depth[i]-0.5) > 1e-9 {
					t.Errorf("pixel (%d, %d) depth got %f, want 0.5", x, y, fb.Depth[i])
				}
			} else {
				if !bytes.Equal(got, before[i*4:i*4+4]) {
					t.Errorf("pixel (%d, %d) outside was modified: got %v, want %v", x, y, got, before[i*4:i*4+4])
				}
				if fb.Depth[i] != 1 {
					t.Errorf("pixel (%d, %d) outside depth got %f, want 1", x, y, fb.Depth[i])
				}
			}
		}
	}
	if painted == 0 {
		t.Fatal("triangle painted nothing")
	}
}

func TestDegenerateTriangleLeavesBuffers(t *testing.T) {
	tris := map[string][3]VertexOutput{
		"collinear":  screenTri(0.5, [2]float64{1, 1}, [2]float64{5, 5}, [2]float64{9, 9}),
		"coincident": screenTri(0.5, [2]float64{4, 4}, [2]float64{4, 4}, [2]float64{4, 4}),
	}
	for name, tri := range tris {
		t.Run(name, func(t *testing.T) {
			fb := patterned(12, 12)
			colors := slices.Clone(fb.Color)
			depth := slices.Clone(fb.Depth)

			DrawTriangle(fb, tri, &ShaderState{Sun: FlatSun()})

			if !bytes.Equal(fb.Color, colors) {
				t.Error("color buffer changed")
			}
			if !slices.Equal(fb.Depth, depth) {
				t.Error("depth buffer changed")
			}
		})
	}
}

func TestTriangleClampedToViewport(t *testing.T) {
	fb := NewFrameBuffer(16, 16, DepthLess)
	tri := screenTri(0.5, [2]float64{-50, -50}, [2]float64{100, -50}, [2]float64{-50, 100})

	DrawTriangle(fb, tri, &ShaderState{Sun: FlatSun()})

	for i := 0; i < 16*16; i++ {
		if fb.Color[i*4+3] != 255 {
			t.Fatalf("pixel %d not painted", i)
		}
	}
}

func TestDepthOutsideRangeDiscarded(t *testing.T) {
	fb := NewFrameBuffer(8, 8, DepthAlways)
	tri := screenTri(1.5, [2]float64{0, 0}, [2]float64{8, 0}, [2]float64{0, 8})

	DrawTriangle(fb, tri, &ShaderState{Sun: FlatSun(), Depth: DepthAlways})

	for _, v := range fb.Color {
		if v != 0 {
			t.Fatal("fragment beyond the far plane was written")
		}
	}
}

func TestNonFiniteDepthDiscarded(t *testing.T) {
	depths := map[string]float64{"nan": math.NaN(), "inf": math.Inf(1)}
	for name, far := range depths {
		t.Run(name, func(t *testing.T) {
			fb := patterned(8, 8)
			colors := slices.Clone(fb.Color)
			tri := screenTri(0.5, [2]float64{0, 0}, [2]float64{8, 0}, [2]float64{0, 8})
			tri[2].Position[2] = far

			DrawTriangle(fb, tri, &ShaderState{Sun: FlatSun(), Depth: DepthAlways})

			for i, d := range fb.Depth {
				if math.IsNaN(d) {
					t.Fatalf("depth %d is NaN", i)
				}
			}
			if name == "nan" && !bytes.Equal(fb.Color, colors) {
				t.Error("fragments with NaN depth were written")
			}
		})
	}
}

func TestDepthFuncs(t *testing.T) {
	tests := []struct {
		fn        DepthFunc
		z, stored float64
		want      bool
	}{
		{DepthLess, 0.2, 0.5, true},
		{DepthLess, 0.5, 0.5, false},
		{DepthLessEqual, 0.5, 0.5, true},
		{DepthGreater, 0.5, 0.5, false},
		{DepthGreater, 0.7, 0.5, true},
		{DepthGreaterEqual, 0.5, 0.5, true},
		{DepthGreaterEqual, 0.2, 0.5, false},
		{DepthAlways, 0.9, 0.1, true},
	}
	for _, tt := range tests {
		if got := tt.fn.Pass(tt.z, tt.stored); got != tt.want {
			t.Errorf("%s.Pass(%f, %f): got %v, want %v", tt.fn, tt.z, tt.stored, got, tt.want)
		}
	}
	if DepthLess.ClearValue() != 1 || DepthGreaterEqual.ClearValue() != 0 {
		t.Error("unexpected clear values")
	}
}

func TestParseDepthFunc(t *testing.T) {
	got, err := ParseDepthFunc("Greater-Equal")
	if err != nil || got != DepthGreaterEqual {
		t.Errorf("ParseDepthFunc: got %s, %v", got, err)
	}
	if _, err := ParseDepthFunc("sideways"); err == nil {
		t.Error("expected error for unknown depth func")
	}
}

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

func TestDepthOrdering(t *testing.T) {
	nearTri := screenTri(0.2, [2]float64{0, 0}, [2]float64{8, 0}, [2]float64{0, 8})
	farTri := screenTri(0.8, [2]float64{0, 0}, [2]float64{8, 0}, [2]float64{0, 8})
	red := solid(color.NRGBA{255, 0, 0, 255})
	blue := solid(color.NRGBA{0, 0, 255, 255})

	tests := []struct {
		fn      DepthFunc
		wantRed bool
	}{
		{DepthLess, true},
		{DepthGreaterEqual, false},
	}
	for _, tt := range tests {
		fb := NewFrameBuffer(8, 8, tt.fn)
		DrawTriangle(fb, nearTri, &ShaderState{Sun: FlatSun(), Texture: red, Depth: tt.fn})
		DrawTriangle(fb, farTri, &ShaderState{Sun: FlatSun(), Texture: blue, Depth: tt.fn})

		gotRed := fb.Color[0] == 255 && fb.Color[2] == 0
		if gotRed != tt.wantRed {
			t.Errorf("%s: pixel 0 got %v, want red=%v", tt.fn, fb.Color[:4], tt.wantRed)
		}
	}
}

func TestTransparentTexelDiscarded(t *testing.T) {
	fb := patterned(8, 8)
	before := slices.Clone(fb.Color)
	tri := screenTri(0.5, [2]float64{0, 0}, [2]float64{8, 0}, [2]float64{0, 8})

	DrawTriangle(fb, tri, &ShaderState{Sun: FlatSun(), Texture: solid(color.NRGBA{}), Depth: DepthLess})

	if !bytes.Equal(fb.Color, before) {
		t.Error("transparent texel was written")
	}
	if fb.Depth[0] != 1 {
		t.Errorf("discarded fragment wrote depth %f", fb.Depth[0])
	}
}

func TestVertexShader(t *testing.T) {
	s := &ShaderState{Transform: mathutil.Mat4Identity()}
	out, ok := VertexShader(primitive.Vertex{Position: mathutil.Vec3{-1, 1, -1}}, s, 64, 32)
	if !ok {
		t.Fatal("vertex rejected")
	}
	if out.Position != (mathutil.Vec3{0, 0, 0}) {
		t.Errorf("top-left near corner got %v, want origin", out.Position)
	}
	out, _ = VertexShader(primitive.Vertex{}, s, 64, 32)
	if out.Position != (mathutil.Vec3{32, 16, 0.5}) {
		t.Errorf("centre got %v, want (32, 16, 0.5)", out.Position)
	}

	behind := &ShaderState{Transform: mathutil.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}}
	if _, ok := VertexShader(primitive.Vertex{}, behind, 64, 32); ok {
		t.Error("vertex with w=0 should be rejected")
	}
}

func TestDrawQuadSamplesTexture(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	tex.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	tex.SetNRGBA(1, 1, color.NRGBA{255, 255, 0, 255})

	q := primitive.NewQuad(
		mathutil.Vec3{-1, 1, 0}, mathutil.Vec3{1, 1, 0},
		mathutil.Vec3{-1, -1, 0}, mathutil.Vec3{1, -1, 0},
		mathutil.Vec2{0, 0}, mathutil.Vec2{1, 1},
	)
	fb := NewFrameBuffer(4, 4, DepthLess)
	Draw(fb, q, &ShaderState{Transform: mathutil.Mat4Identity(), Sun: FlatSun(), Texture: tex, Depth: DepthLess})

	img := fb.Image()
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{255, 0, 0, 255}},
		{3, 0, color.NRGBA{0, 255, 0, 255}},
		{0, 3, color.NRGBA{0, 0, 255, 255}},
		{3, 3, color.NRGBA{255, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	for i, d := range fb.Depth {
		if math.Abs(d-0.5) > 1e-9 {
			t.Fatalf("pixel %d depth got %f, want 0.5", i, d)
		}
	}
}

func TestSunShade(t *testing.T) {
	s := Sun{Direction: mathutil.Vec3{0, 0, -1}, Intensity: 1, Ambient: 0.5}
	tests := []struct {
		normal mathutil.Vec3
		want   float64
	}{
		{mathutil.Vec3{0, 0, -1}, 1},
		{mathutil.Vec3{0, 0, 1}, 0.5},
		{mathutil.Vec3{1, 0, 0}, 0.5},
	}
	for _, tt := range tests {
		if got := s.ComputeShade(tt.normal); got != tt.want {
			t.Errorf("shade(%v): got %f, want %f", tt.normal, got, tt.want)
		}
	}
	if got := FlatSun().ComputeShade(mathutil.Vec3{0, 1, 0}); got != 1 {
		t.Errorf("flat sun shade got %f, want 1", got)
	}
}

func TestSampleNearestClamps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{10, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{20, 0, 0, 255})

	if r, _, _, _ := SampleNearest(tex, -0.5, 0); r != 10 {
		t.Errorf("u<0: got %d, want 10", r)
	}
	if r, _, _, _ := SampleNearest(tex, 1.0, 1.0); r != 20 {
		t.Errorf("u=1: got %d, want 20", r)
	}
}

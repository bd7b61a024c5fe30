package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func filled(w, h int, r image.Rectangle, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAlphaBounds(t *testing.T) {
	img := filled(20, 20, image.Rect(3, 5, 9, 12), color.NRGBA{R: 255, A: 255})
	if got, want := AlphaBounds(img), image.Rect(3, 5, 9, 12); got != want {
		t.Errorf("AlphaBounds = %v, want %v", got, want)
	}
	if got := AlphaBounds(image.NewNRGBA(image.Rect(0, 0, 4, 4))); !got.Empty() {
		t.Errorf("AlphaBounds(transparent) = %v, want empty", got)
	}
}

func TestCropAndCenter(t *testing.T) {
	img := filled(100, 100, image.Rect(0, 0, 10, 20), color.NRGBA{G: 255, A: 255})
	out := CropAndCenter(img, 64, 64, 0.5)
	if b := out.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}

	// The 1:2 box fills half the height: 16x32, centered.
	got := AlphaBounds(out)
	if got.Dy() < 31 || got.Dy() > 33 || got.Dx() < 15 || got.Dx() > 17 {
		t.Errorf("content bounds = %v, want about 16x32", got)
	}
	if c := out.NRGBAAt(32, 32); c.G < 250 || c.A < 250 {
		t.Errorf("center = %v, want opaque green", c)
	}
	if c := out.NRGBAAt(1, 1); c.A != 0 {
		t.Errorf("corner = %v, want transparent", c)
	}
}

func TestCropAndCenterEmpty(t *testing.T) {
	out := CropAndCenter(image.NewNRGBA(image.Rect(0, 0, 8, 8)), 16, 32, 0.9)
	if b := out.Bounds(); b.Dx() != 16 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 16x32", b)
	}
	if !AlphaBounds(out).Empty() {
		t.Error("empty input should give a transparent canvas")
	}
}

func TestScaleNRGBA(t *testing.T) {
	img := filled(8, 8, image.Rect(0, 0, 8, 8), color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	out := scaleNRGBA(img, 4, 4)
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 4x4", b)
	}
	c := out.NRGBAAt(1, 1)
	if c.A != 255 || c.R < 198 || c.R > 202 || c.G < 98 || c.G > 102 {
		t.Errorf("pixel = %v, want about {200 100 50 255}", c)
	}
}

func TestScaleNRGBANoHalo(t *testing.T) {
	// Transparent texels carry black color; a straight-alpha filter would
	// darken the opaque edge.
	img := filled(8, 8, image.Rect(0, 0, 4, 8), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	out := scaleNRGBA(img, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := out.NRGBAAt(x, y)
			if c.A > 8 && c.R < 240 {
				t.Errorf("pixel (%d,%d) = %v, edge darkened", x, y, c)
			}
		}
	}
}

package texture

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/uv"
)

// IsLegacySkin reports whether img uses the old 64×32 layout (or an HD multiple).
func IsLegacySkin(img *image.NRGBA) bool {
	b := img.Bounds()
	return b.Dx() >= 64 && b.Dx() == 2*b.Dy()
}

// DetectSlim guesses the arm variant of a modern skin: slim skins leave the
// outer columns of the right arm's back face transparent.
func DetectSlim(img *image.NRGBA) bool {
	b := img.Bounds()
	if b.Dx() < 64 || b.Dx() != b.Dy() {
		return false
	}
	s := b.Dx() / 64
	return img.NRGBAAt(b.Min.X+54*s, b.Min.Y+20*s).A == 0
}

// ProcessSkin returns a render-ready copy of a skin. Legacy skins are upgraded
// to the 64×64 layout and the base (non-overlay) regions are made opaque.
// The input is never modified.
func ProcessSkin(src *image.NRGBA, slim bool) *image.NRGBA {
	var skin *image.NRGBA
	if IsLegacySkin(src) {
		skin = UpgradeLegacySkin(src)
	} else {
		skin = image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
		xdraw.Copy(skin, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	}
	if skin.Bounds().Dx() >= 64 {
		stripBaseAlpha(skin, slim)
	}
	return skin
}

// UpgradeLegacySkin converts a 64×32 skin to 64×64. The left limbs, which the old
// layout lacks, are mirrored from the right limbs. A fully opaque hat region is
// cleared, since old skins often filled it with a solid color.
func UpgradeLegacySkin(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	s := b.Dx() / 64
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dx()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)

	limb := [3]int{4, 12, 4}
	mirrorLimb(dst, uv.Box(4, 20, limb), uv.Box(20, 52, limb), s)
	mirrorLimb(dst, uv.Box(44, 20, limb), uv.Box(36, 52, limb), s)

	hat := image.Rect(32*s, 0, 64*s, 16*s)
	if isOpaque(dst, hat) {
		clearRect(dst, hat)
	}
	return dst
}

// mirrorLimb copies a limb net onto another, flipping every face horizontally and
// swapping the east and west faces, which turns a right limb into a left one.
func mirrorLimb(img *image.NRGBA, from, to uv.CubeFaceUVs, s int) {
	pairs := [][2]uv.FaceUV{
		{from.North, to.North},
		{from.South, to.South},
		{from.West, to.East},
		{from.East, to.West},
		{from.Up, to.Up},
		{from.Down, to.Down},
	}
	for _, p := range pairs {
		copyMirrored(img, faceRect(p[0], s), faceRect(p[1], s))
	}
}

func faceRect(f uv.FaceUV, s int) image.Rectangle {
	return image.Rect(int(f.TopLeft.U)*s, int(f.TopLeft.V)*s, int(f.BottomRight.U)*s, int(f.BottomRight.V)*s)
}

func copyMirrored(img *image.NRGBA, src, dst image.Rectangle) {
	w := src.Dx()
	for y := 0; y < src.Dy(); y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(dst.Min.X+w-1-x, dst.Min.Y+y, img.NRGBAAt(src.Min.X+x, src.Min.Y+y))
		}
	}
}

func isOpaque(img *image.NRGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != 255 {
				return false
			}
		}
	}
	return true
}

func clearRect(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := img.PixOffset(x, y)
			clear(img.Pix[i : i+4])
		}
	}
}

// stripBaseAlpha forces every base-part face to full opacity.
func stripBaseAlpha(img *image.NRGBA, slim bool) {
	s := img.Bounds().Dx() / 64
	for _, b := range parts.BaseParts {
		part, err := parts.BasePart(b, slim)
		if err != nil {
			continue
		}
		for _, f := range part.FaceUVs().Faces() {
			r := faceRect(f, s).Intersect(img.Bounds())
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					img.Pix[img.PixOffset(x, y)+3] = 255
				}
			}
		}
	}
}

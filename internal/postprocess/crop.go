package postprocess

import (
	"image"
	"math"
)

// CropAndCenter crops to the bounding box of non-transparent pixels, then
// scales the model to fillRatio of a w×h canvas and centers it.
func CropAndCenter(img *image.NRGBA, w, h int, fillRatio float64) *image.NRGBA {
	return scaleAndCenter(cropAlpha(img), w, h, fillRatio)
}

// AlphaBounds is the smallest rectangle holding every non-transparent pixel.
// It is empty for a fully transparent image.
func AlphaBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func cropAlpha(img *image.NRGBA) *image.NRGBA {
	r := AlphaBounds(img)
	cropped := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		srcOff := img.PixOffset(r.Min.X, r.Min.Y+y)
		dstOff := y * cropped.Stride
		copy(cropped.Pix[dstOff:dstOff+r.Dx()*4], img.Pix[srcOff:srcOff+r.Dx()*4])
	}
	return cropped
}

func scaleAndCenter(img *image.NRGBA, canvasW, canvasH int, fillRatio float64) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return canvas
	}

	// Scale to fit within fillRatio of the canvas
	scaleF := math.Min(float64(canvasW)*fillRatio/float64(srcW), float64(canvasH)*fillRatio/float64(srcH))
	newW := max(int(float64(srcW)*scaleF+0.5), 1)
	newH := max(int(float64(srcH)*scaleF+0.5), 1)

	scaled := scaleNRGBA(img, newW, newH)

	// Center on canvas, clipping when fillRatio exceeds 1
	offX := (canvasW - newW) / 2
	offY := (canvasH - newH) / 2
	for y := 0; y < newH; y++ {
		cy := offY + y
		if cy < 0 || cy >= canvasH {
			continue
		}
		for x := 0; x < newW; x++ {
			cx := offX + x
			if cx < 0 || cx >= canvasW {
				continue
			}
			si := scaled.PixOffset(x, y)
			di := canvas.PixOffset(cx, cy)
			copy(canvas.Pix[di:di+4], scaled.Pix[si:si+4])
		}
	}
	return canvas
}

package raster

import "image"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // depth per pixel, len = W*H
}

// NewFrameBuffer allocates a transparent color buffer and a depth buffer cleared
// for clear.
func NewFrameBuffer(w, h int, clear DepthFunc) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  make([]float64, n),
	}
	fb.Clear(clear.ClearValue())
	return fb
}

// Clear resets the color buffer to transparent black and every depth to depth.
func (fb *FrameBuffer) Clear(depth float64) {
	clear(fb.Color)
	for i := range fb.Depth {
		fb.Depth[i] = depth
	}
}

// Image copies the color buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

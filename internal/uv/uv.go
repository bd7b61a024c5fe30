// Package uv computes box-UV texture regions for cuboid body parts.
//
// Coordinates are texel offsets into the source texture (typically a 64×64 or
// 64×32 skin sheet). Normalisation to [0,1] happens when a primitive is built.
package uv

// Coord is a texel coordinate.
type Coord struct {
	U, V float64
}

// FaceUV is the texture rectangle of one face plus its orientation.
//
// TopLeft and BottomRight always describe the canonical, un-rotated rectangle.
// Rotation counts clockwise quarter turns and is kept modulo 4.
type FaceUV struct {
	TopLeft     Coord
	BottomRight Coord
	Rotation    uint8
	FlippedH    bool
	FlippedV    bool
}

// FromPosAndSize returns the rectangle starting at (x, y) spanning w×h texels.
func FromPosAndSize(x, y, w, h int) FaceUV {
	return FaceUV{
		TopLeft:     Coord{float64(x), float64(y)},
		BottomRight: Coord{float64(x + w), float64(y + h)},
	}
}

// Width returns the rectangle width in texels.
func (f FaceUV) Width() float64 {
	return f.BottomRight.U - f.TopLeft.U
}

// Height returns the rectangle height in texels.
func (f FaceUV) Height() float64 {
	return f.BottomRight.V - f.TopLeft.V
}

// Offset returns the face moved by (dx, dy) texels, orientation unchanged.
func (f FaceUV) Offset(dx, dy float64) FaceUV {
	f.TopLeft.U += dx
	f.TopLeft.V += dy
	f.BottomRight.U += dx
	f.BottomRight.V += dy
	return f
}

// RotateCW turns the face a quarter turn clockwise. The rectangle itself is
// left alone; Corners applies the accumulated turns, so each call moves the
// corners Corners reports by one clockwise step.
func (f FaceUV) RotateCW() FaceUV {
	f.Rotation = (f.Rotation + 1) % 4
	return f
}

func (f FaceUV) FlipHorizontally() FaceUV {
	f.FlippedH = !f.FlippedH
	return f
}

func (f FaceUV) FlipVertically() FaceUV {
	f.FlippedV = !f.FlippedV
	return f
}

// Normalize brings a rotated face back to zero rotations and composes the stored
// flips into the rectangle corners, which is the form face serialisers consume.
// It also returns the rotation, in degrees, the serialised face must carry.
//
// A horizontal flip on a previously rotated face lands on the V axis because the
// rectangle has been turned a quarter relative to the destination face.
func (f FaceUV) Normalize() (FaceUV, int) {
	rotated := f.Rotation%4 > 0
	degrees := 0
	out := f
	if rotated {
		degrees = int((f.Rotation%4+2)%4) * 90
		for i := uint8(0); i < 4-f.Rotation%4; i++ {
			out = out.RotateCW()
		}
	}
	out.FlippedH, out.FlippedV = false, false

	if f.FlippedV {
		out = out.swapV()
	}
	if f.FlippedH {
		if rotated {
			out = out.swapV()
		} else {
			out = out.swapU()
		}
	}
	return out, degrees
}

func (f FaceUV) swapU() FaceUV {
	f.TopLeft.U, f.BottomRight.U = f.BottomRight.U, f.TopLeft.U
	return f
}

func (f FaceUV) swapV() FaceUV {
	f.TopLeft.V, f.BottomRight.V = f.BottomRight.V, f.TopLeft.V
	return f
}

// Corners returns the texel coordinates shown at the face's top-left, top-right,
// bottom-left and bottom-right corners. Rotation is applied before the flips.
func (f FaceUV) Corners() (tl, tr, bl, br Coord) {
	tl = f.TopLeft
	tr = Coord{f.BottomRight.U, f.TopLeft.V}
	bl = Coord{f.TopLeft.U, f.BottomRight.V}
	br = f.BottomRight

	for i := uint8(0); i < f.Rotation%4; i++ {
		tl, tr, br, bl = bl, tl, tr, br
	}
	if f.FlippedH {
		tl, tr = tr, tl
		bl, br = br, bl
	}
	if f.FlippedV {
		tl, bl = bl, tl
		tr, br = br, tr
	}
	return tl, tr, bl, br
}

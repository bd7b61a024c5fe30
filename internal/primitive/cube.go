package primitive

import (
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/uv"
)

// Cube is six quads, one per face, in uv.AllFaces order.
type Cube struct {
	Faces [6]Quad
}

// NewCube builds the faces of the box at position with the given size, posed by
// transform. Texel UVs are divided by texSize to land in [0,1].
func NewCube(position, size mathutil.Vec3, transform mathutil.Mat4, faces uv.CubeFaceUVs, texSize mathutil.Vec2) Cube {
	var c Cube
	for i, f := range uv.AllFaces {
		tl, tr, bl, br := FaceCorners(position, size, f)
		c.Faces[i] = NewQuadUVs(
			transform.MulPoint(tl), transform.MulPoint(tr),
			transform.MulPoint(bl), transform.MulPoint(br),
			normalizedCorners(faces.Face(f), texSize),
		)
	}
	return c
}

// FaceCorners returns the TL, TR, BL, BR corners of one face of an axis-aligned
// box, as seen by a viewer standing outside that face with +Y up. Up is viewed
// with north at the bottom and Down with north at the top.
func FaceCorners(position, size mathutil.Vec3, f uv.Face) (tl, tr, bl, br mathutil.Vec3) {
	x0, y0, z0 := position[0], position[1], position[2]
	x1, y1, z1 := x0+size[0], y0+size[1], z0+size[2]

	switch f {
	case uv.North:
		return mathutil.Vec3{x1, y1, z0}, mathutil.Vec3{x0, y1, z0}, mathutil.Vec3{x1, y0, z0}, mathutil.Vec3{x0, y0, z0}
	case uv.South:
		return mathutil.Vec3{x0, y1, z1}, mathutil.Vec3{x1, y1, z1}, mathutil.Vec3{x0, y0, z1}, mathutil.Vec3{x1, y0, z1}
	case uv.East:
		return mathutil.Vec3{x1, y1, z1}, mathutil.Vec3{x1, y1, z0}, mathutil.Vec3{x1, y0, z1}, mathutil.Vec3{x1, y0, z0}
	case uv.West:
		return mathutil.Vec3{x0, y1, z0}, mathutil.Vec3{x0, y1, z1}, mathutil.Vec3{x0, y0, z0}, mathutil.Vec3{x0, y0, z1}
	case uv.Up:
		return mathutil.Vec3{x1, y1, z1}, mathutil.Vec3{x0, y1, z1}, mathutil.Vec3{x1, y1, z0}, mathutil.Vec3{x0, y1, z0}
	case uv.Down:
		return mathutil.Vec3{x1, y0, z0}, mathutil.Vec3{x0, y0, z0}, mathutil.Vec3{x1, y0, z1}, mathutil.Vec3{x0, y0, z1}
	}
	panic("primitive: unknown face " + f.String())
}

func normalizedCorners(f uv.FaceUV, texSize mathutil.Vec2) [4]mathutil.Vec2 {
	tl, tr, bl, br := f.Corners()
	var out [4]mathutil.Vec2
	for i, c := range [4]uv.Coord{tl, tr, bl, br} {
		out[i] = mathutil.Vec2{c.U / texSize[0], c.V / texSize[1]}
	}
	return out
}

func (c Cube) Vertices() []Vertex {
	out := make([]Vertex, 0, 24)
	for _, q := range c.Faces {
		out = append(out, q.Vertices()...)
	}
	return out
}

func (c Cube) Indices() []uint16 {
	out := make([]uint16, 0, 36)
	for i := range c.Faces {
		base := uint16(i * 4)
		for _, idx := range quadIndices {
			out = append(out, base+idx)
		}
	}
	return out
}

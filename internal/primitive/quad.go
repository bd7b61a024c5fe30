package primitive

import "mc-skin-renderer/internal/mathutil"

// quadIndices tiles TL, TR, BL, BR with (BL, TL, BR) and (TL, TR, BR).
var quadIndices = [6]uint16{2, 0, 3, 0, 1, 3}

// Quad is a flat four-corner face.
type Quad struct {
	TopLeft     Vertex
	TopRight    Vertex
	BottomLeft  Vertex
	BottomRight Vertex
}

// NewQuad builds a quad whose normal is derived from its edges. For corners laid
// out as seen from outside the face, the normal points outward.
func NewQuad(tl, tr, bl, br mathutil.Vec3, tlUV, brUV mathutil.Vec2) Quad {
	return NewQuadWithNormal(tl, tr, bl, br, tlUV, brUV, faceNormal(tl, tr, bl))
}

// NewQuadWithNormal builds a quad with an explicit normal. The inner corners take
// their U and V independently from the two given UV corners.
func NewQuadWithNormal(tl, tr, bl, br mathutil.Vec3, tlUV, brUV mathutil.Vec2, normal mathutil.Vec3) Quad {
	return Quad{
		TopLeft:     Vertex{Position: tl, UV: tlUV, Normal: normal},
		TopRight:    Vertex{Position: tr, UV: mathutil.Vec2{brUV[0], tlUV[1]}, Normal: normal},
		BottomLeft:  Vertex{Position: bl, UV: mathutil.Vec2{tlUV[0], brUV[1]}, Normal: normal},
		BottomRight: Vertex{Position: br, UV: brUV, Normal: normal},
	}
}

// NewQuadUVs builds a quad with one UV per corner, in TL, TR, BL, BR order.
// Rotated or flipped texture regions need this form.
func NewQuadUVs(tl, tr, bl, br mathutil.Vec3, uvs [4]mathutil.Vec2) Quad {
	n := faceNormal(tl, tr, bl)
	return Quad{
		TopLeft:     Vertex{Position: tl, UV: uvs[0], Normal: n},
		TopRight:    Vertex{Position: tr, UV: uvs[1], Normal: n},
		BottomLeft:  Vertex{Position: bl, UV: uvs[2], Normal: n},
		BottomRight: Vertex{Position: br, UV: uvs[3], Normal: n},
	}
}

func faceNormal(tl, tr, bl mathutil.Vec3) mathutil.Vec3 {
	return bl.Sub(tl).Cross(tr.Sub(tl)).Normalize()
}

func (q Quad) Vertices() []Vertex {
	return []Vertex{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight}
}

func (q Quad) Indices() []uint16 {
	idx := quadIndices
	return idx[:]
}

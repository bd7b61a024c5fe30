package primitive

import (
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/uv"
)

// FromPart builds the posed geometry of a part. texW and texH are the size of
// the texture the part samples, used to normalise its texel UVs.
//
// A quad part with zero height lies flat and faces up; any other quad is an
// upright face looking north.
func FromPart(p parts.Part, texW, texH int) Primitive {
	texSize := mathutil.Vec2{float64(texW), float64(texH)}
	transform := p.ModelTransform()

	switch p.Kind() {
	case parts.KindCube:
		return NewCube(p.Position(), p.Size(), transform, p.FaceUVs(), texSize)
	case parts.KindQuad:
		face := uv.North
		if p.Size()[1] == 0 {
			face = uv.Up
		}
		tl, tr, bl, br := FaceCorners(p.Position(), p.Size(), face)
		return NewQuadUVs(
			transform.MulPoint(tl), transform.MulPoint(tr),
			transform.MulPoint(bl), transform.MulPoint(br),
			normalizedCorners(p.FaceUV(), texSize),
		)
	}
	panic("primitive: unknown part kind " + p.Kind().String())
}

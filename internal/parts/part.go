// Package parts builds the textured primitives that make up a player model.
package parts

import (
	"fmt"

	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/uv"
)

// Kind tags the primitive shape of a Part.
type Kind uint8

const (
	KindCube Kind = iota
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindQuad:
		return "quad"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Anchor is the model-space pivot a part rotates about.
type Anchor struct {
	Position mathutil.Vec3
}

// Part is a cube or a flat quad of the player model.
//
// Position is the minimum corner, Size the extent along each axis and Rotation
// per-axis Euler angles in degrees. Cubes carry six face UVs, quads a single one.
// Parts are plain values: copying one yields an independent part.
type Part struct {
	kind      Kind
	position  mathutil.Vec3
	size      mathutil.Vec3
	rotation  mathutil.Vec3
	faces     uv.CubeFaceUVs
	face      uv.FaceUV
	texture   TextureType
	anchor    Anchor
	hasAnchor bool
}

// NewCube returns a cube part with no rotation and no anchor.
func NewCube(texture TextureType, pos [3]int, size [3]int, faces uv.CubeFaceUVs) Part {
	return Part{
		kind:     KindCube,
		position: mathutil.Vec3{float64(pos[0]), float64(pos[1]), float64(pos[2])},
		size:     mathutil.Vec3{float64(size[0]), float64(size[1]), float64(size[2])},
		faces:    faces,
		texture:  texture,
	}
}

// NewQuad returns a flat quad part. A zero Y size makes it horizontal.
func NewQuad(texture TextureType, pos, size mathutil.Vec3, face uv.FaceUV) Part {
	return Part{
		kind:     KindQuad,
		position: pos,
		size:     size,
		face:     face,
		texture:  texture,
	}
}

func (p Part) Kind() Kind { return p.kind }

func (p Part) Position() mathutil.Vec3 { return p.position }

func (p Part) Size() mathutil.Vec3 { return p.size }

func (p Part) Rotation() mathutil.Vec3 { return p.rotation }

func (p *Part) SetRotation(r mathutil.Vec3) { p.rotation = r }

// SetRotationZ replaces only the Z rotation.
func (p *Part) SetRotationZ(deg float64) { p.rotation[2] = deg }

func (p Part) Texture() TextureType { return p.texture }

func (p *Part) SetTexture(t TextureType) { p.texture = t }

// Anchor returns the rotation pivot, if any.
func (p Part) Anchor() (Anchor, bool) { return p.anchor, p.hasAnchor }

func (p *Part) SetAnchor(a Anchor) {
	p.anchor = a
	p.hasAnchor = true
}

func (p *Part) ClearAnchor() {
	p.anchor = Anchor{}
	p.hasAnchor = false
}

// FaceUVs returns the six face UVs of a cube. It panics for quads.
func (p Part) FaceUVs() uv.CubeFaceUVs {
	if p.kind != KindCube {
		panic("parts: FaceUVs on " + p.kind.String())
	}
	return p.faces
}

// SetFaceUVs replaces the face UVs of a cube. It panics for quads.
func (p *Part) SetFaceUVs(f uv.CubeFaceUVs) {
	if p.kind != KindCube {
		panic("parts: SetFaceUVs on " + p.kind.String())
	}
	p.faces = f
}

// FaceUV returns the UV of a quad. It panics for cubes.
func (p Part) FaceUV() uv.FaceUV {
	if p.kind != KindQuad {
		panic("parts: FaceUV on " + p.kind.String())
	}
	return p.face
}

// Expand grows the part by amount on each side of every axis.
// Cubes keep their center; quads keep their position.
func (p Part) Expand(amount mathutil.Vec3) Part {
	grow := amount.Scale(2)
	switch p.kind {
	case KindCube:
		p.size = p.size.Add(grow)
		p.position = p.position.Sub(amount)
	case KindQuad:
		p.size = p.size.Add(grow)
	default:
		panic("parts: Expand on " + p.kind.String())
	}
	return p
}

// ExpandSplat expands every axis by the same amount.
func (p Part) ExpandSplat(amount float64) Part {
	return p.Expand(mathutil.Splat(amount))
}

// Center returns the midpoint of the part's box.
func (p Part) Center() mathutil.Vec3 {
	return p.position.Add(p.size.Scale(0.5))
}

// Pivot is the point rotation happens about: the anchor, or the part's origin.
func (p Part) Pivot() mathutil.Vec3 {
	if p.hasAnchor {
		return p.anchor.Position
	}
	return p.position
}

// ModelTransform maps the part's unrotated model-space corners to their posed position.
func (p Part) ModelTransform() mathutil.Mat4 {
	return mathutil.PivotRotation(p.rotation, p.Pivot())
}

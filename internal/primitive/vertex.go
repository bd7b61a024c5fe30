// Package primitive turns parts into drawable triangle geometry.
package primitive

import "mc-skin-renderer/internal/mathutil"

// Vertex is one corner of a primitive face.
type Vertex struct {
	Position mathutil.Vec3
	UV       mathutil.Vec2
	Normal   mathutil.Vec3
}

// Primitive is anything that can be drawn as an indexed triangle list.
// Every three indices form one clockwise triangle seen from outside.
type Primitive interface {
	Vertices() []Vertex
	Indices() []uint16
}

package primitive

import "fmt"

// Mesh is a flattened vertex and index buffer.
type Mesh struct {
	Verts []Vertex
	Idx   []uint16
}

func (m *Mesh) Vertices() []Vertex { return m.Verts }

func (m *Mesh) Indices() []uint16 { return m.Idx }

// Append adds p to the mesh, rebasing its indices. It fails once the vertex count
// no longer fits 16-bit indices.
func (m *Mesh) Append(p Primitive) error {
	verts := p.Vertices()
	base := len(m.Verts)
	if base+len(verts) > 1<<16 {
		return fmt.Errorf("primitive: mesh exceeds %d vertices", 1<<16)
	}
	m.Verts = append(m.Verts, verts...)
	for _, i := range p.Indices() {
		m.Idx = append(m.Idx, uint16(base)+i)
	}
	return nil
}

// Merge flattens primitives into one mesh.
func Merge(prims ...Primitive) (*Mesh, error) {
	m := &Mesh{}
	for _, p := range prims {
		if err := m.Append(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

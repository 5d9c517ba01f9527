package obj

import (
	"github.com/philipparndt/gocaustics/pkg/geometry"
)

// Mesh holds the vertex positions and surface normals of a lens surface.
// Vertices and Normals are parallel sequences: Normals[i] is the unit
// surface normal at Vertices[i].
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Normals  []geometry.Vector3
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Normals:  make([]geometry.Vector3, 0),
	}
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

package optics

import (
	"fmt"

	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/obj"
)

// Field holds a lens mesh together with its refracted rays. The rays
// are computed once at construction, since eta and the beam are fixed
// for a session; only the receiver-plane distance varies afterwards.
//
// A Field never mutates after construction and is safe to share
// between goroutines.
type Field struct {
	vertices []geometry.Vector3
	rays     []Ray
	eta      float64
	beam     Beam
}

// NewField refracts the mesh normals and returns the resulting field.
// eta is the ratio of refractive indices (incident over transmitted).
func NewField(mesh *obj.Mesh, eta float64, beam Beam) (*Field, error) {
	if eta <= 0 {
		return nil, fmt.Errorf("eta must be positive, got %g", eta)
	}
	if mesh.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		return nil, fmt.Errorf("mesh has %d vertices but %d normals",
			len(mesh.Vertices), len(mesh.Normals))
	}

	return &Field{
		vertices: mesh.Vertices,
		rays:     Refract(mesh.Normals, eta, beam),
		eta:      eta,
		beam:     beam,
	}, nil
}

// Project intersects the memoized rays with the receiver plane at
// z = distance. Call it again whenever the distance changes; the
// refraction pass is never repeated.
func (f *Field) Project(distance float64) []Hit {
	return Project(f.vertices, f.rays, distance)
}

// Vertices returns the vertex positions. Callers must not modify the
// returned slice.
func (f *Field) Vertices() []geometry.Vector3 {
	return f.vertices
}

// Rays returns the refracted rays. Callers must not modify the
// returned slice.
func (f *Field) Rays() []Ray {
	return f.rays
}

// VertexCount returns the number of vertices in the field
func (f *Field) VertexCount() int {
	return len(f.vertices)
}

// Eta returns the session refractive-index ratio
func (f *Field) Eta() float64 {
	return f.eta
}

// Beam returns the incident beam configuration
func (f *Field) Beam() Beam {
	return f.beam
}

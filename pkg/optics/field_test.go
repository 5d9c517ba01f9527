package optics

import (
	"math"
	"testing"

	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/obj"
)

func axisMesh(zs ...float64) *obj.Mesh {
	mesh := obj.NewMesh("axis")
	for _, z := range zs {
		mesh.Vertices = append(mesh.Vertices, geometry.NewVector3(0, 0, z))
		mesh.Normals = append(mesh.Normals, geometry.NewVector3(0, 0, 1))
	}
	return mesh
}

func TestNewFieldValidation(t *testing.T) {
	mesh := axisMesh(0, 1)

	if _, err := NewField(mesh, 0, DefaultBeam()); err == nil {
		t.Error("expected error for eta = 0")
	}
	if _, err := NewField(mesh, -1.5, DefaultBeam()); err == nil {
		t.Error("expected error for negative eta")
	}
	if _, err := NewField(obj.NewMesh("empty"), 1.457, DefaultBeam()); err == nil {
		t.Error("expected error for empty mesh")
	}

	bad := obj.NewMesh("bad")
	bad.Vertices = append(bad.Vertices, geometry.Vector3{})
	if _, err := NewField(bad, 1.457, DefaultBeam()); err == nil {
		t.Error("expected error for vertex/normal count mismatch")
	}
}

// A flat interface hit at normal incidence passes the beam straight
// through: vertices on the axis land on the axis no matter where the
// receiver plane sits.
func TestFieldFlatLensFocusesOnAxis(t *testing.T) {
	mesh := axisMesh(0, 0.5, 1, 2.5)

	field, err := NewField(mesh, 1.457, DefaultBeam())
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	for _, distance := range []float64{-1, -5, -20} {
		hits := field.Project(distance)
		for i, hit := range hits {
			if !hit.OK {
				t.Fatalf("distance %g: vertex %d missed the plane", distance, i)
			}
			if hit.Point.Length() > 1e-10 {
				t.Errorf("distance %g: vertex %d off axis at %v", distance, i, hit.Point)
			}
		}
	}
}

func TestFieldProjectIdempotent(t *testing.T) {
	mesh := obj.NewMesh("lens")
	for i := 0; i < 5; i++ {
		theta := float64(i) * 8 * math.Pi / 180
		mesh.Vertices = append(mesh.Vertices, geometry.NewVector3(float64(i)*0.2, 0, 1))
		mesh.Normals = append(mesh.Normals, tiltedNormal(theta))
	}

	field, err := NewField(mesh, 1.457, DefaultBeam())
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	first := field.Project(-4)
	second := field.Project(-4)

	if len(first) != field.VertexCount() {
		t.Fatalf("expected %d hits, got %d", field.VertexCount(), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("hit %d differs between identical calls", i)
		}
	}
}

func TestFieldRaysMemoized(t *testing.T) {
	mesh := axisMesh(0, 1)

	field, err := NewField(mesh, 1.457, DefaultBeam())
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	before := field.Rays()
	field.Project(-1)
	field.Project(-7)
	after := field.Rays()

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("ray %d changed across Project calls", i)
		}
	}
}

package obj

import (
	"math"
	"strings"
	"testing"
)

const sampleOBJ = `# lens surface sample
o lens
v 0.0 0.0 1.0
v 1.0 0.0 1.2
v 0.0 1.0 1.2
vn 0.0 0.0 1.0
vn 0.1 0.0 0.9949874371
vn 0.0 0.1 0.9949874371
f 1 2 3
`

func TestParseReader(t *testing.T) {
	mesh, err := ParseReader(strings.NewReader(sampleOBJ))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if mesh.Name != "lens" {
		t.Errorf("Name failed: expected %q, got %q", "lens", mesh.Name)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("VertexCount failed: expected 3, got %d", mesh.VertexCount())
	}
	if len(mesh.Normals) != 3 {
		t.Errorf("Normals failed: expected 3, got %d", len(mesh.Normals))
	}

	if mesh.Vertices[1].X != 1.0 || mesh.Vertices[1].Z != 1.2 {
		t.Errorf("Vertex parse failed: got %v", mesh.Vertices[1])
	}
	if math.Abs(mesh.Normals[0].Z-1.0) > 1e-10 {
		t.Errorf("Normal parse failed: got %v", mesh.Normals[0])
	}
}

func TestParseReaderCountMismatch(t *testing.T) {
	data := `v 0 0 0
v 1 0 0
vn 0 0 1
`
	_, err := ParseReader(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for vertex/normal count mismatch, got nil")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseReaderBadCoordinate(t *testing.T) {
	data := `v 0 zero 0
vn 0 0 1
`
	_, err := ParseReader(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for non-numeric coordinate, got nil")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line number in error, got: %v", err)
	}
}

func TestParseReaderEmpty(t *testing.T) {
	_, err := ParseReader(strings.NewReader("# nothing here\n"))
	if err == nil {
		t.Fatal("expected error for empty mesh, got nil")
	}
}

func TestParseReaderShortVertex(t *testing.T) {
	data := `v 1 2
vn 0 0 1
`
	_, err := ParseReader(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for short vertex record, got nil")
	}
}

func TestMeshBoundingBox(t *testing.T) {
	mesh, err := ParseReader(strings.NewReader(sampleOBJ))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	bbox := mesh.BoundingBox()
	if bbox.Min.X != 0 || bbox.Max.X != 1.0 {
		t.Errorf("BoundingBox X failed: got min %v, max %v", bbox.Min, bbox.Max)
	}
	if bbox.Min.Z != 1.0 || bbox.Max.Z != 1.2 {
		t.Errorf("BoundingBox Z failed: got min %v, max %v", bbox.Min, bbox.Max)
	}
}

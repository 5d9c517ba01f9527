package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gocaustics/pkg/geometry"
)

// Parse reads a Wavefront OBJ file and returns a Mesh.
// Only vertex (v) and vertex-normal (vn) records are used; the two
// sequences must have the same length so that normal i belongs to
// vertex i. Face and texture records are ignored.
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	mesh, err := ParseReader(file)
	if err != nil {
		return nil, err
	}
	if mesh.Name == "" {
		mesh.Name = name
	}
	return mesh, nil
}

// ParseReader parses OBJ data from a reader
func ParseReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh("")

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVector(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case "vn":
			n, err := parseVector(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
			}
			mesh.Normals = append(mesh.Normals, n)

		case "o", "g":
			if len(fields) > 1 && mesh.Name == "" {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		default:
			// f, vt, s, usemtl, mtllib and friends carry no positions
			// or normals, skip them
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no vertices found")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		return nil, fmt.Errorf("vertex/normal count mismatch: %d vertices, %d normals",
			len(mesh.Vertices), len(mesh.Normals))
	}

	return mesh, nil
}

// parseVector parses the three coordinates of a "v" or "vn" record
func parseVector(fields []string) (geometry.Vector3, error) {
	if len(fields) < 4 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields)-1)
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("bad coordinate %q: %w", fields[i+1], err)
		}
		coords[i] = value
	}

	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

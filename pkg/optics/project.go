package optics

import (
	"fmt"

	"github.com/philipparndt/gocaustics/pkg/geometry"
)

// Hit is the receiver-plane intersection for one mesh vertex. Point is
// the X/Y position on the plane in mesh units; OK is false when the ray
// never reaches the plane.
type Hit struct {
	Point geometry.Vector2
	OK    bool
}

// Project intersects every refracted ray with the receiver plane at
// z = distance and returns one Hit per vertex, index-aligned with the
// inputs. It is a pure function: same inputs, same output.
//
// A hit is absent when the ray is invalid, when the ray runs parallel
// to the plane, or when the plane lies behind the vertex along the
// ray (t < 0). Only forward intersections count: a ray traveling away
// from the receiver never hits it, even though the line through the
// vertex crosses the plane.
func Project(vertices []geometry.Vector3, rays []Ray, distance float64) []Hit {
	if len(vertices) != len(rays) {
		panic(fmt.Sprintf("optics: %d vertices but %d rays", len(vertices), len(rays)))
	}

	hits := make([]Hit, len(vertices))
	for i, v := range vertices {
		ray := rays[i]
		if !ray.OK() {
			continue
		}
		if ray.Direction.Z == 0 {
			// Parallel to the receiver plane
			continue
		}

		t := (distance - v.Z) / ray.Direction.Z
		if t < 0 {
			continue
		}

		hits[i] = Hit{
			Point: geometry.NewVector2(
				v.X+t*ray.Direction.X,
				v.Y+t*ray.Direction.Y,
			),
			OK: true,
		}
	}

	return hits
}

package optics

import (
	"math"

	"github.com/philipparndt/gocaustics/pkg/geometry"
)

// RayStatus classifies the outcome of refracting one normal.
type RayStatus int

const (
	// RayOK means a refracted direction was computed.
	RayOK RayStatus = iota
	// RayDegenerateNormal means the normal was near zero length or faced
	// away from the incoming beam, so no direction can be trusted.
	RayDegenerateNormal
	// RayTotalInternalReflection means the incidence angle exceeded the
	// critical angle for the given eta.
	RayTotalInternalReflection
)

// Ray is the refracted direction for one mesh vertex. Direction is a
// unit vector when Status is RayOK, and the zero vector otherwise.
type Ray struct {
	Direction geometry.Vector3
	Status    RayStatus
}

// OK reports whether the ray carries a usable direction
func (r Ray) OK() bool {
	return r.Status == RayOK
}

// minNormalLength is the smallest normal magnitude still treated as a
// direction rather than noise.
const minNormalLength = 1e-9

// Refract applies the vector form of Snell's law to every surface normal
// and returns one Ray per normal, index-aligned with the input.
//
// eta is the ratio of refractive indices, incident medium over
// transmitted medium. Normals must point outward, against the beam:
// a normal with a negative cosine of incidence is reported as
// degenerate, never silently flipped. Total internal reflection and
// degenerate normals invalidate single rays, never the whole batch.
func Refract(normals []geometry.Vector3, eta float64, beam Beam) []Ray {
	d := beam.Direction
	rays := make([]Ray, len(normals))

	for i, n := range normals {
		length := n.Length()
		if length < minNormalLength {
			rays[i] = Ray{Status: RayDegenerateNormal}
			continue
		}
		n = n.Mul(1.0 / length)

		cos1 := -n.Dot(d)
		if cos1 < 0 {
			// Normal faces away from the beam: orientation error in
			// the input mesh.
			rays[i] = Ray{Status: RayDegenerateNormal}
			continue
		}
		if cos1 > 1 {
			cos1 = 1
		}

		sin2 := eta * eta * (1 - cos1*cos1)
		if sin2 > 1 {
			rays[i] = Ray{Status: RayTotalInternalReflection}
			continue
		}

		// Clamp the radicand so float error near the critical angle
		// cannot produce a NaN.
		cos2 := math.Sqrt(clamp01(1 - sin2))

		refracted := d.Mul(eta).Add(n.Mul(eta*cos1 - cos2)).Normalize()
		rays[i] = Ray{Direction: refracted, Status: RayOK}
	}

	return rays
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Package optics computes where a collimated beam, refracted by a lens
// surface, lands on a flat receiver plane.
//
// The propagation axis is Z: the beam travels toward negative Z and the
// receiver plane sits at a configurable Z coordinate. Receiver-plane
// points are expressed in the X/Y coordinates of the mesh, in mesh units.
package optics

import (
	"github.com/philipparndt/gocaustics/pkg/geometry"
)

// Beam is the incident collimated beam. Direction is a unit vector
// pointing in the direction of travel.
type Beam struct {
	Direction geometry.Vector3
}

// NewBeam creates a beam traveling along the given direction.
// The direction is normalized.
func NewBeam(direction geometry.Vector3) Beam {
	return Beam{Direction: direction.Normalize()}
}

// DefaultBeam returns the standard beam: straight down the Z axis,
// toward negative Z.
func DefaultBeam() Beam {
	return Beam{Direction: geometry.NewVector3(0, 0, -1)}
}

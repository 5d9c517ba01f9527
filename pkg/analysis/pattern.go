package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/optics"
)

// PatternResult contains measurements of one projected caustic pattern
type PatternResult struct {
	VertexCount     int
	ValidRays       int
	DegenerateCount int
	TIRCount        int
	HitCount        int
	MissCount       int
	Bounds          geometry.Rect
	Centroid        geometry.Vector2
	RMSSpread       float64
}

// AnalyzeField projects the field at the given distance and measures
// the resulting pattern
func AnalyzeField(field *optics.Field, distance float64) *PatternResult {
	result := AnalyzePattern(field.Project(distance))
	result.ValidRays, result.DegenerateCount, result.TIRCount = CountRayStatuses(field.Rays())
	return result
}

// CountRayStatuses tallies the refraction outcomes of a ray batch
func CountRayStatuses(rays []optics.Ray) (valid, degenerate, tir int) {
	for _, ray := range rays {
		switch ray.Status {
		case optics.RayDegenerateNormal:
			degenerate++
		case optics.RayTotalInternalReflection:
			tir++
		default:
			valid++
		}
	}
	return valid, degenerate, tir
}

// AnalyzePattern measures a projected point pattern: extents, centroid
// and RMS spread about the centroid. A small spread means a tight focus.
func AnalyzePattern(hits []optics.Hit) *PatternResult {
	result := &PatternResult{
		VertexCount: len(hits),
		Bounds:      geometry.NewRect(),
	}

	var sumX, sumY float64
	for _, hit := range hits {
		if !hit.OK {
			result.MissCount++
			continue
		}
		result.HitCount++
		result.Bounds.Extend(hit.Point)
		sumX += hit.Point.X
		sumY += hit.Point.Y
	}

	if result.HitCount == 0 {
		return result
	}

	result.Centroid = geometry.NewVector2(
		sumX/float64(result.HitCount),
		sumY/float64(result.HitCount),
	)

	var sumSq float64
	for _, hit := range hits {
		if !hit.OK {
			continue
		}
		d := hit.Point.Distance(result.Centroid)
		sumSq += d * d
	}
	result.RMSSpread = math.Sqrt(sumSq / float64(result.HitCount))

	return result
}

// FocusScan evaluates the RMS spread over a range of receiver-plane
// distances and returns the distance with the tightest pattern. steps
// must be at least 2.
func FocusScan(field *optics.Field, from, to float64, steps int) (float64, float64, error) {
	if steps < 2 {
		return 0, 0, fmt.Errorf("need at least 2 steps, got %d", steps)
	}

	bestDistance := from
	bestSpread := math.MaxFloat64
	found := false

	for i := 0; i < steps; i++ {
		distance := from + (to-from)*float64(i)/float64(steps-1)
		result := AnalyzePattern(field.Project(distance))
		if result.HitCount == 0 {
			continue
		}
		if result.RMSSpread < bestSpread {
			bestDistance = distance
			bestSpread = result.RMSSpread
			found = true
		}
	}

	if !found {
		return 0, 0, fmt.Errorf("no distance in [%g, %g] produced any hits", from, to)
	}

	return bestDistance, bestSpread, nil
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatPoint formats a receiver-plane point
func FormatPoint(p geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}

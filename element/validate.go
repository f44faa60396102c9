package element

import "github.com/arl/nav2d/geom"

// Validate checks points against the C2 polygon validator rules: at least
// 3 vertices, counter-clockwise winding, convex (colinear vertices
// tolerated, except between the first two edges). Failures are fatal, so Validate is only ever called
// once, at construction.
func Validate(points []geom.Vector2) error {
	if len(points) < 3 {
		return geom.NewInvalidPolygon("polygon has %d vertices, need >= 3", len(points))
	}

	// Orientation: cross of the first two edges.
	e0 := points[1].Sub(points[0])
	e1 := points[2].Sub(points[1])
	cross := e0.Cross(e1)
	if cross > -geom.Epsilon && cross < geom.Epsilon {
		return geom.NewInvalidPolygon("polygon's first two edges are colinear")
	}
	if cross < 0 {
		return geom.NewInvalidPolygon("polygon winds clockwise")
	}

	// Convexity: every consecutive triple's cross product must share sign
	// (zero tolerated either way).
	n := len(points)
	sawPositive, sawNegative := false, false
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		c := points[(i+2)%n]
		z := b.Sub(a).Cross(c.Sub(b))
		if z > geom.Epsilon {
			sawPositive = true
		} else if z < -geom.Epsilon {
			sawNegative = true
		}
		if sawPositive && sawNegative {
			return geom.NewInvalidPolygon("polygon is not convex")
		}
	}
	return nil
}

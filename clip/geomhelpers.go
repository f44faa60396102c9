package clip

import "github.com/arl/nav2d/geom"

// ring is a simple polygon boundary in the working float64 domain the
// clipper computes intersections in (integer input/output, float64 math).
type ring []point

type point struct {
	X, Y float64
}

func toRing(ip []geom.IntPoint) ring {
	r := make(ring, len(ip))
	for i, p := range ip {
		r[i] = point{float64(p.X), float64(p.Y)}
	}
	return r
}

func (r ring) toIntPoints() []geom.IntPoint {
	out := make([]geom.IntPoint, len(r))
	for i, p := range r {
		out[i] = geom.IntPoint{X: round(p.X), Y: round(p.Y)}
	}
	return out
}

func round(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}

// signedArea returns twice the signed area of r (positive for
// counter-clockwise winding).
func (r ring) signedArea() float64 {
	var area float64
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

func (r ring) isCCW() bool { return r.signedArea() > 0 }

func (r ring) reversed() ring {
	out := make(ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// pointInPolygon reports whether p lies strictly inside r, using the
// standard even-odd ray-casting test.
func pointInPolygon(p point, r ring) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := r[i], r[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// segIntersect finds the intersection of segments (p1,p2) and (p3,p4),
// returning the parametric positions t (along p1p2) and u (along p3p4) in
// (0,1) exclusive — endpoint-touching intersections are not reported, since
// nav2d's shapes are in strictly general position except at designed
// tangencies, and the containment fallback in greinerhormann.go handles
// those.
func segIntersect(p1, p2, p3, p4 point) (pt point, t, u float64, ok bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	denom := d1x*d2y - d1y*d2x
	if denom > -1e-9 && denom < 1e-9 {
		return point{}, 0, 0, false
	}
	ex, ey := p3.X-p1.X, p3.Y-p1.Y
	t = (ex*d2y - ey*d2x) / denom
	u = (ex*d1y - ey*d1x) / denom
	const eps = 1e-9
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return point{}, 0, 0, false
	}
	return point{p1.X + t*d1x, p1.Y + t*d1y}, t, u, true
}

// anyIntersection reports whether any edge of a crosses any edge of b.
func anyIntersection(a, b ring) bool {
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			if _, _, _, ok := segIntersect(a1, a2, b1, b2); ok {
				return true
			}
		}
	}
	return false
}

// contains reports whether every vertex of inner lies inside outer. Callers
// must already know inner and outer's boundaries don't cross (see
// anyIntersection) for this to imply full containment.
func contains(outer, inner ring) bool {
	for _, p := range inner {
		if !pointInPolygon(p, outer) {
			return false
		}
	}
	return true
}

// Package offset is a minimal-contract "external" offset engine: inflate a
// closed integer polygon by a signed distance. nav2d's
// core only ever calls it through the Engine interface, so a production
// build could swap in a production-grade integer offsetter without touching
// element.NavElement.
package offset

import "github.com/arl/nav2d/geom"

// JoinType selects how new vertices are generated at the corners of an
// offset ring. nav2d only exercises Miter, but the type exists so Engine's
// contract reads the way a real offset library's would.
type JoinType int

// EndType selects how an open/closed subject is capped. nav2d only ever
// offsets closed polygons.
type EndType int

const (
	JoinMiter JoinType = iota
)

const (
	EndClosedPolygon EndType = iota
)

// Engine inflates (or shrinks, for a negative distance) closed integer
// rings. Implementations may return more than one output ring in general;
// for the convex, positive-distance case this module always exercises,
// exactly one is expected back.
type Engine interface {
	Offset(ring []geom.IntPoint, join JoinType, end EndType, distance int64) ([][]geom.IntPoint, error)
}

// Miter is the default Engine: it pushes every edge of a convex,
// counter-clockwise ring outward along its normal by distance and places
// each new vertex at the intersection of its two adjacent offset edges
// (the textbook convex-polygon miter inflation; originalPoints are
// validated convex+CCW at construction time, so this is always well
// defined).
type Miter struct{}

// Offset implements Engine.
func (Miter) Offset(ring []geom.IntPoint, join JoinType, end EndType, distance int64) ([][]geom.IntPoint, error) {
	if len(ring) < 3 {
		return nil, geom.NewEngineFailure("offset: ring has %d vertices, need >= 3", len(ring))
	}
	if distance == 0 {
		out := make([]geom.IntPoint, len(ring))
		copy(out, ring)
		return [][]geom.IntPoint{out}, nil
	}

	n := len(ring)
	pts := make([]geom.Vector2, n)
	for i, p := range ring {
		pts[i] = geom.Vec2(float32(p.X), float32(p.Y))
	}

	// Offset line for edge (i, i+1): a point on the line and its direction.
	type line struct {
		p, dir geom.Vector2
	}
	lines := make([]line, n)
	d := float32(distance)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		edge := b.Sub(a)
		if edge.Length() < geom.Epsilon {
			return nil, geom.NewEngineFailure("offset: degenerate edge at vertex %d", i)
		}
		normal := edge.Perp()
		lines[i] = line{p: a.Add(normal.Scale(d)), dir: edge.Normalise()}
	}

	out := make([]geom.IntPoint, n)
	for i := 0; i < n; i++ {
		prev := lines[(i-1+n)%n]
		cur := lines[i]
		v, ok := intersectLines(prev.p, prev.dir, cur.p, cur.dir)
		if !ok {
			// Parallel adjacent edges (colinear authored vertex): fall back
			// to offsetting the shared vertex directly along the bisector
			// of the two (equal) normals.
			v = pts[i].Add(cur.p.Sub(pts[i]))
		}
		out[i] = geom.ToIntPoint(v, 1)
	}
	return [][]geom.IntPoint{out}, nil
}

// intersectLines finds the intersection of line p1+t*d1 and p2+t*d2.
func intersectLines(p1, d1, p2, d2 geom.Vector2) (geom.Vector2, bool) {
	denom := d1.Cross(d2)
	if denom > -geom.Epsilon && denom < geom.Epsilon {
		return geom.Vector2{}, false
	}
	diff := p2.Sub(p1)
	t := diff.Cross(d2) / denom
	return p1.Add(d1.Scale(t)), true
}

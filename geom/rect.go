package geom

// Rect is an axis-aligned bounding rectangle, always returned by value.
//
// Design Notes flags a bug in one source variant where the bounding box was
// mutated through a shared reference, so observers holding an old handle saw
// retroactive changes. Rect is a plain value type for that reason: every
// getter in this module returns a Rect snapshot, never a pointer or a slice
// alias into mutable state.
type Rect struct {
	Min, Max Vector2
}

// NewRect builds a Rect from two corners, normalising so Min <= Max on both
// axes regardless of argument order.
func NewRect(a, b Vector2) Rect {
	r := Rect{
		Min: Vector2{X: minf(a.X, b.X), Y: minf(a.Y, b.Y)},
		Max: Vector2{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y)},
	}
	return r
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Width returns the X extent of r.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the Y extent of r.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Area returns the rectangle's area. Degenerate (zero-extent) rectangles
// have area 0.
func (r Rect) Area() float32 { return r.Width() * r.Height() }

// Empty reports whether r has zero (or negative, which shouldn't happen
// given NewRect's normalisation) extent on either axis.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Center returns the midpoint of r.
func (r Rect) Center() Vector2 {
	return Vector2{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	if r.Max.X < o.Min.X || o.Max.X < r.Min.X {
		return false
	}
	if r.Max.Y < o.Min.Y || o.Max.Y < r.Min.Y {
		return false
	}
	return true
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Max.X <= r.Max.X &&
		o.Min.Y >= r.Min.Y && o.Max.Y <= r.Max.Y
}

// ExpandedFromCenter returns r scaled by factor about its own center, used
// by the quadtree to derive a root rectangle comfortably larger than the
// authored world bounds.
func (r Rect) ExpandedFromCenter(factor float32) Rect {
	c := r.Center()
	hw, hh := r.Width()/2*factor, r.Height()/2*factor
	return Rect{
		Min: Vector2{c.X - hw, c.Y - hh},
		Max: Vector2{c.X + hw, c.Y + hh},
	}
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vector2{minf(r.Min.X, o.Min.X), minf(r.Min.Y, o.Min.Y)},
		Max: Vector2{maxf(r.Max.X, o.Max.X), maxf(r.Max.Y, o.Max.Y)},
	}
}

// BoundsOf returns the Rect bounding a (non-empty) set of points.
func BoundsOf(points []Vector2) Rect {
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = minf(r.Min.X, p.X)
		r.Min.Y = minf(r.Min.Y, p.Y)
		r.Max.X = maxf(r.Max.X, p.X)
		r.Max.Y = maxf(r.Max.Y, p.Y)
	}
	return r
}

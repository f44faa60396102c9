package geom

import (
	"fmt"

	"github.com/arl/math32"
)

// Vector2 is a point or displacement in the authored 2D plane.
//
// Modelled on gogeo's f32/d3.Vec3, trimmed to two dimensions: component
// accessors plus the free functions §6.1 requires (add, sub, scale, rotate,
// cross, perp, length, normalise, approx-equal).
type Vector2 struct {
	X, Y float32
}

// Vec2 is a convenience constructor.
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Cross returns the z-component of the 3D cross product of v and o, treating
// both as 3D vectors with z=0. Positive when o is counter-clockwise from v.
func (v Vector2) Cross(o Vector2) float32 { return v.X*o.Y - v.Y*o.X }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalise returns v scaled to unit length. The zero vector normalises to
// itself.
func (v Vector2) Normalise() Vector2 {
	l := v.Length()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Perp returns the normalised perpendicular of v, rotated -90° (the outward
// normal of an edge on a counter-clockwise polygon points this way when the
// edge runs in winding order).
func (v Vector2) Perp() Vector2 {
	return Vector2{v.Y, -v.X}.Normalise()
}

// RotateAboutOrigin rotates v by angle radians about (0,0).
func (v Vector2) RotateAboutOrigin(angle float32) Vector2 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Epsilon is the default tolerance used by ApproxEqual, wide enough to
// absorb float32 rotation/accumulation error without masking genuine
// movement.
const Epsilon float32 = 1e-5

// ApproxEqual reports whether v and o are equal to within eps, using the
// same relative-epsilon formula as math32.ApproxEpsilon.
func (v Vector2) ApproxEqual(o Vector2, eps float32) bool {
	return math32.ApproxEpsilon(v.X, o.X, eps) && math32.ApproxEpsilon(v.Y, o.Y, eps)
}

// Equal reports whether v and o are equal to within the package default
// Epsilon.
func (v Vector2) Equal(o Vector2) bool {
	return v.ApproxEqual(o, Epsilon)
}

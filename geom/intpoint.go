package geom

import "math"

// Accuracy is the scaling factor A that turns Vector2 floats into IntPoint's
// 64-bit integer domain for the offset/clip engines. The supported factors
// are the values below; IsValid reports membership, and nav2d.New does not
// reject other values.
type Accuracy int64

// Valid accuracy factors.
const (
	Accuracy1      Accuracy = 1
	Accuracy10     Accuracy = 10
	Accuracy100    Accuracy = 100
	Accuracy1000   Accuracy = 1000
	Accuracy10000  Accuracy = 10000
	Accuracy100000 Accuracy = 100000
)

// IsValid reports whether a is one of the accepted accuracy factors.
func (a Accuracy) IsValid() bool {
	switch a {
	case Accuracy1, Accuracy10, Accuracy100, Accuracy1000, Accuracy10000, Accuracy100000:
		return true
	}
	return false
}

// IntPoint is a point in the integer coordinate domain the offset and clip
// engines operate in.
type IntPoint struct {
	X, Y int64
}

// ToIntPoint scales v by a and rounds each component half-to-even.
// gogeo's f32.Round uses round-half-up, which doesn't match that contract,
// so this rounds via the standard library's math.RoundToEven instead (see
// DESIGN.md).
func ToIntPoint(v Vector2, a Accuracy) IntPoint {
	return IntPoint{
		X: int64(math.RoundToEven(float64(v.X) * float64(a))),
		Y: int64(math.RoundToEven(float64(v.Y) * float64(a))),
	}
}

// ToVector2 rescales p back down from the integer domain by a.
func (p IntPoint) ToVector2(a Accuracy) Vector2 {
	return Vector2{
		X: float32(float64(p.X) / float64(a)),
		Y: float32(float64(p.Y) / float64(a)),
	}
}

// PointsToIntPoints scales and rounds a whole ring at once.
func PointsToIntPoints(points []Vector2, a Accuracy) []IntPoint {
	out := make([]IntPoint, len(points))
	for i, p := range points {
		out[i] = ToIntPoint(p, a)
	}
	return out
}

// IntPointsToPoints rescales a whole ring back to Vector2.
func IntPointsToPoints(points []IntPoint, a Accuracy) []Vector2 {
	out := make([]Vector2, len(points))
	for i, p := range points {
		out[i] = p.ToVector2(a)
	}
	return out
}

// Package element implements C2 (the polygon validator) and C5 (NavElement):
// one authored polygon plus pose and offset, owning its inflated points,
// world points, and AABB, refreshed lazily via dirty flags.
package element

import (
	"math"

	"github.com/arl/math32"
	"github.com/google/uuid"

	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/offset"
)

// Type distinguishes an impassable Obstacle from a traversable,
// cost-bearing Surface.
type Type int

const (
	Obstacle Type = iota
	Surface
)

func (t Type) String() string {
	if t == Surface {
		return "Surface"
	}
	return "Obstacle"
}

// NavElement is one authored convex polygon with a mutable pose and extra
// offset. Its stable identity is a uuid (see DESIGN.md); grouping and
// quadtree membership are tracked by index (GroupID, quadtree handle)
// rather than by embedding pointers, per Design Notes' arena+index guidance.
type NavElement struct {
	ID   uuid.UUID
	Type Type
	Cost float32 // meaningful only when Type == Surface

	originalPoints []geom.Vector2 // validated once, immutable after construction

	position geom.Vector2
	rotation float32 // radians
	extra    float32 // extraOffset, >= 0

	extendedPoints []geom.Vector2 // inflated, local coords
	worldPoints    []geom.Vector2
	intWorldPoints []geom.IntPoint
	aabb           geom.Rect

	dirty       bool
	extendDirty bool

	groupID      uint32 // 0 == unassigned
	inQuadtree   bool
}

// New constructs and validates a NavElement. Construction failure
// (InvalidPolygon) is fatal and not recoverable at runtime.
func New(typ Type, points []geom.Vector2, position geom.Vector2, rotation float32, cost float32, extraOffset float32) (*NavElement, error) {
	if err := Validate(points); err != nil {
		return nil, err
	}
	if extraOffset < 0 {
		return nil, geom.NewInvalidPolygon("extraOffset must be >= 0, got %g", extraOffset)
	}
	pts := make([]geom.Vector2, len(points))
	copy(pts, points)
	return &NavElement{
		ID:             uuid.New(),
		Type:           typ,
		Cost:           cost,
		originalPoints: pts,
		position:       position,
		rotation:       rotation,
		extra:          extraOffset,
		dirty:          true,
		extendDirty:    true,
	}, nil
}

// Hexagon synthesises a regular hexagon of circumradius radius, rotated
// 30° — the ring used by the radius-based AddObstacle/AddSurface overloads
// as a cheap disc approximation.
func Hexagon(radius float32) []geom.Vector2 {
	const n = 6
	pts := make([]geom.Vector2, n)
	for i := 0; i < n; i++ {
		angle := float32(i)*(2*math32.Pi/n) + math32.Pi/6 // 30° rotation
		pts[i] = geom.Vec2(radius*math32.Cos(angle), radius*math32.Sin(angle))
	}
	return pts
}

// OriginalPoints returns a copy of the authored (un-inflated) ring.
func (e *NavElement) OriginalPoints() []geom.Vector2 {
	out := make([]geom.Vector2, len(e.originalPoints))
	copy(out, e.originalPoints)
	return out
}

// Position returns the element's current pose position.
func (e *NavElement) Position() geom.Vector2 { return e.position }

// Rotation returns the element's current pose rotation, in radians.
func (e *NavElement) Rotation() float32 { return e.rotation }

// ExtraOffset returns the current extra inflation distance.
func (e *NavElement) ExtraOffset() float32 { return e.extra }

// SetPose updates position and rotation, flipping the dirty flag if either
// actually changed.
func (e *NavElement) SetPose(position geom.Vector2, rotation float32) {
	if e.position.Equal(position) && math32.ApproxEpsilon(e.rotation, rotation, geom.Epsilon) {
		return
	}
	e.position = position
	e.rotation = rotation
	e.dirty = true
}

// SetExtraOffset updates the extra inflation distance, flipping both dirty
// flags if it actually changed (the inflated ring itself must be
// recomputed).
func (e *NavElement) SetExtraOffset(extra float32) error {
	if extra < 0 {
		return geom.NewInvalidPolygon("extraOffset must be >= 0, got %g", extra)
	}
	if math32.ApproxEpsilon(e.extra, extra, geom.Epsilon) {
		return nil
	}
	e.extra = extra
	e.dirty = true
	e.extendDirty = true
	return nil
}

// SetCost updates the movement cost. Meaningless (but harmless) on an
// Obstacle.
func (e *NavElement) SetCost(cost float32) { e.Cost = cost }

// Dirty reports whether Refresh has work to do.
func (e *NavElement) Dirty() bool { return e.dirty }

// GroupID returns the element's current group id, 0 if unassigned.
func (e *NavElement) GroupID() uint32 { return e.groupID }

// SetGroupID is called by the grouping coordinator (package grouping) to
// assign or clear (0) this element's group membership.
func (e *NavElement) SetGroupID(id uint32) { e.groupID = id }

// InQuadtree reports whether this element has ever been inserted into the
// spatial index.
func (e *NavElement) InQuadtree() bool { return e.inQuadtree }

// MarkQuadtreeInserted is called once by the owning facade after the first
// successful quadtree insertion.
func (e *NavElement) MarkQuadtreeInserted() { e.inQuadtree = true }

// WorldPoints returns a copy of the current world-space inflated ring.
// Reflects the post-refresh cache, i.e. is stale until Update() runs.
func (e *NavElement) WorldPoints() []geom.Vector2 {
	out := make([]geom.Vector2, len(e.worldPoints))
	copy(out, e.worldPoints)
	return out
}

// IntWorldPoints returns the integer-scaled world ring used by the clip
// engine.
func (e *NavElement) IntWorldPoints() []geom.IntPoint {
	out := make([]geom.IntPoint, len(e.intWorldPoints))
	copy(out, e.intWorldPoints)
	return out
}

// AABB returns a snapshot of the element's current world bounds. Always a
// value, never an alias — see Design Notes on the source's shared-reference
// bug.
func (e *NavElement) AABB() geom.Rect { return e.aabb }

// Refresh is idempotent and a no-op when Dirty() is false. It runs the
// offset engine (if the extended ring is stale), re-derives world points
// and the AABB, and refreshes the integer world ring. Quadtree maintenance
// and group dismantle/regroup-queue enqueueing are done by the caller
// (nav2d.Update): it calls Refresh first, then reindexes the element and
// has the grouping coordinator dismantle the group the element belonged to.
// Refresh leaves GroupID untouched.
func (e *NavElement) Refresh(agentRadius float32, accuracy geom.Accuracy, eng offset.Engine) error {
	if !e.dirty {
		return nil
	}

	if e.extendDirty {
		d := int64(math.Round(float64((agentRadius + e.extra) * float32(accuracy))))
		ring := geom.PointsToIntPoints(e.originalPoints, accuracy)
		out, err := eng.Offset(ring, offset.JoinMiter, offset.EndClosedPolygon, d)
		if err != nil {
			return err
		}
		if len(out) != 1 {
			return geom.NewEngineFailure("offset engine returned %d rings, want exactly 1", len(out))
		}
		e.extendedPoints = geom.IntPointsToPoints(out[0], accuracy)
		e.extendDirty = false
	}

	n := len(e.extendedPoints)
	if len(e.worldPoints) != n {
		e.worldPoints = make([]geom.Vector2, n)
	}
	for i, p := range e.extendedPoints {
		e.worldPoints[i] = p.RotateAboutOrigin(e.rotation).Add(e.position)
	}
	e.aabb = geom.BoundsOf(e.worldPoints)

	if len(e.intWorldPoints) != n {
		e.intWorldPoints = make([]geom.IntPoint, n)
	}
	for i, p := range e.worldPoints {
		e.intWorldPoints[i] = geom.ToIntPoint(p, accuracy)
	}

	e.dirty = false
	return nil
}

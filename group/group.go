// Package group implements C7, ElementGroup: a connected component of
// mutually-overlapping NavElements, plus the per-group NavShape trees
// (union of obstacles, surfaces minus obstacles) the Boolean engine
// derives from its current members.
package group

import (
	"github.com/arl/nav2d/clip"
	"github.com/arl/nav2d/element"
	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/shape"
)

// Group is one ElementGroup: identity plus its two disjoint member sets
// and their derived shape trees. Membership is tracked as ordered slices
// rather than maps so Rebuild's fold order (and therefore its output, when
// the clip engine's fold is order-sensitive) is reproducible across runs.
type Group struct {
	ID uint32

	Obstacles []*element.NavElement
	Surfaces  []*element.NavElement

	ObstacleShapes shape.Tree
	SurfaceShapes  shape.Tree
}

// New creates an empty group with the given id.
func New(id uint32) *Group {
	return &Group{ID: id}
}

// Add attaches e to the group, assigning e.GroupID. Caller ensures e isn't
// already a member of another group (the grouping coordinator enforces
// this by dismantling old memberships before regrouping).
func (g *Group) Add(e *element.NavElement) {
	switch e.Type {
	case element.Obstacle:
		g.Obstacles = append(g.Obstacles, e)
	case element.Surface:
		g.Surfaces = append(g.Surfaces, e)
	}
	e.SetGroupID(g.ID)
}

// Remove detaches e from the group, clearing its GroupID. Reports whether
// e was actually a member.
func (g *Group) Remove(e *element.NavElement) bool {
	if removeFrom(&g.Obstacles, e) || removeFrom(&g.Surfaces, e) {
		e.SetGroupID(0)
		return true
	}
	return false
}

func removeFrom(s *[]*element.NavElement, e *element.NavElement) bool {
	for i, m := range *s {
		if m == e {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// Empty reports whether the group has no members left, i.e. should be
// deleted from Nav2D's group table.
func (g *Group) Empty() bool { return len(g.Obstacles) == 0 && len(g.Surfaces) == 0 }

// Rebuild reconstructs ObstacleShapes and SurfaceShapes from the group's
// current members.
func (g *Group) Rebuild(accuracy geom.Accuracy, eng clip.Engine) error {
	g.ObstacleShapes.Reset()
	g.SurfaceShapes.Reset()

	switch {
	case len(g.Obstacles) == 1 && len(g.Surfaces) == 0:
		// Fast path: a single obstacle needs no clipping.
		g.ObstacleShapes.AddRoot(g.Obstacles[0].WorldPoints(), shape.Obstacle)
		return nil
	case len(g.Obstacles) == 0 && len(g.Surfaces) > 0:
		// Fast path: nothing to subtract from any surface.
		for _, s := range g.Surfaces {
			g.SurfaceShapes.AddRoot(s.WorldPoints(), shape.Surface)
		}
		return nil
	}

	obstacleRings := make([][]geom.IntPoint, len(g.Obstacles))
	for i, o := range g.Obstacles {
		obstacleRings[i] = o.IntWorldPoints()
	}

	if len(g.Obstacles) >= 2 {
		tree, err := eng.Execute(obstacleRings, nil, clip.Union, clip.NonZero)
		if err != nil {
			return err
		}
		appendPolyTree(&g.ObstacleShapes, tree.Root, noParentNode, shape.Obstacle, accuracy)
	} else if len(g.Obstacles) == 1 {
		g.ObstacleShapes.AddRoot(g.Obstacles[0].WorldPoints(), shape.Obstacle)
	}

	for _, s := range g.Surfaces {
		subject := [][]geom.IntPoint{s.IntWorldPoints()}
		tree, err := eng.Execute(subject, obstacleRings, clip.Difference, clip.NonZero)
		if err != nil {
			return err
		}
		appendPolyTree(&g.SurfaceShapes, tree.Root, noParentNode, shape.Surface, accuracy)
	}
	return nil
}

// noParentNode signals appendPolyTree's recursion hasn't yet attached a
// shape.Tree parent for the node it's about to append.
const noParentNode = ^uint32(0)

// appendPolyTree copies clip's IntPoint contour tree into dst's Vector2
// tree, preserving the parent/child/hole structure and rescaling every
// ring by accuracy.
func appendPolyTree(dst *shape.Tree, n *clip.PolyNode, parent uint32, navType shape.Type, accuracy geom.Accuracy) {
	for _, c := range n.Children {
		pts := geom.IntPointsToPoints(c.Contour, accuracy)
		var idx uint32
		if parent == noParentNode {
			idx = dst.AddRoot(pts, navType)
		} else {
			idx = dst.AddChild(parent, pts, c.Hole, navType)
		}
		appendPolyTree(dst, c, idx, navType, accuracy)
	}
}

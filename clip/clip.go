// Package clip is a minimal-contract "external" polygon clipper: boolean
// operations over rings of integer points, producing a contour/hole tree.
// As with package offset, nav2d's core only ever talks to it through the
// Engine interface.
package clip

import "github.com/arl/nav2d/geom"

// FillRule selects how self-overlapping/nested input contributes to the
// result. nav2d only ever requests NonZero, but both values exist so
// Engine's contract matches a production clipper's.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Op selects the boolean operation.
type Op int

const (
	Union Op = iota
	Difference
)

// PolyNode is one node of the contour tree Engine.Execute produces. The
// root of a PolyTree is synthetic (Contour is nil); its direct children are
// outer contours, their children are holes, holes' children are outer
// contours again, alternating all the way down.
type PolyNode struct {
	Contour  []geom.IntPoint
	Hole     bool
	Parent   *PolyNode
	Children []*PolyNode
}

// PolyTree is the output of a clip operation.
type PolyTree struct {
	Root *PolyNode
}

// NewPolyTree builds an empty tree with a synthetic root.
func NewPolyTree() *PolyTree {
	return &PolyTree{Root: &PolyNode{}}
}

// addChild appends child as a direct child of parent (or the tree root if
// parent is nil), wiring the Parent back-pointer.
func (t *PolyTree) addChild(parent *PolyNode, contour []geom.IntPoint, hole bool) *PolyNode {
	if parent == nil {
		parent = t.Root
	}
	n := &PolyNode{Contour: contour, Hole: hole, Parent: parent}
	parent.Children = append(parent.Children, n)
	return n
}

// Engine performs boolean operations on sets of closed integer rings,
// producing a contour tree. Subjects and clips are both flat lists of
// simple (non-self-intersecting), hole-free rings — nav2d never feeds it
// anything else, since every NavElement contributes exactly one such ring
// (see element.NavElement.IntWorldPoints).
type Engine interface {
	Execute(subjects, clips [][]geom.IntPoint, op Op, fill FillRule) (*PolyTree, error)
}

// Package shape is the NavShape contour/hole tree (§3, §4.4): the derived
// polygon structure an ElementGroup rebuilds from its members' integer
// world rings via the clip engine, and that the graph builder (package
// graph) later walks.
//
// Design Notes calls for arena+index rather than parent/child pointers, to
// sidestep reference cycles and make rebuild-and-discard an O(1) truncate:
// a Tree is a flat slice of nodes, Parent and Children are indices into it.
package shape

import "github.com/arl/nav2d/geom"

// noParent marks a top-level node (a direct child of the tree's synthetic
// root, per §3).
const noParent = ^uint32(0)

// Type mirrors element.Type without importing package element, since both
// element and shape are leaves other packages depend on.
type Type int

const (
	Obstacle Type = iota
	Surface
)

// Node is one contour in the tree: either a solid outer contour or a hole
// punched into its parent.
type Node struct {
	Points   []geom.Vector2
	Hole     bool
	NavType  Type
	Parent   uint32 // noParent if top-level
	Children []uint32
}

// Tree is one group's derived NavShape forest, discarded and rebuilt
// wholesale on every ElementGroup.Rebuild.
type Tree struct {
	nodes []Node
}

// Reset empties t for reuse, keeping the backing array (Design Notes:
// rebuild-and-discard should be an O(1) truncate, not a fresh allocation).
func (t *Tree) Reset() { t.nodes = t.nodes[:0] }

// Len returns the number of nodes in t.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a pointer to the i-th node. Valid until the next Reset.
func (t *Tree) Node(i uint32) *Node { return &t.nodes[i] }

// AddRoot appends a new top-level contour and returns its index.
func (t *Tree) AddRoot(points []geom.Vector2, navType Type) uint32 {
	return t.add(noParent, points, false, navType)
}

// AddChild appends a new node as a child of parent (a hole in parent's
// contour, or — per the clipper's alternating tree — an outer contour
// nested inside a hole) and returns its index.
func (t *Tree) AddChild(parent uint32, points []geom.Vector2, hole bool, navType Type) uint32 {
	return t.add(parent, points, hole, navType)
}

func (t *Tree) add(parent uint32, points []geom.Vector2, hole bool, navType Type) uint32 {
	idx := uint32(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Points:  points,
		Hole:    hole,
		NavType: navType,
		Parent:  parent,
	})
	if parent != noParent {
		t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	}
	return idx
}

// Roots returns the indices of every top-level contour, in insertion
// order.
func (t *Tree) Roots() []uint32 {
	var roots []uint32
	for i, n := range t.nodes {
		if n.Parent == noParent {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

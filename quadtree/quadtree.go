// Package quadtree is the region quadtree (C6) spatial index: an
// AABB-keyed structure supporting insert/remove/move and rect queries, used
// by the grouping coordinator to find which elements' bounds overlap.
//
// Modelled on recast.ChunkyTriMesh's static AABB-tree build
// (recast/chunkytrimesh.go), generalised to a dynamic
// insert/remove/move/query contract: instead of a single bulk build sorted
// along the longest axis, each node subdivides into four fixed quadrants
// the first time a leaf fits strictly inside one of them.
package quadtree

import "github.com/arl/nav2d/geom"

// Handle identifies an element stored in the tree; callers own the handle
// space (nav2d uses the element's arena index).
type Handle uint32

const minQuadrantSide float32 = 1

// node is one quadtree node. Subdivided nodes have all four children
// populated; any node, subdivided or not, stores the elements that fit
// none of its children.
type node struct {
	bounds   geom.Rect
	children [4]*node // nil until subdivided
	entries  []entry
}

type entry struct {
	h    Handle
	rect geom.Rect
}

// Tree is a region quadtree over axis-aligned rectangles.
type Tree struct {
	root  *node
	index map[Handle]*node // side-table for O(1) removal/move
}

// New builds an empty tree rooted at worldBounds.
func New(worldBounds geom.Rect) *Tree {
	return &Tree{
		root:  &node{bounds: worldBounds},
		index: make(map[Handle]*node),
	}
}

// Bounds returns the tree's root rectangle.
func (t *Tree) Bounds() geom.Rect { return t.root.bounds }

// Insert adds h with bounding rect into the tree. It fails with
// DegenerateBounds if rect has zero extent.
func (t *Tree) Insert(h Handle, rect geom.Rect) error {
	if rect.Empty() {
		return geom.NewDegenerateBounds("quadtree: insert %d has zero-extent rect %v", h, rect)
	}
	n := insertInto(t.root, rect)
	n.entries = append(n.entries, entry{h: h, rect: rect})
	t.index[h] = n
	return nil
}

// insertInto finds (subdividing as needed) the node that should store an
// element with the given rect: descend into whichever quadrant strictly
// contains rect, so long as that quadrant's side is still >= the minimum;
// otherwise the element is stored at the current node.
func insertInto(n *node, rect geom.Rect) *node {
	for {
		if n.bounds.Width()/2 < minQuadrantSide || n.bounds.Height()/2 < minQuadrantSide {
			return n
		}
		if n.children[0] == nil {
			subdivide(n)
		}
		fit := -1
		for i, c := range n.children {
			b := c.bounds
			if rect.Min.X > b.Min.X && rect.Max.X < b.Max.X &&
				rect.Min.Y > b.Min.Y && rect.Max.Y < b.Max.Y {
				fit = i
				break
			}
		}
		if fit == -1 {
			return n
		}
		n = n.children[fit]
	}
}

func subdivide(n *node) {
	c := n.bounds.Center()
	min, max := n.bounds.Min, n.bounds.Max
	// top-left, top-right, bottom-left, bottom-right
	n.children[0] = &node{bounds: geom.NewRect(geom.Vec2(min.X, c.Y), geom.Vec2(c.X, max.Y))}
	n.children[1] = &node{bounds: geom.NewRect(geom.Vec2(c.X, c.Y), geom.Vec2(max.X, max.Y))}
	n.children[2] = &node{bounds: geom.NewRect(geom.Vec2(min.X, min.Y), geom.Vec2(c.X, c.Y))}
	n.children[3] = &node{bounds: geom.NewRect(geom.Vec2(c.X, min.Y), geom.Vec2(max.X, c.Y))}
}

// Remove drops h from the tree via the side-table, reporting whether it was
// present.
func (t *Tree) Remove(h Handle) bool {
	n, ok := t.index[h]
	if !ok {
		return false
	}
	for i, e := range n.entries {
		if e.h == h {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			break
		}
	}
	delete(t.index, h)
	return true
}

// Move is equivalent to Remove followed by Insert with the new rect.
func (t *Tree) Move(h Handle, newRect geom.Rect) error {
	t.Remove(h)
	return t.Insert(h, newRect)
}

// QueryIntersecting appends every stored handle whose rect intersects rect
// to out, visiting nodes in a stable depth-first left-to-right order so
// builds are reproducible run to run. Empty rect yields no results.
func (t *Tree) QueryIntersecting(rect geom.Rect, out []Handle) []Handle {
	if rect.Empty() {
		return out
	}
	return queryNode(t.root, rect, out)
}

func queryNode(n *node, rect geom.Rect, out []Handle) []Handle {
	if n == nil || !n.bounds.Intersects(rect) {
		return out
	}
	for _, c := range n.children {
		out = queryNode(c, rect, out)
	}
	for _, e := range n.entries {
		if e.rect.Intersects(rect) {
			out = append(out, e.h)
		}
	}
	return out
}

// AnyIntersecting short-circuits QueryIntersecting, returning as soon as one
// match is found.
func (t *Tree) AnyIntersecting(rect geom.Rect) bool {
	if rect.Empty() {
		return false
	}
	return anyNode(t.root, rect)
}

func anyNode(n *node, rect geom.Rect) bool {
	if n == nil || !n.bounds.Intersects(rect) {
		return false
	}
	for _, e := range n.entries {
		if e.rect.Intersects(rect) {
			return true
		}
	}
	for _, c := range n.children {
		if anyNode(c, rect) {
			return true
		}
	}
	return false
}

// Clear drops all nodes and side-table entries, resetting the tree to a
// fresh root with the same bounds.
func (t *Tree) Clear() {
	t.root = &node{bounds: t.root.bounds}
	t.index = make(map[Handle]*node)
}

// Rebuild replaces the root rectangle and re-inserts every currently known
// element; callers use this when the world rectangle itself changes.
func (t *Tree) Rebuild(worldBounds geom.Rect, entries map[Handle]geom.Rect) {
	t.root = &node{bounds: worldBounds}
	t.index = make(map[Handle]*node)
	for h, r := range entries {
		// Insert errors here would mean the caller passed a degenerate
		// rect for an already-known element; that's a caller bug, not
		// something Rebuild can meaningfully recover from mid-rehash, so
		// elements with degenerate rects are simply skipped.
		_ = t.Insert(h, r)
	}
}

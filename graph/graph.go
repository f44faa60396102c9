// Package graph implements C9: walking a settled set of ElementGroups'
// NavShape trees into NavPoints, their neighbour/forbidden-connection
// sets, and a canonical ConnectionTable (§4.6).
package graph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"

	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/group"
	"github.com/arl/nav2d/shape"
)

// NavPoint is one graph vertex placed on a NavShape contour vertex.
type NavPoint struct {
	ConnectionID uint32
	Position     geom.Vector2
	// Forbidden is shared by reference among every NavPoint on the same
	// ring (the ring's ids, including this one) — see Build's doc comment
	// on why that sharing is deliberate.
	Forbidden  map[uint32]struct{}
	Neighbours []uint32
}

// ConnectionKey is an unordered NavPoint pair, stored canonically
// (Low < High) so it can serve as a map key without a separate ordering
// step at every lookup.
type ConnectionKey struct {
	Low, High uint32
}

// ConnectionData is deliberately empty: the core pipeline only needs
// connection *existence* (for P6's uniqueness property); per-edge data
// for pathfinding (cost, traversal flags, ...) belongs to a later layer
// this module doesn't implement (§1's non-goals).
type ConnectionData struct{}

// Graph is one Update()'s worth of navigation graph: every NavPoint,
// every connection, and an equivalent katalvlaran/lvlath adjacency view
// for embedders that want a conventional graph-library API rather than
// NavPoint's neighbour slices (read-only; Build populates both from the
// same walk so they never disagree).
type Graph struct {
	Points      []*NavPoint
	Connections map[ConnectionKey]ConnectionData
	Lvlath      *core.Graph

	nextID uint32
}

// Point returns the NavPoint with the given connection id, or nil.
func (g *Graph) Point(id uint32) *NavPoint {
	if id == 0 || int(id) > len(g.Points) {
		return nil
	}
	return g.Points[id-1]
}

// Build walks every group's NavShape trees and produces a fresh Graph.
// The navigation graph is always rebuilt wholesale (§4.5 settlement order
// step iv), never patched incrementally, so Build takes no prior Graph to
// reuse.
//
// §4.6's prose says surfaces contribute only their outer ring, "no holes
// in this system", but testable scenario 4 requires a surface-minus-
// obstacle shape's hole ring to also appear in the graph. This
// implementation resolves that contradiction in scenario 4's favour —
// surface and obstacle NavShape trees are walked identically, depth-first
// (each contour is followed by its own children before the next top-level
// contour, so NavPoint ids are not in breadth-first order), with a fresh
// forbiddenConnections set per non-hole contour and the
// parent's set reused for each hole — since the prose bullet is only true
// in the common case (no obstacles to subtract against), while the walk
// itself doesn't special-case shape.Surface vs shape.Obstacle. See
// DESIGN.md.
func Build(groups map[uint32]*group.Group) *Graph {
	g := &Graph{
		Connections: make(map[ConnectionKey]ConnectionData),
		Lvlath:      core.NewGraph(core.WithWeighted(), core.WithDirected(false)),
		nextID:      1,
	}

	ids := make([]uint32, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		grp := groups[id]
		g.walkTree(&grp.ObstacleShapes)
		g.walkTree(&grp.SurfaceShapes)
	}
	return g
}

func (g *Graph) walkTree(t *shape.Tree) {
	for _, root := range t.Roots() {
		g.walkNode(t, root, nil)
	}
}

// walkNode emits NavPoints for one contour, wires its ring of neighbours
// and connections, then recurses into its children — holes reusing this
// ring's forbidden set, nested outer contours starting a fresh one.
func (g *Graph) walkNode(t *shape.Tree, idx uint32, parentForbidden map[uint32]struct{}) {
	n := t.Node(idx)

	var forbidden map[uint32]struct{}
	if n.Hole && parentForbidden != nil {
		forbidden = parentForbidden
	} else {
		forbidden = make(map[uint32]struct{}, len(n.Points))
	}

	ringIDs := make([]uint32, len(n.Points))
	for i, p := range n.Points {
		ringIDs[i] = g.newPoint(p)
		forbidden[ringIDs[i]] = struct{}{}
	}
	for _, id := range ringIDs {
		g.Points[id-1].Forbidden = forbidden
	}

	count := len(ringIDs)
	for i := 0; i < count; i++ {
		g.connect(ringIDs[i], ringIDs[(i+1)%count])
	}

	for _, child := range n.Children {
		g.walkNode(t, child, forbidden)
	}
}

func (g *Graph) newPoint(p geom.Vector2) uint32 {
	id := g.nextID
	g.nextID++
	g.Points = append(g.Points, &NavPoint{ConnectionID: id, Position: p})
	_ = g.Lvlath.AddVertex(vertexID(id))
	return id
}

// connect wires a and b as mutual neighbours and records their canonical
// connection. Never called twice for the same pair within one Build, since
// every NavPoint id is unique to one ring position (P6).
func (g *Graph) connect(a, b uint32) {
	key := ConnectionKey{Low: a, High: b}
	if key.Low > key.High {
		key.Low, key.High = key.High, key.Low
	}
	if _, dup := g.Connections[key]; dup {
		return
	}
	g.Connections[key] = ConnectionData{}

	pa, pb := g.Points[a-1], g.Points[b-1]
	pa.Neighbours = append(pa.Neighbours, b)
	pb.Neighbours = append(pb.Neighbours, a)

	_, _ = g.Lvlath.AddEdge(vertexID(a), vertexID(b), 1)
}

func vertexID(id uint32) string { return fmt.Sprintf("np%d", id) }

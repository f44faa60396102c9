package clip

import "github.com/arl/nav2d/geom"

// GreinerHormann is the default Engine. It implements the Greiner-Hormann
// polygon clipping algorithm (G. Greiner, K. Hormann, "Efficient Clipping
// of Arbitrary Polygons", ACM TOG 1998) for the two-ring case, folds
// multiple input rings pairwise, and special-cases the no-intersection
// (disjoint / fully-contained) configurations directly rather than routing
// them through the general trace.
//
// Every nav2d caller passes it simple, hole-free rings (each NavElement
// contributes exactly one), so the implementation doesn't need to handle
// self-intersecting or already-holed subjects — see the Engine doc.
type GreinerHormann struct{}

// ghNode is one vertex of a working polygon's circular doubly linked list,
// as the algorithm paper describes: original vertices plus inserted
// intersection vertices, the latter cross-linked to their twin in the
// other polygon's list via neighbor.
type ghNode struct {
	pt                point
	next, prev        *ghNode
	neighbor          *ghNode
	intersect         bool
	entry             bool
	alpha             float64
	visited           bool
}

func buildList(r ring) *ghNode {
	nodes := make([]*ghNode, len(r))
	for i, p := range r {
		nodes[i] = &ghNode{pt: p}
	}
	n := len(nodes)
	for i := 0; i < n; i++ {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}
	return nodes[0]
}

// insertIntersection inserts a new intersection node between edgeStart
// (inclusive) and its current next, ordered by alpha among any
// intersections already inserted on that same edge.
func insertIntersection(edgeStart *ghNode, node *ghNode) {
	cur := edgeStart
	for cur.next.intersect && cur.next.alpha < node.alpha && cur.next != edgeStart {
		cur = cur.next
	}
	node.next = cur.next
	node.prev = cur
	cur.next.prev = node
	cur.next = node
}

// orientedRing is a result loop tagged with its role: a solid outer
// contour, or a hole punched into the outer contour it's attached to.
type orientedRing struct {
	pts  ring
	hole bool
}

// clipTwo runs the full algorithm between two simple rings a (subject) and
// b (clip) for the given op, returning the resulting loops. Inputs are
// assumed free of self-intersection and not already holed.
func clipTwo(a, b ring, op Op) []orientedRing {
	// Normalise both to CCW: the paper's entry/exit table assumes
	// conventional (counter-clockwise) winding.
	if !a.isCCW() {
		a = a.reversed()
	}
	if !b.isCCW() {
		b = b.reversed()
	}

	if !anyIntersection(a, b) {
		return clipDisjointOrNested(a, b, op)
	}

	listA := buildList(a)
	listB := buildList(b)

	// Collect and insert intersections.
	na, nb := len(a), len(b)
	edgeA := make([]*ghNode, na) // edgeA[i] = node that starts edge i in A
	edgeB := make([]*ghNode, nb)
	walk := listA
	for i := 0; i < na; i++ {
		edgeA[i] = walk
		walk = walk.next
		for walk.intersect { // skip over any already-inserted node from a prior edge (shouldn't happen before insertion pass, defensive)
			walk = walk.next
		}
	}
	walk = listB
	for i := 0; i < nb; i++ {
		edgeB[i] = walk
		walk = walk.next
		for walk.intersect {
			walk = walk.next
		}
	}

	nHits := 0
	for i := 0; i < na; i++ {
		p1, p2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			p3, p4 := b[j], b[(j+1)%nb]
			ip, t, u, ok := segIntersect(p1, p2, p3, p4)
			if !ok {
				continue
			}
			nodeA := &ghNode{pt: ip, intersect: true, alpha: t}
			nodeB := &ghNode{pt: ip, intersect: true, alpha: u}
			nodeA.neighbor = nodeB
			nodeB.neighbor = nodeA
			insertIntersection(edgeA[i], nodeA)
			insertIntersection(edgeB[j], nodeB)
			nHits++
		}
	}
	if nHits == 0 {
		// All candidate crossings were rejected by segIntersect's endpoint
		// tolerance (tangencies only): treat as the no-intersection case.
		return clipDisjointOrNested(a, b, op)
	}

	markEntryExit(listA, b, op, true)
	markEntryExit(listB, a, op, false)

	out := trace(listA)
	if op == Difference {
		// Crossing boundaries leave no enclosed hole: every traced loop of
		// a difference is solid, whatever its winding.
		for i := range out {
			out[i].hole = false
		}
	}
	return out
}

func markEntryExit(list *ghNode, other ring, op Op, isSubject bool) {
	// status holds whether the list's reference vertex (its non-intersection
	// head) starts out inside other.
	status := pointInPolygon(list.pt, other)
	// Table from Greiner & Hormann 1998: entry_seed = status, except for the
	// clip operand of a difference, where it's inverted (same row as plain
	// intersection), so the trace keeps the subject's part outside the clip.
	invert := op == Difference && !isSubject
	entry := status != invert // XOR: invert flips status, !invert keeps it
	for n := list; ; n = n.next {
		if n.intersect {
			n.entry = entry
			entry = !entry
		}
		if n.next == list {
			break
		}
	}
}

// trace walks every not-yet-consumed intersection vertex in listA's loop,
// switching lists at each intersection via neighbor, per the algorithm's
// published tracing rule: the entry flag of the vertex a segment starts
// from decides whether that segment walks forward or backward.
func trace(listA *ghNode) []orientedRing {
	var out []orientedRing
	for start := listA; ; start = start.next {
		if start.intersect && !start.visited {
			out = append(out, orientedRing{pts: traceFrom(start)})
		}
		if start.next == listA {
			break
		}
	}
	for i := range out {
		out[i].hole = !out[i].pts.isCCW()
	}
	// Drop degenerate (collapsed) loops.
	filtered := out[:0]
	for _, o := range out {
		if len(o.pts) >= 3 {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func traceFrom(start *ghNode) ring {
	var pts ring
	cur := start
	markVisited(cur)
	pts = append(pts, cur.pt)
	for {
		forward := cur.entry
		for {
			if forward {
				cur = cur.next
			} else {
				cur = cur.prev
			}
			pts = append(pts, cur.pt)
			if cur.intersect {
				markVisited(cur)
				break
			}
		}
		cur = cur.neighbor
		if cur == start {
			break
		}
	}
	return pts
}

func markVisited(n *ghNode) {
	n.visited = true
	if n.neighbor != nil {
		n.neighbor.visited = true
	}
}

// clipDisjointOrNested handles the case where a and b's boundaries never
// cross: either they're disjoint, or one fully contains the other.
func clipDisjointOrNested(a, b ring, op Op) []orientedRing {
	aInB := len(a) > 0 && contains(b, a)
	bInA := len(b) > 0 && contains(a, b)

	switch op {
	case Union:
		switch {
		case aInB:
			return []orientedRing{{pts: b, hole: false}}
		case bInA:
			return []orientedRing{{pts: a, hole: false}}
		default:
			return []orientedRing{{pts: a, hole: false}, {pts: b, hole: false}}
		}
	case Difference: // a - b
		switch {
		case aInB:
			return nil // a entirely consumed
		case bInA:
			return []orientedRing{
				{pts: a, hole: false},
				{pts: b.reversed(), hole: true},
			}
		default:
			return []orientedRing{{pts: a, hole: false}} // b irrelevant to a
		}
	}
	return nil
}

// Execute implements Engine. For Union it folds subjects and clips
// together into one region. For Difference it folds clips out of the
// (already internally unioned) subjects, one ring at a time.
func (GreinerHormann) Execute(subjectsIP, clipsIP [][]geom.IntPoint, op Op, fill FillRule) (*PolyTree, error) {
	tree := NewPolyTree()
	if len(subjectsIP) == 0 {
		return tree, nil
	}

	subjects := make([]ring, len(subjectsIP))
	for i, s := range subjectsIP {
		subjects[i] = toRing(s)
	}

	switch op {
	case Union:
		all := append(subjects, toRings(clipsIP)...)
		solids := unionFold(all)
		for _, s := range solids {
			tree.addChild(nil, s.toIntPoints(), false)
		}
	case Difference:
		if len(subjectsIP) != 1 {
			return nil, geom.NewEngineFailure("difference requires exactly one subject ring, got %d", len(subjectsIP))
		}
		clips := toRings(clipsIP)
		outer, holes := differenceFold(subjects[0], clips)
		parent := tree.addChild(nil, outer.toIntPoints(), false)
		for _, h := range holes {
			tree.addChild(parent, h.toIntPoints(), true)
		}
	}
	return tree, nil
}

func toRings(ips [][]geom.IntPoint) []ring {
	out := make([]ring, len(ips))
	for i, ip := range ips {
		out[i] = toRing(ip)
	}
	return out
}

// unionFold folds a list of solid rings into the minimal set of disjoint
// outer loops covering their union. Rings sharing an AABB-overlap chain are
// merged via repeated pairwise clipTwo(Union); non-overlapping rings stay
// separate. No hole is ever produced: when a pairwise union yields several
// loops (rings enclosing a gap), the largest becomes the merged body and
// the others are kept as separate solid rings.
func unionFold(rs []ring) []ring {
	var acc []ring
	for _, r := range rs {
		merged := r
		var rest []ring
		for _, a := range acc {
			if anyIntersection(a, merged) || contains(a, merged) || contains(merged, a) {
				res := clipTwo(merged, a, Union)
				if len(res) == 1 {
					merged = res[0].pts
				} else {
					// Degenerate multi-loop union result (e.g. ring
					// arrangement enclosing a gap): keep the largest loop
					// as the merged body and push the rest back for a
					// later pass.
					best := 0
					for i := range res {
						if absArea(res[i].pts) > absArea(res[best].pts) {
							best = i
						}
					}
					merged = res[best].pts
					for i := range res {
						if i != best {
							rest = append(rest, res[i].pts)
						}
					}
				}
				continue
			}
			rest = append(rest, a)
		}
		acc = append(rest, merged)
	}
	return acc
}

// differenceFold subtracts every ring in clips from subject, tracking the
// resulting outer boundary and any holes punched into it.
func differenceFold(subject ring, clips []ring) (ring, []ring) {
	outer := subject
	var holes []ring
	for _, c := range clips {
		if !anyIntersection(outer, c) && !contains(outer, c) && !contains(c, outer) {
			continue // disjoint, no effect
		}
		res := clipTwo(outer, c, Difference)
		switch {
		case len(res) == 0:
			// outer fully consumed; nothing left to subtract further from.
			outer = nil
			holes = nil
		case len(res) == 1 && !res[0].hole:
			outer = res[0].pts
		default:
			for _, r := range res {
				if r.hole {
					holes = append(holes, r.pts)
				} else {
					outer = r.pts
				}
			}
		}
		if outer == nil {
			break
		}
	}
	return outer, holes
}

func absArea(r ring) float64 {
	a := r.signedArea()
	if a < 0 {
		return -a
	}
	return a
}

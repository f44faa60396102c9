// Package grouping implements C8, the grouping coordinator: the
// union-find-style regroup protocol driven by quadtree AABB-overlap
// queries, and the dismantle-on-refresh/move/remove half of §4.5.
package grouping

import (
	"github.com/arl/nav2d/element"
	"github.com/arl/nav2d/group"
)

// NeighbourQuery resolves the quadtree neighbours of an element — everyone
// (including e itself) whose AABB intersects e's rect. Injected by the
// caller (package nav2d) so grouping never has to know about the quadtree
// or the element-handle arena.
type NeighbourQuery func(e *element.NavElement) []*element.NavElement

// Coordinator owns the group table, the next group id, the regroup queue,
// and the set of group ids pending a Rebuild this Update().
type Coordinator struct {
	groups map[uint32]*group.Group
	nextID uint32

	queue  []*element.NavElement
	queued map[*element.NavElement]struct{}

	rebuildSet map[uint32]struct{}
}

// New returns an empty coordinator; group ids start at 1 (0 means
// unassigned, per §3).
func New() *Coordinator {
	return &Coordinator{
		groups:     make(map[uint32]*group.Group),
		nextID:     1,
		queued:     make(map[*element.NavElement]struct{}),
		rebuildSet: make(map[uint32]struct{}),
	}
}

func (c *Coordinator) newID() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

// Group looks up a group by id.
func (c *Coordinator) Group(id uint32) (*group.Group, bool) {
	g, ok := c.groups[id]
	return g, ok
}

// Groups returns every currently-live group, keyed by id. Callers must
// treat the map as read-only.
func (c *Coordinator) Groups() map[uint32]*group.Group { return c.groups }

// Pending reports whether the regroup queue has unprocessed elements.
func (c *Coordinator) Pending() bool { return len(c.queue) > 0 }

// CancelQueued drops e from the regroup queue without processing it —
// used when e is being permanently deleted (RemoveNavElement), where
// Dismantle would otherwise re-enqueue it pointlessly.
func (c *Coordinator) CancelQueued(e *element.NavElement) {
	delete(c.queued, e)
	for i, q := range c.queue {
		if q == e {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

// Enqueue pushes e onto the regroup queue unless it's already pending.
func (c *Coordinator) Enqueue(e *element.NavElement) {
	if _, ok := c.queued[e]; ok {
		return
	}
	c.queued[e] = struct{}{}
	c.queue = append(c.queue, e)
}

// Dismantle clears every member of the group with the given id, enqueuing
// each one for regroup, and drops the group from the table — §4.5(b), and
// the group-side of §4.2 step 5.
func (c *Coordinator) Dismantle(id uint32) {
	if id == 0 {
		return
	}
	g, ok := c.groups[id]
	if !ok {
		return
	}
	for _, e := range g.Obstacles {
		e.SetGroupID(0)
		c.Enqueue(e)
	}
	for _, e := range g.Surfaces {
		e.SetGroupID(0)
		c.Enqueue(e)
	}
	delete(c.groups, id)
	delete(c.rebuildSet, id)
}

// DismantleGroupOf dismantles e's current group, if any, then enqueues e
// itself — the exact action §4.2 step 5 asks NavElement.Refresh to trigger,
// and what a move must do before repositioning e (§4.5(b)).
// RemoveNavElement does not use it: it calls Dismantle and then
// CancelQueued, so the deleted element is not re-enqueued.
func (c *Coordinator) DismantleGroupOf(e *element.NavElement) {
	c.Dismantle(e.GroupID())
	c.Enqueue(e)
}

// Forget removes e from its group (if any) without enqueuing anything,
// for an element that is deleted rather than moved; the remaining members
// keep their group. (RemoveNavElement dismantles the group instead.)
func (c *Coordinator) Forget(e *element.NavElement) {
	if id := e.GroupID(); id != 0 {
		if g, ok := c.groups[id]; ok {
			g.Remove(e)
			if g.Empty() {
				delete(c.groups, id)
				delete(c.rebuildSet, id)
			}
		}
	}
	delete(c.queued, e)
}

// Drain runs element-level regroup (§4.5(a)) on every element in the
// queue, using query to resolve quadtree neighbours, until the queue is
// empty. A "seen" set ensures each element is processed at most once per
// Drain call, per §4.5's settlement-order note.
func (c *Coordinator) Drain(query NeighbourQuery) {
	seen := make(map[*element.NavElement]struct{})
	for len(c.queue) > 0 {
		e := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.queued, e)
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		c.regroupElement(e, query(e))
	}
}

// regroupElement implements §4.5(a) for one element e given its resolved
// quadtree neighbour set C (which includes e itself).
func (c *Coordinator) regroupElement(e *element.NavElement, neighbours []*element.NavElement) {
	ids := make(map[uint32]struct{})
	for _, n := range neighbours {
		if gid := n.GroupID(); gid != 0 {
			ids[gid] = struct{}{}
		}
	}

	switch len(ids) {
	case 0:
		id := c.newID()
		g := group.New(id)
		for _, n := range neighbours {
			g.Add(n)
			if n != e {
				c.Enqueue(n)
			}
		}
		c.groups[id] = g
		c.rebuildSet[id] = struct{}{}

	case 1:
		var id uint32
		for k := range ids {
			id = k
		}
		g := c.groups[id]
		for _, n := range neighbours {
			if n.GroupID() != id {
				g.Add(n)
				c.Enqueue(n)
			}
		}
		c.rebuildSet[id] = struct{}{}

	default:
		id := c.newID()
		fresh := group.New(id)
		touched := make(map[uint32]struct{})
		for _, n := range neighbours {
			if old := n.GroupID(); old != 0 {
				if oldG, ok := c.groups[old]; ok {
					oldG.Remove(n)
					touched[old] = struct{}{}
				}
			}
			fresh.Add(n)
			if n != e {
				c.Enqueue(n)
			}
		}
		c.groups[id] = fresh
		c.rebuildSet[id] = struct{}{}
		for old := range touched {
			if g, ok := c.groups[old]; ok && g.Empty() {
				delete(c.groups, old)
				delete(c.rebuildSet, old)
			}
		}
	}
}

// TakeRebuildSet returns (and clears) the set of group ids that need
// ElementGroup.Rebuild this Update(), skipping any id that no longer
// exists (it was dismantled again, or emptied out, after being marked).
func (c *Coordinator) TakeRebuildSet() []uint32 {
	out := make([]uint32, 0, len(c.rebuildSet))
	for id := range c.rebuildSet {
		if _, ok := c.groups[id]; ok {
			out = append(out, id)
		}
	}
	c.rebuildSet = make(map[uint32]struct{})
	return out
}

// Package nav2d is C10, the facade: lifecycle, the edit API, and the
// single Update() settlement step that drives C5 through C9 into a
// consistent post-edit state.
package nav2d

import (
	"github.com/google/uuid"

	"github.com/arl/nav2d/clip"
	"github.com/arl/nav2d/element"
	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/graph"
	"github.com/arl/nav2d/grouping"
	"github.com/arl/nav2d/offset"
	"github.com/arl/nav2d/quadtree"
)

// Nav2D owns every NavElement, every ElementGroup (via its grouping
// coordinator), the quadtree, and the navigation graph — per §3's
// ownership rules, everything else holds non-owning references (a
// group-id, a quadtree handle).
type Nav2D struct {
	agentRadius float32
	accuracy    geom.Accuracy
	worldBounds geom.Rect

	offsetEngine offset.Engine
	clipEngine   clip.Engine
	ctx          *BuildContext

	elements   map[uuid.UUID]*element.NavElement
	handles    map[uuid.UUID]quadtree.Handle
	byHandle   map[quadtree.Handle]*element.NavElement
	nextHandle quadtree.Handle

	quad  *quadtree.Tree
	coord *grouping.Coordinator
	graph *graph.Graph

	onPointsRefreshed func(*element.NavElement)
}

// New constructs a Nav2D over the authored world rectangle. Rejects with
// InvalidWorld when the rectangle's area is below 1 unit² (§4.7).
func New(minCorner, maxCorner geom.Vector2, agentRadius float32, accuracy geom.Accuracy) (*Nav2D, error) {
	rect := geom.NewRect(minCorner, maxCorner)
	if rect.Area() < 1 {
		return nil, geom.NewInvalidWorld("world rectangle area %g is below the minimum of 1", rect.Area())
	}
	return &Nav2D{
		agentRadius:  agentRadius,
		accuracy:     accuracy,
		worldBounds:  rect,
		offsetEngine: offset.Miter{},
		clipEngine:   clip.GreinerHormann{},
		ctx:          NewBuildContext(false, nil),
		elements:     make(map[uuid.UUID]*element.NavElement),
		handles:      make(map[uuid.UUID]quadtree.Handle),
		byHandle:     make(map[quadtree.Handle]*element.NavElement),
		nextHandle:   1,
		quad:         quadtree.New(rect.ExpandedFromCenter(2)),
		coord:        grouping.New(),
		graph:        &graph.Graph{},
	}, nil
}

// SetOffsetEngine installs a non-default offset.Engine (§6.2: nav2d only
// ever talks to it through this interface).
func (n *Nav2D) SetOffsetEngine(eng offset.Engine) { n.offsetEngine = eng }

// SetClipEngine installs a non-default clip.Engine.
func (n *Nav2D) SetClipEngine(eng clip.Engine) { n.clipEngine = eng }

// SetContext installs a logging/timing sink for the settlement phases.
func (n *Nav2D) SetContext(ctx *BuildContext) { n.ctx = ctx }

// OnPointsRefreshed registers the observer hook §6.3 describes: called
// once per element, right after §4.2 step 6 clears its dirty flag.
func (n *Nav2D) OnPointsRefreshed(fn func(*element.NavElement)) { n.onPointsRefreshed = fn }

// AddObstacle authors a new impassable NavElement from an explicit convex
// CCW polygon.
func (n *Nav2D) AddObstacle(points []geom.Vector2, position geom.Vector2, rotation float32, extraOffset float32) (*element.NavElement, error) {
	return n.add(element.Obstacle, points, position, rotation, 0, extraOffset)
}

// AddObstacleRadius authors a regular-hexagon obstacle approximating a
// disc of the given circumradius (§4.7).
func (n *Nav2D) AddObstacleRadius(radius float32, position geom.Vector2, extraOffset float32) (*element.NavElement, error) {
	return n.add(element.Obstacle, element.Hexagon(radius), position, 0, 0, extraOffset)
}

// AddSurface authors a new traversable, cost-bearing NavElement from an
// explicit convex CCW polygon.
func (n *Nav2D) AddSurface(points []geom.Vector2, position geom.Vector2, rotation, cost, extraOffset float32) (*element.NavElement, error) {
	return n.add(element.Surface, points, position, rotation, cost, extraOffset)
}

// AddSurfaceRadius authors a regular-hexagon surface approximating a disc.
func (n *Nav2D) AddSurfaceRadius(radius float32, position geom.Vector2, cost, extraOffset float32) (*element.NavElement, error) {
	return n.add(element.Surface, element.Hexagon(radius), position, 0, cost, extraOffset)
}

func (n *Nav2D) add(typ element.Type, points []geom.Vector2, position geom.Vector2, rotation, cost, extraOffset float32) (*element.NavElement, error) {
	e, err := element.New(typ, points, position, rotation, cost, extraOffset)
	if err != nil {
		return nil, err
	}
	n.elements[e.ID] = e
	h := n.nextHandle
	n.nextHandle++
	n.handles[e.ID] = h
	n.byHandle[h] = e
	return e, nil
}

// RemoveNavElement detaches e, dismantles its current group (if any), and
// settles immediately — unlike some source variants, removal is never
// left observably stale until the next edit (Design Notes). Idempotent:
// removing an element twice, or one never added to this Nav2D, is a no-op.
func (n *Nav2D) RemoveNavElement(e *element.NavElement) error {
	h, ok := n.handles[e.ID]
	if !ok {
		return nil
	}

	n.coord.Dismantle(e.GroupID())
	n.coord.CancelQueued(e)
	n.quad.Remove(h)
	delete(n.elements, e.ID)
	delete(n.handles, e.ID)
	delete(n.byHandle, h)

	return n.Update()
}

// Update settles the pipeline to quiescence: refresh dirty elements,
// drain the regroup queue, rebuild affected groups, rebuild the
// navigation graph (§4.5's settlement order). A no-op if nothing is
// dirty and nothing is pending regroup (P7).
func (n *Nav2D) Update() error {
	if !n.anyDirty() && !n.coord.Pending() {
		return nil
	}

	n.ctx.Progressf("refreshing dirty elements")
	n.ctx.StartTimer(TimerRefresh)
	for _, e := range n.elements {
		if !e.Dirty() {
			continue
		}
		hadGroup := e.GroupID()
		if err := e.Refresh(n.agentRadius, n.accuracy, n.offsetEngine); err != nil {
			n.ctx.StopTimer(TimerRefresh)
			return err
		}
		if err := n.reindex(e); err != nil {
			n.ctx.StopTimer(TimerRefresh)
			return err
		}
		if hadGroup != 0 {
			n.coord.Dismantle(hadGroup)
		}
		n.coord.Enqueue(e)
		if n.onPointsRefreshed != nil {
			n.onPointsRefreshed(e)
		}
	}
	n.ctx.StopTimer(TimerRefresh)

	n.ctx.Progressf("draining regroup queue")
	n.ctx.StartTimer(TimerRegroup)
	n.coord.Drain(n.neighboursOf)
	n.ctx.StopTimer(TimerRegroup)

	n.ctx.Progressf("rebuilding group shapes")
	n.ctx.StartTimer(TimerRebuildGroups)
	for _, id := range n.coord.TakeRebuildSet() {
		g, ok := n.coord.Group(id)
		if !ok {
			continue
		}
		if err := g.Rebuild(n.accuracy, n.clipEngine); err != nil {
			n.ctx.StopTimer(TimerRebuildGroups)
			return err
		}
	}
	n.ctx.StopTimer(TimerRebuildGroups)

	n.ctx.Progressf("rebuilding navigation graph")
	n.ctx.StartTimer(TimerRebuildGraph)
	n.graph = graph.Build(n.coord.Groups())
	n.ctx.StopTimer(TimerRebuildGraph)
	return nil
}

func (n *Nav2D) anyDirty() bool {
	for _, e := range n.elements {
		if e.Dirty() {
			return true
		}
	}
	return false
}

// reindex performs §4.2 step 3: first-time insert, or move-in-place.
func (n *Nav2D) reindex(e *element.NavElement) error {
	h := n.handles[e.ID]
	rect := e.AABB()
	if !e.InQuadtree() {
		if err := n.quad.Insert(h, rect); err != nil {
			return err
		}
		e.MarkQuadtreeInserted()
		return nil
	}
	return n.quad.Move(h, rect)
}

// neighboursOf resolves e's quadtree neighbours — every element (e
// included) whose AABB intersects e's rect — for the grouping
// coordinator's element-level regroup (§4.5a).
func (n *Nav2D) neighboursOf(e *element.NavElement) []*element.NavElement {
	if _, ok := n.handles[e.ID]; !ok {
		return nil
	}
	handles := n.quad.QueryIntersecting(e.AABB(), nil)
	out := make([]*element.NavElement, 0, len(handles))
	for _, hh := range handles {
		if ne, ok := n.byHandle[hh]; ok {
			out = append(out, ne)
		}
	}
	return out
}

// Obstacles returns every currently-registered obstacle element.
func (n *Nav2D) Obstacles() []*element.NavElement { return n.byType(element.Obstacle) }

// Surfaces returns every currently-registered surface element.
func (n *Nav2D) Surfaces() []*element.NavElement { return n.byType(element.Surface) }

func (n *Nav2D) byType(typ element.Type) []*element.NavElement {
	var out []*element.NavElement
	for _, e := range n.elements {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// NavPoints returns the navigation graph's current vertex set, as of the
// last Update().
func (n *Nav2D) NavPoints() []*graph.NavPoint { return n.graph.Points }

// Connections returns the navigation graph's current connection table.
func (n *Nav2D) Connections() map[graph.ConnectionKey]graph.ConnectionData {
	return n.graph.Connections
}

// WorldBounds returns the authored world rectangle.
func (n *Nav2D) WorldBounds() geom.Rect { return n.worldBounds }

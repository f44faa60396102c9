package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/group"
	"github.com/arl/nav2d/shape"
)

func triangle(offset float32) []geom.Vector2 {
	return []geom.Vector2{
		geom.Vec2(offset+0, 0),
		geom.Vec2(offset+1, 0),
		geom.Vec2(offset+0, 1),
	}
}

func TestBuildWalksSingleRootRing(t *testing.T) {
	g := group.New(1)
	g.ObstacleShapes.AddRoot(triangle(0), shape.Obstacle)

	graph := Build(map[uint32]*group.Group{1: g})

	require.Len(t, graph.Points, 3)
	assert.Len(t, graph.Connections, 3)
	for _, p := range graph.Points {
		assert.Len(t, p.Neighbours, 2)
		assert.Len(t, p.Forbidden, 3)
	}
}

func TestBuildSharesForbiddenSetBetweenRingAndHole(t *testing.T) {
	g := group.New(1)
	root := g.SurfaceShapes.AddRoot(triangle(0), shape.Surface)
	g.SurfaceShapes.AddChild(root, triangle(10), true, shape.Surface)

	graph := Build(map[uint32]*group.Group{1: g})

	require.Len(t, graph.Points, 6)
	// Every point's Forbidden set spans both the outer ring and its hole.
	for _, p := range graph.Points {
		assert.Len(t, p.Forbidden, 6)
	}
	assert.Len(t, graph.Connections, 6)
}

func TestBuildPopulatesLvlathView(t *testing.T) {
	g := group.New(1)
	g.ObstacleShapes.AddRoot(triangle(0), shape.Obstacle)

	graph := Build(map[uint32]*group.Group{1: g})

	order, _ := graph.Lvlath.VertexCount(), graph.Lvlath.EdgeCount()
	assert.Equal(t, 3, order)
}

func TestPointLookup(t *testing.T) {
	g := group.New(1)
	g.ObstacleShapes.AddRoot(triangle(0), shape.Obstacle)
	graph := Build(map[uint32]*group.Group{1: g})

	assert.NotNil(t, graph.Point(1))
	assert.Nil(t, graph.Point(0))
	assert.Nil(t, graph.Point(999))
}

func TestBuildIsDeterministicAcrossGroupOrder(t *testing.T) {
	g1 := group.New(1)
	g1.ObstacleShapes.AddRoot(triangle(0), shape.Obstacle)
	g2 := group.New(2)
	g2.ObstacleShapes.AddRoot(triangle(100), shape.Obstacle)

	a := Build(map[uint32]*group.Group{1: g1, 2: g2})
	b := Build(map[uint32]*group.Group{2: g2, 1: g1})

	require.Len(t, a.Points, 6)
	require.Len(t, b.Points, 6)
	for i := range a.Points {
		assert.Equal(t, a.Points[i].Position, b.Points[i].Position)
	}
}

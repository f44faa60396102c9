package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/clip"
	"github.com/arl/nav2d/element"
	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/offset"
)

func square(minX, minY, maxX, maxY float32) []geom.Vector2 {
	return []geom.Vector2{
		geom.Vec2(minX, minY),
		geom.Vec2(maxX, minY),
		geom.Vec2(maxX, maxY),
		geom.Vec2(minX, maxY),
	}
}

func newRefreshed(t *testing.T, typ element.Type, pts []geom.Vector2, pos geom.Vector2) *element.NavElement {
	t.Helper()
	e, err := element.New(typ, pts, pos, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, e.Refresh(0, geom.Accuracy1, offset.Miter{}))
	return e
}

func TestAddSortsByType(t *testing.T) {
	g := New(1)
	o := newRefreshed(t, element.Obstacle, square(0, 0, 10, 10), geom.Vector2{})
	s := newRefreshed(t, element.Surface, square(0, 0, 20, 20), geom.Vector2{})

	g.Add(o)
	g.Add(s)

	assert.Equal(t, []*element.NavElement{o}, g.Obstacles)
	assert.Equal(t, []*element.NavElement{s}, g.Surfaces)
	assert.Equal(t, uint32(1), o.GroupID())
	assert.Equal(t, uint32(1), s.GroupID())
}

func TestRemoveClearsGroupID(t *testing.T) {
	g := New(1)
	o := newRefreshed(t, element.Obstacle, square(0, 0, 10, 10), geom.Vector2{})
	g.Add(o)

	assert.True(t, g.Remove(o))
	assert.False(t, g.Remove(o))
	assert.Equal(t, uint32(0), o.GroupID())
	assert.True(t, g.Empty())
}

func TestRebuildSingleObstacleFastPath(t *testing.T) {
	g := New(1)
	o := newRefreshed(t, element.Obstacle, square(0, 0, 10, 10), geom.Vector2{})
	g.Add(o)

	require.NoError(t, g.Rebuild(geom.Accuracy100, clip.GreinerHormann{}))
	require.Equal(t, 1, g.ObstacleShapes.Len())
	assert.False(t, g.ObstacleShapes.Node(0).Hole)
	assert.Equal(t, 0, g.SurfaceShapes.Len())
}

func TestRebuildSurfacesOnlyFastPath(t *testing.T) {
	g := New(1)
	s := newRefreshed(t, element.Surface, square(0, 0, 10, 10), geom.Vector2{})
	g.Add(s)

	require.NoError(t, g.Rebuild(geom.Accuracy100, clip.GreinerHormann{}))
	require.Equal(t, 1, g.SurfaceShapes.Len())
	assert.Equal(t, 0, g.ObstacleShapes.Len())
}

func TestRebuildUnionsOverlappingObstacles(t *testing.T) {
	g := New(1)
	a := newRefreshed(t, element.Obstacle, square(0, 0, 10, 10), geom.Vector2{})
	b := newRefreshed(t, element.Obstacle, square(5, 5, 15, 15), geom.Vector2{})
	g.Add(a)
	g.Add(b)

	require.NoError(t, g.Rebuild(geom.Accuracy100, clip.GreinerHormann{}))
	require.Equal(t, 1, g.ObstacleShapes.Len())
	assert.False(t, g.ObstacleShapes.Node(0).Hole)
}

func TestRebuildSurfaceMinusObstacleProducesHole(t *testing.T) {
	g := New(1)
	surface := newRefreshed(t, element.Surface, square(0, 0, 20, 20), geom.Vector2{})
	obstacle := newRefreshed(t, element.Obstacle, square(5, 5, 10, 10), geom.Vector2{})
	g.Add(surface)
	g.Add(obstacle)

	require.NoError(t, g.Rebuild(geom.Accuracy100, clip.GreinerHormann{}))
	require.Equal(t, 1, g.ObstacleShapes.Len())
	require.Equal(t, 2, g.SurfaceShapes.Len())

	outer := g.SurfaceShapes.Node(0)
	assert.False(t, outer.Hole)
	require.Len(t, outer.Children, 1)
	assert.True(t, g.SurfaceShapes.Node(outer.Children[0]).Hole)
}

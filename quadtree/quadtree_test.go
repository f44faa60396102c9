package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/geom"
)

func world() geom.Rect {
	return geom.NewRect(geom.Vec2(-100, -100), geom.Vec2(100, 100))
}

func TestInsertRejectsEmptyRect(t *testing.T) {
	tr := New(world())
	err := tr.Insert(1, geom.Rect{})
	assert.Error(t, err)
}

func TestQueryIntersectingFindsOverlap(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))
	require.NoError(t, tr.Insert(2, geom.NewRect(geom.Vec2(50, 50), geom.Vec2(60, 60))))

	got := tr.QueryIntersecting(geom.NewRect(geom.Vec2(5, 5), geom.Vec2(15, 15)), nil)
	assert.ElementsMatch(t, []Handle{1}, got)
}

func TestQueryIntersectingEmptyRectYieldsNothing(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))
	got := tr.QueryIntersecting(geom.Rect{}, nil)
	assert.Empty(t, got)
}

func TestRemoveThenQueryFindsNothing(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))
	assert.True(t, tr.Remove(1))
	assert.False(t, tr.Remove(1))

	got := tr.QueryIntersecting(geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10)), nil)
	assert.Empty(t, got)
}

func TestMoveRelocatesEntry(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))
	require.NoError(t, tr.Move(1, geom.NewRect(geom.Vec2(80, 80), geom.Vec2(90, 90))))

	assert.Empty(t, tr.QueryIntersecting(geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10)), nil))
	got := tr.QueryIntersecting(geom.NewRect(geom.Vec2(80, 80), geom.Vec2(90, 90)), nil)
	assert.ElementsMatch(t, []Handle{1}, got)
}

func TestAnyIntersecting(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))

	assert.True(t, tr.AnyIntersecting(geom.NewRect(geom.Vec2(5, 5), geom.Vec2(15, 15))))
	assert.False(t, tr.AnyIntersecting(geom.NewRect(geom.Vec2(50, 50), geom.Vec2(60, 60))))
}

func TestRebuildReindexesEverything(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))

	newWorld := geom.NewRect(geom.Vec2(-200, -200), geom.Vec2(200, 200))
	tr.Rebuild(newWorld, map[Handle]geom.Rect{1: geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))})

	assert.Equal(t, newWorld, tr.Bounds())
	got := tr.QueryIntersecting(geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10)), nil)
	assert.ElementsMatch(t, []Handle{1}, got)
}

func TestClearResetsTree(t *testing.T) {
	tr := New(world())
	require.NoError(t, tr.Insert(1, geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10))))
	tr.Clear()
	assert.Empty(t, tr.QueryIntersecting(geom.NewRect(geom.Vec2(0, 0), geom.Vec2(10, 10)), nil))
}

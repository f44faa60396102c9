package element

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/geom"
	"github.com/arl/nav2d/offset"
)

// identityEngine returns its input ring unchanged, ignoring distance, so
// Refresh's world-point arithmetic can be tested in isolation from the
// offset engine itself (which offset_test.go already covers).
type identityEngine struct{}

func (identityEngine) Offset(ring []geom.IntPoint, _ offset.JoinType, _ offset.EndType, _ int64) ([][]geom.IntPoint, error) {
	out := make([]geom.IntPoint, len(ring))
	copy(out, ring)
	return [][]geom.IntPoint{out}, nil
}

type failingEngine struct{ err error }

func (f failingEngine) Offset(ring []geom.IntPoint, _ offset.JoinType, _ offset.EndType, _ int64) ([][]geom.IntPoint, error) {
	return nil, f.err
}

func TestNewRejectsInvalidPolygon(t *testing.T) {
	_, err := New(Obstacle, []geom.Vector2{geom.Vec2(0, 0), geom.Vec2(1, 0)}, geom.Vector2{}, 0, 0, 0)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestNewRejectsNegativeExtraOffset(t *testing.T) {
	_, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, -1)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestNewStartsDirty(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, e.Dirty())
	assert.Equal(t, uint32(0), e.GroupID())
	assert.False(t, e.InQuadtree())
}

func TestRefreshTranslatesWorldPoints(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vec2(100, 200), 0, 0, 0)
	require.NoError(t, err)

	require.NoError(t, e.Refresh(0, geom.Accuracy1, identityEngine{}))
	assert.False(t, e.Dirty())

	want := geom.Vec2(100, 200)
	got := e.WorldPoints()[0]
	assert.True(t, got.ApproxEqual(want, 1e-4))
}

func TestRefreshIsNoopWhenNotDirty(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, e.Refresh(0, geom.Accuracy1, identityEngine{}))
	require.False(t, e.Dirty())

	// A second Refresh call must not touch the engine at all; a failing
	// engine would surface as an error if it were invoked.
	assert.NoError(t, e.Refresh(0, geom.Accuracy1, failingEngine{err: errors.New("must not be called")}))
}

func TestSetPoseFlipsDirtyOnlyWhenChanged(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, e.Refresh(0, geom.Accuracy1, identityEngine{}))
	require.False(t, e.Dirty())

	e.SetPose(geom.Vector2{}, 0)
	assert.False(t, e.Dirty(), "identical pose must not dirty the element")

	e.SetPose(geom.Vec2(1, 1), 0)
	assert.True(t, e.Dirty())
}

func TestSetExtraOffsetFlipsBothDirtyFlags(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, e.Refresh(0, geom.Accuracy1, identityEngine{}))

	require.NoError(t, e.SetExtraOffset(5))
	assert.True(t, e.Dirty())
	assert.True(t, e.extendDirty)

	err = e.SetExtraOffset(-1)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestRefreshPropagatesEngineError(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	wantErr := errors.New("boom")
	err = e.Refresh(0, geom.Accuracy1, failingEngine{err: wantErr})
	assert.ErrorIs(t, err, wantErr)
}

func TestHexagonHasSixVertices(t *testing.T) {
	pts := Hexagon(10)
	assert.Len(t, pts, 6)
	for _, p := range pts {
		assert.InDelta(t, 10.0, float64(p.Length()), 1e-3)
	}
}

func TestGroupIDRoundTrip(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	e.SetGroupID(7)
	assert.Equal(t, uint32(7), e.GroupID())
}

func TestMarkQuadtreeInserted(t *testing.T) {
	e, err := New(Obstacle, ccwSquare(), geom.Vector2{}, 0, 0, 0)
	require.NoError(t, err)
	assert.False(t, e.InQuadtree())
	e.MarkQuadtreeInserted()
	assert.True(t, e.InQuadtree())
}

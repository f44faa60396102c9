package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/geom"
)

func square(x0, y0, x1, y1 int64) []geom.IntPoint {
	return []geom.IntPoint{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestMiterOffsetSquare(t *testing.T) {
	ring := square(0, 0, 10, 10)
	out, err := Miter{}.Offset(ring, JoinMiter, EndClosedPolygon, 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, square(-5, -5, 15, 15), out[0])
}

func TestMiterOffsetZeroDistanceIsIdentity(t *testing.T) {
	ring := square(0, 0, 10, 10)
	out, err := Miter{}.Offset(ring, JoinMiter, EndClosedPolygon, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ring, out[0])
}

func TestMiterOffsetRejectsTooFewVertices(t *testing.T) {
	_, err := Miter{}.Offset([]geom.IntPoint{{X: 0, Y: 0}, {X: 1, Y: 0}}, JoinMiter, EndClosedPolygon, 5)
	assert.Error(t, err)
}

func TestMiterOffsetRejectsDegenerateEdge(t *testing.T) {
	ring := []geom.IntPoint{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 10}}
	_, err := Miter{}.Offset(ring, JoinMiter, EndClosedPolygon, 5)
	assert.Error(t, err)
}

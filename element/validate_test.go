package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/nav2d/geom"
)

func ccwSquare() []geom.Vector2 {
	return []geom.Vector2{
		geom.Vec2(0, 0),
		geom.Vec2(10, 0),
		geom.Vec2(10, 10),
		geom.Vec2(0, 10),
	}
}

func TestValidateAcceptsConvexCCW(t *testing.T) {
	assert.NoError(t, Validate(ccwSquare()))
}

func TestValidateRejectsTooFewVertices(t *testing.T) {
	err := Validate([]geom.Vector2{geom.Vec2(0, 0), geom.Vec2(1, 0)})
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestValidateRejectsClockwiseWinding(t *testing.T) {
	sq := ccwSquare()
	cw := []geom.Vector2{sq[0], sq[3], sq[2], sq[1]}
	err := Validate(cw)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestValidateRejectsColinearFirstEdges(t *testing.T) {
	pts := []geom.Vector2{geom.Vec2(0, 0), geom.Vec2(5, 0), geom.Vec2(10, 0), geom.Vec2(5, 10)}
	err := Validate(pts)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

func TestValidateRejectsNonConvex(t *testing.T) {
	// A dart: the notch at (2,2) breaks convexity.
	pts := []geom.Vector2{
		geom.Vec2(0, 0),
		geom.Vec2(4, 0),
		geom.Vec2(4, 4),
		geom.Vec2(2, 2),
		geom.Vec2(0, 4),
	}
	err := Validate(pts)
	assert.ErrorIs(t, err, geom.ErrInvalidPolygon)
}

package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/nav2d/geom"
)

func sq(x0, y0, x1, y1 int64) []geom.IntPoint {
	return []geom.IntPoint{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestUnionDisjointKeepsBothContours(t *testing.T) {
	a := sq(0, 0, 10, 10)
	b := sq(20, 0, 30, 10)

	tree, err := GreinerHormann{}.Execute([][]geom.IntPoint{a}, [][]geom.IntPoint{b}, Union, NonZero)
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 2)
	for _, c := range tree.Root.Children {
		assert.False(t, c.Hole)
	}
}

func TestUnionOverlappingMergesIntoOneContour(t *testing.T) {
	a := sq(0, 0, 10, 10)
	b := sq(5, 5, 15, 15)

	tree, err := GreinerHormann{}.Execute([][]geom.IntPoint{a}, [][]geom.IntPoint{b}, Union, NonZero)
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	assert.False(t, tree.Root.Children[0].Hole)
	assert.GreaterOrEqual(t, len(tree.Root.Children[0].Contour), 3)
}

func TestDifferenceFullyContainedClipPunchesHole(t *testing.T) {
	subject := sq(0, 0, 10, 10)
	clip := sq(3, 3, 6, 6)

	tree, err := GreinerHormann{}.Execute([][]geom.IntPoint{subject}, [][]geom.IntPoint{clip}, Difference, NonZero)
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	outer := tree.Root.Children[0]
	assert.False(t, outer.Hole)
	require.Len(t, outer.Children, 1)
	assert.True(t, outer.Children[0].Hole)
}

func TestDifferenceDisjointClipIsNoOp(t *testing.T) {
	subject := sq(0, 0, 10, 10)
	clip := sq(20, 20, 30, 30)

	tree, err := GreinerHormann{}.Execute([][]geom.IntPoint{subject}, [][]geom.IntPoint{clip}, Difference, NonZero)
	require.NoError(t, err)
	require.Len(t, tree.Root.Children, 1)
	assert.Empty(t, tree.Root.Children[0].Children)
}

func TestDifferenceNoSubjectsReturnsEmptyTree(t *testing.T) {
	tree, err := GreinerHormann{}.Execute(nil, nil, Difference, NonZero)
	require.NoError(t, err)
	assert.Empty(t, tree.Root.Children)
}

func TestDifferenceRejectsMultipleSubjects(t *testing.T) {
	subjects := [][]geom.IntPoint{sq(0, 0, 10, 10), sq(20, 20, 30, 30)}
	_, err := GreinerHormann{}.Execute(subjects, nil, Difference, NonZero)
	assert.Error(t, err)
}

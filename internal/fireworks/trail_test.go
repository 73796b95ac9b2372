package fireworks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailKeepsMostRecentPositions(t *testing.T) {
	t.Parallel()

	tr := newTrail(10)
	require.Empty(t, tr.Points())

	for i := 0; i < 4; i++ {
		tr.Push(Point{X: float64(i)})
	}
	require.Equal(t, 4, tr.Len())
	require.Equal(t, []Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}, tr.Points())

	for i := 4; i < 25; i++ {
		tr.Push(Point{X: float64(i)})
		require.LessOrEqual(t, tr.Len(), 10)
	}
	pts := tr.Points()
	require.Len(t, pts, 10)
	for i, p := range pts {
		require.Equal(t, float64(15+i), p.X)
	}
}

func TestTrailWithoutCapacityHoldsOnePoint(t *testing.T) {
	t.Parallel()

	tr := newTrail(0)
	tr.Push(Point{X: 1})
	tr.Push(Point{X: 2})
	require.Equal(t, []Point{{X: 2}}, tr.Points())
}

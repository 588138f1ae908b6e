package gestures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
)

func TestCapture_MinSpacing(t *testing.T) {
	c := gestures.NewCapture(2)
	c.AddPoint(0, 0)
	c.AddPoint(1, 1)
	c.AddPoint(3, 0)

	points := c.Points()
	require.Len(t, points, 2)
	assert.Equal(t, 3.0, points[1].X)
	assert.Equal(t, 1, points[1].StrokeID)
}

func TestCapture_Strokes(t *testing.T) {
	c := gestures.NewCapture(2)
	c.PenDown()
	c.AddPoint(0, 0)
	c.AddPoint(10, 0)
	c.PenDown()
	c.AddPoint(10, 0)
	c.AddPoint(10, 10)

	points := c.Points()
	require.Len(t, points, 4, "first sample of a stroke is always kept")
	assert.Equal(t, []int{1, 1, 2, 2}, []int{points[0].StrokeID, points[1].StrokeID, points[2].StrokeID, points[3].StrokeID})
}

func TestCapture_MaxPoints(t *testing.T) {
	c := gestures.NewCapture(0)
	for i := range gestures.MaxPoints + 10 {
		c.AddPoint(float64(i), 0)
	}

	points := c.Points()
	require.Len(t, points, gestures.MaxPoints)
	assert.Equal(t, 10.0, points[0].X)

	c.Reset()
	assert.Equal(t, 0, c.Len())
	c.AddPoint(1, 1)
	assert.Equal(t, 1, c.Points()[0].StrokeID)
}

package gestures

import "github.com/ThatOtherAndrew/qdollar/pkg/qdollar"

const MaxPoints = 2048

// Capture accumulates sampled points into strokes. A sample closer than
// MinSpacing to the previous point of the same stroke is dropped. Only the
// newest MaxPoints points are kept.
type Capture struct {
	MinSpacing float64

	points []qdollar.Point
	stroke int
	fresh  bool
}

func NewCapture(minSpacing float64) *Capture {
	return &Capture{MinSpacing: minSpacing}
}

// PenDown starts a new stroke.
func (c *Capture) PenDown() {
	c.stroke++
	c.fresh = true
}

func (c *Capture) AddPoint(x, y float64) {
	if c.stroke == 0 {
		c.PenDown()
	}
	newPoint := qdollar.NewPoint(x, y, c.stroke)

	shouldAdd := c.fresh
	if !shouldAdd {
		lastPoint := c.points[len(c.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		shouldAdd = dx*dx+dy*dy > c.MinSpacing*c.MinSpacing
	}

	if shouldAdd {
		c.fresh = false
		c.points = append(c.points, newPoint)
		if len(c.points) > MaxPoints {
			c.points = c.points[len(c.points)-MaxPoints:]
		}
	}
}

func (c *Capture) Points() []qdollar.Point {
	points := make([]qdollar.Point, len(c.points))
	copy(points, c.points)
	return points
}

func (c *Capture) Len() int {
	return len(c.points)
}

func (c *Capture) Reset() {
	c.points = nil
	c.stroke = 0
	c.fresh = false
}

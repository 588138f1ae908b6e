package qdollar

// Cloud is a normalized gesture: NumPoints quantized points plus a lookup
// grid for approximate nearest point queries. It is never modified after
// NewCloud returns.
type Cloud struct {
	name   string
	points []Point
	lut    [LUTSize][LUTSize]int
}

func NewCloud(name string, points []Point) *Cloud {
	c := &Cloud{
		name:   name,
		points: Normalize(points),
	}
	c.lut = computeLUT(c.points)
	return c
}

func (c *Cloud) Name() string {
	return c.name
}

// Points returns a copy of the normalized points.
func (c *Cloud) Points() []Point {
	points := make([]Point, len(c.points))
	copy(points, c.points)
	return points
}

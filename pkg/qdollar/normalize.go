// https://depts.washington.edu/acelab/proj/dollar/qdollar.html

package qdollar

import "math"

// The pipeline expects at least two points. Empty input panics.

// Step 1

// Resample returns exactly n points spaced evenly by arc length. Spacing is
// only measured between consecutive points of the same stroke.
func Resample(points []Point, n int) []Point {
	if n <= 1 {
		return []Point{points[0]}
	}
	length := PathLength(points)
	if length == 0 {
		newPoints := make([]Point, n)
		for i := range newPoints {
			newPoints[i] = points[0]
		}
		return newPoints
	}

	I := length / float64(n-1)
	D := 0.0
	newPoints := make([]Point, 1, n)
	newPoints[0] = points[0]

	walk := make([]Point, len(points), len(points)+n)
	copy(walk, points)

	for i := 1; i < len(walk); i++ {
		if walk[i].StrokeID != walk[i-1].StrokeID {
			continue
		}
		d := EuclideanDistance(walk[i-1], walk[i])
		if D+d >= I {
			t := (I - D) / d
			q := Point{
				X:        walk[i-1].X + t*(walk[i].X-walk[i-1].X),
				Y:        walk[i-1].Y + t*(walk[i].Y-walk[i-1].Y),
				StrokeID: walk[i].StrokeID,
			}
			newPoints = append(newPoints, q)
			walk = append(walk[:i+1], walk[i:]...)
			walk[i] = q
			D = 0
		} else {
			D += d
		}
	}

	// rounding can leave the final cut just short of the end
	for len(newPoints) < n {
		newPoints = append(newPoints, walk[len(walk)-1])
	}
	if len(newPoints) > n {
		newPoints = newPoints[:n]
	}
	return newPoints
}

func PathLength(points []Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		if points[i].StrokeID == points[i-1].StrokeID {
			d += EuclideanDistance(points[i-1], points[i])
		}
	}
	return d
}

func EuclideanDistance(a, b Point) float64 {
	return math.Sqrt(SqEuclideanDistance(a, b))
}

func SqEuclideanDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Step 2

// Scale maps the longer side of the bounding box onto [0, 1], keeping the
// aspect ratio. A zero-size box is only shifted to the origin.
func Scale(points []Point) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	size := math.Max(maxX-minX, maxY-minY)
	if size == 0 {
		size = 1
	}

	newPoints := make([]Point, len(points))
	for i, p := range points {
		p.X = (p.X - minX) / size
		p.Y = (p.Y - minY) / size
		newPoints[i] = p
	}
	return newPoints
}

// Step 3

func TranslateTo(points []Point, k Point) []Point {
	c := Centroid(points)
	newPoints := make([]Point, len(points))
	for i, p := range points {
		p.X += k.X - c.X
		p.Y += k.Y - c.Y
		newPoints[i] = p
	}
	return newPoints
}

func Centroid(points []Point) Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}
}

// Step 4

// Quantize fills IntX and IntY from coordinates roughly in [-1, 1].
func Quantize(points []Point) []Point {
	newPoints := make([]Point, len(points))
	for i, p := range points {
		p.IntX = quantize(p.X)
		p.IntY = quantize(p.Y)
		newPoints[i] = p
	}
	return newPoints
}

func quantize(v float64) int {
	q := int(math.Round((v + 1) / 2 * (MaxIntCoord - 1)))
	return min(max(q, 0), MaxIntCoord-1)
}

// Normalize runs the whole pipeline: resample, scale, centre on Origin and
// quantize.
func Normalize(points []Point) []Point {
	points = Resample(points, NumPoints)
	points = Scale(points)
	points = TranslateTo(points, Origin)
	return Quantize(points)
}

package qdollar

import "math"

// computeLUT maps every grid cell to the index of the closest point, with
// point coordinates scaled down from MaxIntCoord to LUTSize. The first
// point wins ties.
func computeLUT(points []Point) [LUTSize][LUTSize]int {
	var lut [LUTSize][LUTSize]int

	rows := make([]int, len(points))
	cols := make([]int, len(points))
	for i, p := range points {
		rows[i] = lutCoord(p.IntX)
		cols[i] = lutCoord(p.IntY)
	}

	for x := range LUTSize {
		for y := range LUTSize {
			minDistance := math.MaxInt
			minIndex := 0
			for i := range points {
				dx := rows[i] - x
				dy := cols[i] - y
				if d := dx*dx + dy*dy; d < minDistance {
					minDistance = d
					minIndex = i
				}
			}
			lut[x][y] = minIndex
		}
	}
	return lut
}

func lutCoord(v int) int {
	return int(math.Round(float64(v) / lutScaleFactor))
}

// nearest returns the index of an approximately closest point of c to p.
func (c *Cloud) nearest(p Point) int {
	x := min(lutCoord(p.IntX), LUTSize-1)
	y := min(lutCoord(p.IntY), LUTSize-1)
	return c.lut[x][y]
}

package qdollar

// Point is one sampled location. Points sharing a StrokeID belong to the
// same pen-down segment. IntX and IntY are only set by Quantize.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	StrokeID int     `json:"stroke"`
	IntX     int     `json:"-"`
	IntY     int     `json:"-"`
}

func NewPoint(x, y float64, strokeID int) Point {
	return Point{X: x, Y: y, StrokeID: strokeID}
}

const (
	NumPoints   = 32
	MaxIntCoord = 1024
	LUTSize     = 64

	lutScaleFactor = float64(MaxIntCoord) / float64(LUTSize)
)

// Origin is the point every cloud's centroid is translated onto.
var Origin = Point{}

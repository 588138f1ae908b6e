// Package qdollar recognizes single and multi-stroke gestures by matching
// them as unordered point clouds against registered templates.
//
// Every gesture, template or candidate, is resampled to NumPoints points,
// scaled into the unit square, centred on Origin and quantized onto a
// MaxIntCoord grid. Each cloud keeps a LUTSize lookup grid so matching can
// compute cheap lower bounds and skip starting points that cannot beat the
// best distance seen so far, both within one template and across the whole
// registry.
//
//	r := qdollar.NewRecognizer()
//	r.AddGesture("square", squarePoints)
//	res, err := r.Recognize(points)
//
// Point sequences passed to the package must hold at least two points.
// A stroke made of a single point adds no path length, so Resample never
// walks onto it: when the last stroke is a lone point, the last resampled
// point is usually the end of the previous stroke, not that point.
package qdollar

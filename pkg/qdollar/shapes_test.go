package qdollar_test

import "github.com/ThatOtherAndrew/qdollar/pkg/qdollar"

func square() []qdollar.Point {
	return []qdollar.Point{
		qdollar.NewPoint(0, 0, 1),
		qdollar.NewPoint(0, 1, 1),
		qdollar.NewPoint(1, 1, 1),
		qdollar.NewPoint(1, 0, 1),
		qdollar.NewPoint(0, 0, 1),
	}
}

func triangle() []qdollar.Point {
	return []qdollar.Point{
		qdollar.NewPoint(0, 0, 1),
		qdollar.NewPoint(0.5, 1, 1),
		qdollar.NewPoint(1, 0, 1),
		qdollar.NewPoint(0, 0, 1),
	}
}

func complexPath() []qdollar.Point {
	return []qdollar.Point{
		qdollar.NewPoint(0, 0, 3),
		qdollar.NewPoint(0, 1, 3),
		qdollar.NewPoint(0.5, 1, 3),
		qdollar.NewPoint(0.5, 0.5, 3),
		qdollar.NewPoint(1, 0.5, 3),
		qdollar.NewPoint(1, 0, 3),
		qdollar.NewPoint(0, 0, 3),
	}
}

// skewedSquare is square with every corner pushed 0.1 off its place.
func skewedSquare() []qdollar.Point {
	return []qdollar.Point{
		qdollar.NewPoint(0, 0.1, 1),
		qdollar.NewPoint(0.1, 1, 1),
		qdollar.NewPoint(1, 0.9, 1),
		qdollar.NewPoint(0.9, 0, 1),
		qdollar.NewPoint(0, 0.1, 1),
	}
}

// cross is an X drawn as two separate strokes.
func cross() []qdollar.Point {
	return []qdollar.Point{
		qdollar.NewPoint(0, 0, 1),
		qdollar.NewPoint(1, 1, 1),
		qdollar.NewPoint(1, 0, 2),
		qdollar.NewPoint(0, 1, 2),
	}
}

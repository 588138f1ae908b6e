package gestures

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

const MinPoints = 2

var (
	ErrTooFewPoints  = errors.New("gesture too short")
	ErrTooManyPoints = errors.New("gesture too long")
)

// ValidatePoints checks the recognizer's input precondition.
func ValidatePoints(points []qdollar.Point) error {
	if len(points) < MinPoints {
		return fmt.Errorf("%w: %d point(s), need at least %d", ErrTooFewPoints, len(points), MinPoints)
	}
	return nil
}

// ReadPoints decodes a JSON array of points and replays it through a
// Capture, so repeated samples are dropped and strokes are renumbered from 1.
// Recordings longer than MaxPoints are rejected rather than cut.
func ReadPoints(r io.Reader) ([]qdollar.Point, error) {
	var raw []qdollar.Point
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	if len(raw) > MaxPoints {
		return nil, fmt.Errorf("%w: %d points, at most %d", ErrTooManyPoints, len(raw), MaxPoints)
	}

	capture := NewCapture(0)
	for i, p := range raw {
		if i == 0 || p.StrokeID != raw[i-1].StrokeID {
			capture.PenDown()
		}
		capture.AddPoint(p.X, p.Y)
	}

	points := capture.Points()
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadPointsFile reads points from path, or from stdin when path is "-".
func ReadPointsFile(path string) ([]qdollar.Point, error) {
	if path == "-" {
		return ReadPoints(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

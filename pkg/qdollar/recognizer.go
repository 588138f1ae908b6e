package qdollar

import (
	"math"
	"time"
)

// Recognizer holds named template clouds in registration order. Names need
// not be unique. It is not safe for concurrent use.
type Recognizer struct {
	clouds []*Cloud
}

type Result struct {
	Name    string
	Score   float64
	Elapsed time.Duration
}

func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// AddGesture registers points as a template and returns the number of
// templates.
func (r *Recognizer) AddGesture(name string, points []Point) int {
	r.clouds = append(r.clouds, NewCloud(name, points))
	return len(r.clouds)
}

// DeleteUserGestures removes every template. It always returns 0.
func (r *Recognizer) DeleteUserGestures() int {
	r.clouds = nil
	return len(r.clouds)
}

func (r *Recognizer) Len() int {
	return len(r.clouds)
}

func (r *Recognizer) Names() []string {
	names := make([]string, len(r.clouds))
	for i, c := range r.clouds {
		names[i] = c.name
	}
	return names
}

// Recognize returns the template closest to points. The score is 1 for
// distances up to 1 and decays as 1/distance beyond that.
func (r *Recognizer) Recognize(points []Point) (Result, error) {
	start := time.Now()

	if len(r.clouds) == 0 {
		return Result{}, ErrNoRegisteredGestures
	}

	candidate := NewCloud("", points)

	bestDistance := math.Inf(1)
	bestTemplate := 0
	for i, template := range r.clouds {
		d := Match(candidate, template, bestDistance)
		if d < bestDistance {
			bestDistance = d
			bestTemplate = i
		}
	}

	score := 1.0
	if bestDistance > 1 {
		score = 1 / bestDistance
	}

	return Result{
		Name:    r.clouds[bestTemplate].name,
		Score:   score,
		Elapsed: time.Since(start),
	}, nil
}

package qdollar

import "math"

// Match returns the distance between candidate and template when it can
// beat minSoFar, and minSoFar otherwise. Starting offsets are tried in both
// directions, skipping those whose lower bound already reaches the best
// distance found.
func Match(candidate, template *Cloud, minSoFar float64) float64 {
	n := len(candidate.points)
	step := int(math.Floor(math.Sqrt(float64(n))))

	lb1 := lowerBounds(candidate.points, template, step)
	lb2 := lowerBounds(template.points, candidate, step)

	best := minSoFar
	for j, lb := range lb1 {
		if lb < best {
			best = math.Min(best, cloudDistance(candidate.points, template.points, j*step, best))
		}
	}
	for j, lb := range lb2 {
		if lb < best {
			best = math.Min(best, cloudDistance(template.points, candidate.points, j*step, best))
		}
	}
	return best
}

// Distance is the unpruned match between a and b divided by the total
// weight, so it does not grow with NumPoints.
func Distance(a, b *Cloud) float64 {
	n := float64(len(a.points))
	return Match(a, b, math.Inf(1)) / (n * (n + 1) / 2)
}

// cloudDistance greedily pairs each point of pts1, from start onwards, with
// the nearest unmatched point of pts2. Earlier pairs weigh more. It gives up
// as soon as the sum reaches minSoFar.
func cloudDistance(pts1, pts2 []Point, start int, minSoFar float64) float64 {
	n := len(pts1)
	unmatched := make([]int, len(pts2))
	for j := range unmatched {
		unmatched[j] = j
	}

	i := start
	weight := n
	sum := 0.0
	for {
		u := 0
		minDistance := math.Inf(1)
		for j, k := range unmatched {
			if d := SqEuclideanDistance(pts1[i], pts2[k]); d < minDistance {
				minDistance = d
				u = j
			}
		}
		unmatched = append(unmatched[:u], unmatched[u+1:]...)
		sum += float64(weight) * minDistance
		if sum >= minSoFar {
			return sum
		}

		weight--
		i = (i + 1) % n
		if i == start || len(unmatched) == 0 {
			break
		}
	}
	return sum
}

// lowerBounds returns one bound per starting offset 0, step, 2*step, ...
// using the target's lookup grid instead of a real nearest point search.
// Offsets past zero are derived from prefix sums of the per point distances.
func lowerBounds(pts []Point, target *Cloud, step int) []float64 {
	n := len(pts)
	lb := make([]float64, (n+step-1)/step)
	sat := make([]float64, n)

	for i, p := range pts {
		d := SqEuclideanDistance(p, target.points[target.nearest(p)])
		sat[i] = d
		if i > 0 {
			sat[i] += sat[i-1]
		}
		lb[0] += float64(n-i) * d
	}

	for j := 1; j < len(lb); j++ {
		k := j * step
		lb[j] = lb[0] + float64(k)*sat[n-1] - float64(n)*sat[k-1]
	}
	return lb
}

package layout

import (
	"fmt"
	"math/rand"
)

const methodSampleWaypoints = "SampleWaypoints"

// SampleWaypoints draws up to count interior waypoints. Each candidate takes
// x from [p, width-p) and then y from [p, height-p), p = Padding(width, height).
// A candidate equal to start is dropped without a retry, so fewer than count
// points may come back. Repeats are allowed.
//
// count == 0 returns an empty slice without touching rng. An empty sampling
// range with count > 0 returns ErrDegenerateRange.
// Complexity: O(count).
func SampleWaypoints(width, height int, start Position, count int, rng *rand.Rand) ([]Position, error) {
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodSampleWaypoints, count, ErrBadSize)
	}
	if count == 0 {
		return []Position{}, nil
	}
	if err := validateSamplingRange(width, height); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSampleWaypoints, err)
	}

	pad := Padding(width, height)
	spanX, spanY := width-2*pad, height-2*pad
	out := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		// x before y: the draw order is part of reproducibility.
		x := pad + rng.Intn(spanX)
		y := pad + rng.Intn(spanY)
		wp := Position{X: x, Y: y}
		if wp == start {
			continue
		}
		out = append(out, wp)
	}
	return out, nil
}

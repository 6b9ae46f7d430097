package layout

import "math/rand"

// BufferParams are the Organic Buffer knobs. Buffer trusts them; Params.Validate
// is where they are checked.
type BufferParams struct {
	MinRadius, MaxRadius         int
	OrthogonalProb, DiagonalProb float64
}

// Buffer grows occupied cells around each spine cell, mutating grid in place.
//
// For every spine cell, in the given order:
//  1. draw r uniformly from [MinRadius, MaxRadius];
//  2. scan offsets dx (outer) and dy (inner) in [-r, r], skipping the origin,
//     out-of-bounds and already occupied cells, and cells with |dx|+|dy| > r;
//  3. take OrthogonalProb when exactly one of dx, dy is zero, DiagonalProb
//     otherwise, scaled by 1 - d/(r+1);
//  4. draw one float; below the probability, occupy the cell only if one of
//     its orthogonal neighbours is occupied right now.
//
// The adjacency gate in step 4 keeps the grid 4-connected. Buffer never
// fails; with MaxRadius == 0 it draws radii and adds nothing.
// Complexity: O(|spine|·R²) with R = MaxRadius.
func Buffer(grid *Grid, spine []Position, bp BufferParams, rng *rand.Rand) {
	// Snapshot: the caller's slice may be reused while we mutate the grid.
	cells := make([]Position, len(spine))
	copy(cells, spine)

	span := bp.MaxRadius - bp.MinRadius + 1
	for _, c := range cells {
		r := bp.MinRadius
		if span > 0 {
			r += rng.Intn(span)
		}
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				x, y := c.X+dx, c.Y+dy
				if !grid.InBounds(x, y) || grid.Occupied(x, y) {
					continue
				}
				d := abs(dx) + abs(dy)
				if d > r {
					continue
				}
				prob := bp.DiagonalProb
				if (dx == 0) != (dy == 0) {
					prob = bp.OrthogonalProb
				}
				prob *= 1 - float64(d)/float64(r+1)

				if rng.Float64() < prob && grid.HasOrthogonalNeighbor(x, y) {
					grid.Set(x, y, true)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package layout

import "fmt"

const methodBuild = "Build"

// Result carries the grid together with the intermediate artefacts of one
// generation, for diagnostics and storage.
type Result struct {
	Params Params
	Grid   *Grid
	// Waypoints are the sampled points, in visiting order.
	Waypoints []Position
	// Spine holds the unique skeleton cells in first-visit order.
	Spine []Position
	// Seed is the seed the random source was created from; meaningful only
	// when Seeded is true (it is false for WithRand).
	Seed   int64
	Seeded bool
}

// Generate builds the occupancy grid for p: true marks a cell a card may be
// placed on. It is Build without the diagnostics.
func Generate(p Params, opts ...Option) (*Grid, error) {
	res, err := Build(p, opts...)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Build validates p and runs sampler → spine → mark → buffer.
// The returned grid is owned by the caller.
// Complexity: O(W×H + n·(W+H) + |spine|·R²).
func Build(p Params, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	cfg := newConfig(opts...)

	waypoints, err := SampleWaypoints(p.Width, p.Height, p.Start, p.Waypoints, cfg.rng)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodBuild, err)
	}

	spine := BuildSpine(p.Start, waypoints)

	grid := NewGrid(p.Width, p.Height)
	for _, c := range spine {
		grid.Set(c.X, c.Y, true)
	}

	Buffer(grid, spine, p.bufferParams(), cfg.rng)

	return Result{
		Params:    p,
		Grid:      grid,
		Waypoints: waypoints,
		Spine:     spine,
		Seed:      cfg.seed,
		Seeded:    cfg.seeded,
	}, nil
}

// Package gridgraph provides utilities to treat a 2D occupancy mask as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of land cells
//   - Reachability floods from a single cell
//   - Shortest-path bridging between components
//
// Cells marked false are "water"; cells marked true are "land".
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular [y][x] mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(mask [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	land := make([][]bool, h)
	for y := 0; y < h; y++ {
		land[y] = make([]bool, w)
		copy(land[y], mask[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Land:            land,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// FromMask is shorthand for NewGridGraph with the given connectivity.
func FromMask(mask [][]bool, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(mask, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and occupied.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.Land[y][x]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

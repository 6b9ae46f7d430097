package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// according to gg.Conn connectivity, scanning row-major.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order from its first-scanned cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Land[y][x] {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, gg.flood(i0, seen))
		}
	}
	return comps
}

// Reachable returns every land cell reachable from (x,y), the start cell
// first. Returns ErrOutOfBounds or ErrNotLand for a bad start.
// Time: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Reachable(x, y int) ([]int, error) {
	if !gg.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	if !gg.Land[y][x] {
		return nil, ErrNotLand
	}
	seen := make([]bool, gg.Width*gg.Height)
	return gg.flood(gg.index(x, y), seen), nil
}

// IsConnected reports whether all land forms at most one island.
// An all-water grid is trivially connected.
func (gg *GridGraph) IsConnected() bool {
	return len(gg.ConnectedComponents()) <= 1
}

// Stats counts land cells and islands.
func (gg *GridGraph) Stats() Stats {
	var s Stats
	for _, comp := range gg.ConnectedComponents() {
		s.Components++
		s.Land += len(comp)
		if len(comp) > s.Largest {
			s.Largest = len(comp)
		}
	}
	return s
}

// flood runs a BFS over land from i0, marking seen, and returns the visit order.
func (gg *GridGraph) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsLand(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

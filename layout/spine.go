package layout

// cellSet is an insertion-ordered set of positions. Iteration order must be
// stable for the buffer pass to be reproducible, which a bare map is not.
type cellSet struct {
	order []Position
	seen  map[Position]struct{}
}

func newCellSet() *cellSet {
	return &cellSet{seen: make(map[Position]struct{})}
}

func (s *cellSet) add(p Position) {
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
}

// BuildSpine joins start → waypoints[0] → … → waypoints[n-1] → start with
// L-shaped paths and returns every visited cell once, in first-visit order.
// The result is 4-connected and always contains start.
// Complexity: O(n·(W+H)) for n waypoints.
func BuildSpine(start Position, waypoints []Position) []Position {
	cells := newCellSet()
	current := start
	for _, wp := range waypoints {
		drawManhattanPath(cells, current, wp)
		current = wp
	}
	// Close the loop.
	drawManhattanPath(cells, current, start)
	return cells.order
}

// drawManhattanPath adds every cell from "from" to "to": all x steps first,
// then all y steps at the target x, both endpoints included. from == to
// adds the single cell.
func drawManhattanPath(cells *cellSet, from, to Position) {
	cur := from
	dx := 1
	if to.X < from.X {
		dx = -1
	}
	for cur.X != to.X {
		cells.add(cur)
		cur.X += dx
	}
	dy := 1
	if to.Y < from.Y {
		dy = -1
	}
	for cur.Y != to.Y {
		cells.add(cur)
		cur.Y += dy
	}
	cells.add(cur)
}

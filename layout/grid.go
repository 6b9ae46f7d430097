package layout

import "fmt"

// Position is an integer grid coordinate. It is comparable and may be used
// as a map key.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// orthogonal holds the four N/E/S/W unit offsets.
var orthogonal = [4]Position{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Grid is a width×height occupancy table with origin (0,0).
// Cells are stored row-major: index = y*width + x.
// The zero value is an empty 0×0 grid.
type Grid struct {
	width, height int
	cells         []bool
}

// NewGrid allocates an empty width×height grid. Non-positive dimensions, or
// more than MaxCells cells, yield an empty grid with no addressable cells.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return &Grid{}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within [0,width)×[0,height).
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Occupied reports whether (x,y) is occupied. Out-of-bounds cells are empty.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// Set marks (x,y) as occupied or empty. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, occupied bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = occupied
}

// HasOrthogonalNeighbor reports whether any of the four cells directly
// up, down, right or left of (x,y) is occupied.
// Complexity: O(1).
func (g *Grid) HasOrthogonalNeighbor(x, y int) bool {
	for _, d := range orthogonal {
		if g.Occupied(x+d.X, y+d.Y) {
			return true
		}
	}
	return false
}

// Count returns the number of occupied cells.
// Complexity: O(W×H).
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns the occupied positions ordered by y, then x.
func (g *Grid) Cells() []Position {
	out := make([]Position, 0, g.Count())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Rows returns a copy of the grid as a [y][x] mask, the shape gridgraph
// and the store consume.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]bool, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// FromRows builds a grid from a rectangular [y][x] mask. It returns
// ErrBadSize for an empty or jagged mask.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty mask: %w", ErrBadSize)
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", y, len(row), w, ErrBadSize)
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// String returns the diagnostic dump (see Render).
func (g *Grid) String() string {
	return Render(g, RenderOptions{})
}

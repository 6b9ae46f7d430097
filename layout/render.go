package layout

import (
	"fmt"
	"strings"
)

// Glyphs used by the diagnostic dump.
const (
	GlyphOccupied = '█'
	GlyphEmpty    = '·'
	GlyphStart    = 'S'
	GlyphSpine    = '▓'
)

// RenderOptions decorate the dump. The zero value renders the plain grid.
type RenderOptions struct {
	// Start, when non-nil and occupied, is drawn as GlyphStart.
	Start *Position
	// Spine cells, when set, are drawn as GlyphSpine.
	Spine []Position
	// NoHeader drops the "Layout (WxH):" line.
	NoHeader bool
}

// Render returns a human-readable dump of g, top row (y = height-1) first,
// GlyphOccupied for occupied cells and GlyphEmpty for empty ones.
func Render(g *Grid, opts RenderOptions) string {
	spine := make(map[Position]struct{}, len(opts.Spine))
	for _, c := range opts.Spine {
		spine[c] = struct{}{}
	}

	var sb strings.Builder
	if !opts.NoHeader {
		fmt.Fprintf(&sb, "Layout (%dx%d):\n", g.Width(), g.Height())
	}
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			_, onSpine := spine[p]
			switch {
			case opts.Start != nil && *opts.Start == p && g.Occupied(x, y):
				sb.WriteRune(GlyphStart)
			case onSpine && g.Occupied(x, y):
				sb.WriteRune(GlyphSpine)
			case g.Occupied(x, y):
				sb.WriteRune(GlyphOccupied)
			default:
				sb.WriteRune(GlyphEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a dump produced by Render (header optional) back into a grid.
// GlyphOccupied, GlyphStart and GlyphSpine count as occupied; GlyphEmpty
// as empty. Any other rune or a ragged row returns ErrBadSize.
func Parse(dump string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "Layout (") {
		lines = lines[1:]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("Parse: empty dump: %w", ErrBadSize)
	}

	h := len(lines)
	rows := make([][]bool, h)
	for i, line := range lines {
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case GlyphOccupied, GlyphStart, GlyphSpine:
				row = append(row, true)
			case GlyphEmpty:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("Parse: line %d: unexpected rune %q: %w", i, r, ErrBadSize)
			}
		}
		// Dump lines run top to bottom; rows are indexed by y.
		rows[h-1-i] = row
	}
	return FromRows(rows)
}

// Package preview draws layouts on a terminal screen and lets a user step
// through seeds interactively.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/nlbtt/gridgraph"
	"github.com/katalvlaran/nlbtt/layout"
)

var (
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOccupied = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSpine    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStart    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Draw clears screen and paints res.Grid with the top row (highest y) first,
// followed by a status line. It does not call Show.
func Draw(screen tcell.Screen, res layout.Result) {
	screen.Clear()
	g := res.Grid
	if g == nil {
		return
	}

	spine := make(map[layout.Position]struct{}, len(res.Spine))
	for _, c := range res.Spine {
		spine[c] = struct{}{}
	}

	h := g.Height()
	for y := 0; y < h; y++ {
		row := h - 1 - y
		for x := 0; x < g.Width(); x++ {
			p := layout.Position{X: x, Y: y}
			r, style := layout.GlyphEmpty, styleEmpty
			_, onSpine := spine[p]
			switch {
			case p == res.Params.Start && g.Occupied(x, y):
				r, style = layout.GlyphStart, styleStart
			case onSpine && g.Occupied(x, y):
				r, style = layout.GlyphSpine, styleSpine
			case g.Occupied(x, y):
				r, style = layout.GlyphOccupied, styleOccupied
			}
			screen.SetContent(x, row, r, nil, style)
		}
	}

	drawText(screen, 0, h+1, styleStatus, StatusLine(res))
}

// StatusLine summarises res in one line: seed, occupancy and 4-connected
// component count.
func StatusLine(res layout.Result) string {
	g := res.Grid
	seed := "random"
	if res.Seeded {
		seed = fmt.Sprintf("%d", res.Seed)
	}
	comps := 0
	if gg, err := gridgraph.FromMask(g.Rows(), gridgraph.Conn4); err == nil {
		comps = gg.Stats().Components
	}
	return fmt.Sprintf("seed %s  %dx%d  cells %d  spine %d  components %d",
		seed, g.Width(), g.Height(), g.Count(), len(res.Spine), comps)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

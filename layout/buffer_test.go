package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func spineGrid(w, h int, spine []Position) *Grid {
	g := NewGrid(w, h)
	for _, c := range spine {
		g.Set(c.X, c.Y, true)
	}
	return g
}

func TestBuffer_ZeroRadiusAddsNothing(t *testing.T) {
	spine := BuildSpine(Position{X: 5, Y: 0}, []Position{{X: 3, Y: 6}, {X: 7, Y: 4}})
	g := spineGrid(10, 10, spine)
	before := g.Clone()

	Buffer(g, spine, BufferParams{OrthogonalProb: 1, DiagonalProb: 1}, rand.New(rand.NewSource(1)))
	require.True(t, before.Equal(g))
}

func TestBuffer_ZeroProbabilityAddsNothing(t *testing.T) {
	spine := BuildSpine(Position{X: 5, Y: 0}, []Position{{X: 3, Y: 6}})
	g := spineGrid(10, 10, spine)
	before := g.Clone()

	Buffer(g, spine, BufferParams{MinRadius: 1, MaxRadius: 4}, rand.New(rand.NewSource(1)))
	require.True(t, before.Equal(g))
}

// TestBuffer_AdditiveAndGated checks that buffering keeps every spine cell,
// stays inside the diamond of the largest radius, and that every added cell
// touches an occupied neighbour.
func TestBuffer_AdditiveAndGated(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		spine := BuildSpine(Position{X: 8, Y: 8}, []Position{{X: 3, Y: 12}, {X: 12, Y: 4}})
		g := spineGrid(16, 16, spine)
		before := g.Clone()

		bp := BufferParams{MinRadius: 1, MaxRadius: 3, OrthogonalProb: 0.9, DiagonalProb: 0.7}
		Buffer(g, spine, bp, rng)

		require.GreaterOrEqual(t, g.Count(), before.Count())
		for _, c := range spine {
			require.True(t, g.Occupied(c.X, c.Y))
		}
		for _, c := range g.Cells() {
			if before.Occupied(c.X, c.Y) {
				continue
			}
			require.True(t, g.HasOrthogonalNeighbor(c.X, c.Y), "seed %d: %v floats", seed, c)

			near := false
			for _, s := range spine {
				if abs(s.X-c.X)+abs(s.Y-c.Y) <= bp.MaxRadius {
					near = true
					break
				}
			}
			require.True(t, near, "seed %d: %v outside every buff diamond", seed, c)
		}
	}
}

// TestBuffer_SnapshotsSpine: the caller's slice is never written to.
func TestBuffer_SnapshotsSpine(t *testing.T) {
	spine := []Position{{X: 2, Y: 2}}
	g := spineGrid(5, 5, spine)
	Buffer(g, spine, BufferParams{MinRadius: 2, MaxRadius: 2, OrthogonalProb: 1, DiagonalProb: 1}, rand.New(rand.NewSource(3)))
	require.Equal(t, []Position{{X: 2, Y: 2}}, spine)
}

// TestBuffer_GateBlocksIsolatedCells: a lone spine cell with only diagonal
// probability never grows. Diagonal candidates pass the roll but have no
// occupied orthogonal neighbour, and orthogonal candidates never pass it.
func TestBuffer_GateBlocksIsolatedCells(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		spine := []Position{{X: 3, Y: 3}}
		g := spineGrid(7, 7, spine)
		Buffer(g, spine, BufferParams{MinRadius: 2, MaxRadius: 2, DiagonalProb: 1}, rand.New(rand.NewSource(seed)))
		require.Equal(t, 1, g.Count(), "seed %d", seed)
	}
}

func TestBuffer_EdgeCellsStayInBounds(t *testing.T) {
	spine := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}}
	g := spineGrid(2, 2, spine)
	require.NotPanics(t, func() {
		Buffer(g, spine, BufferParams{MinRadius: 3, MaxRadius: 3, OrthogonalProb: 1, DiagonalProb: 1}, rand.New(rand.NewSource(1)))
	})
	require.LessOrEqual(t, g.Count(), 4)
}

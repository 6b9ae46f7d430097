package gridgraph

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// parseMask turns rows of '#' (land) and '.' (water) into a [y][x] mask.
func parseMask(rows ...string) [][]bool {
	mask := make([][]bool, len(rows))
	for y, r := range rows {
		mask[y] = make([]bool, len(r))
		for x, c := range r {
			mask[y][x] = c == '#'
		}
	}
	return mask
}

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 mask
// with orthogonal connectivity (Conn4).
//
//	. # # .
//	# # . .
//	. . # #
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := FromMask(parseMask(
		".##.",
		"##..",
		"..##",
	), Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 uses Conn8 to join corner-touching cells.
// With Conn8, all 9 land cells of the X pattern form one island.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	mask := parseMask(
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	)
	gg8, err := FromMask(mask, Conn8)
	require.NoError(t, err)
	comps := gg8.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	// Under Conn4 no two cells of the X touch.
	gg4, err := FromMask(mask, Conn4)
	require.NoError(t, err)
	require.Len(t, gg4.ConnectedComponents(), 9)
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components
//   - single‐cell land grid → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gg1, _ := FromMask(parseMask("..", ".."), Conn4)
	require.Empty(t, gg1.ConnectedComponents())
	require.True(t, gg1.IsConnected(), "all water is trivially connected")

	gg2, _ := FromMask(parseMask(".#"), Conn4)
	comps := gg2.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 1)
}

func TestReachable(t *testing.T) {
	gg, err := FromMask(parseMask(
		"##.#",
		".#.#",
		".###",
		"#...",
	), Conn4)
	require.NoError(t, err)

	cells, err := gg.Reachable(0, 0)
	require.NoError(t, err)
	require.Len(t, cells, 8)
	require.Equal(t, idx(gg, 0, 0), cells[0], "start comes first")

	lone, err := gg.Reachable(0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{idx(gg, 0, 3)}, lone)

	_, err = gg.Reachable(2, 0)
	require.True(t, errors.Is(err, ErrNotLand))
	_, err = gg.Reachable(4, 0)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestStats(t *testing.T) {
	gg, _ := FromMask(parseMask(
		"##..#",
		"#...#",
		"...#.",
	), Conn4)
	s := gg.Stats()
	require.Equal(t, Stats{Land: 6, Components: 3, Largest: 3}, s)
	require.False(t, gg.IsConnected())
}

// TestConnectedComponents_InvalidRects ensures FromMask rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	if _, err := FromMask(nil, Conn4); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromMask([][]bool{{true}, {}}, Conn4); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}

package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSpine_NoWaypoints(t *testing.T) {
	start := Position{X: 3, Y: 4}
	require.Equal(t, []Position{start}, BuildSpine(start, nil))
}

// TestBuildSpine_LShape checks the x-first, then-y walk and the closing leg.
func TestBuildSpine_LShape(t *testing.T) {
	got := BuildSpine(Position{X: 0, Y: 0}, []Position{{X: 2, Y: 1}})
	want := []Position{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, // out: along x, then up
		{1, 1}, {0, 1}, // back: along x at y=1, then down to start
	}
	require.Equal(t, want, got)
}

func TestBuildSpine_NegativeDirections(t *testing.T) {
	got := BuildSpine(Position{X: 3, Y: 3}, []Position{{X: 1, Y: 1}})
	want := []Position{
		{3, 3}, {2, 3}, {1, 3}, {1, 2}, {1, 1},
		{2, 1}, {3, 1}, {3, 2},
	}
	require.Equal(t, want, got)
}

func TestBuildSpine_SharedAxisAndRepeats(t *testing.T) {
	start := Position{X: 1, Y: 1}
	got := BuildSpine(start, []Position{{1, 3}, {1, 3}, {3, 3}})
	// The closing leg runs back along y=3 and down x=1, over cells already visited.
	want := []Position{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}}
	require.Equal(t, want, got)
}

// TestBuildSpine_ConnectedAndUnique runs random waypoint sets and checks the
// spine is a set of 4-connected cells containing start and every waypoint.
func TestBuildSpine_ConnectedAndUnique(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		start := Position{X: rng.Intn(30), Y: rng.Intn(30)}
		wps, err := SampleWaypoints(30, 30, start, 1+rng.Intn(6), rng)
		require.NoError(t, err)

		spine := BuildSpine(start, wps)
		require.Equal(t, start, spine[0])

		set := make(map[Position]bool, len(spine))
		for _, c := range spine {
			require.False(t, set[c], "seed %d: duplicate %v", seed, c)
			set[c] = true
		}
		for _, wp := range wps {
			require.True(t, set[wp], "seed %d: waypoint %v missing", seed, wp)
		}

		// Flood from start over spine cells.
		seen := map[Position]bool{start: true}
		queue := []Position{start}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, d := range orthogonal {
				n := Position{X: c.X + d.X, Y: c.Y + d.Y}
				if set[n] && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		require.Len(t, seen, len(spine), "seed %d: spine not connected", seed)
	}
}

package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// helper to convert (x,y) to index
func idx(gg *GridGraph, x, y int) int {
	return gg.index(x, y)
}

// TestBridge_BasicLine tests a 3×1 line with a single water cell between two land cells.
// Mask: [█,·,█], Conn4
// Expected: must convert the middle cell at cost 1, path indices [0,1,2].
func TestBridge_BasicLine(t *testing.T) {
	gg, err := FromMask([][]bool{{true, false, true}}, Conn4)
	if err != nil {
		t.Fatalf("FromMask error: %v", err)
	}
	if comps := gg.ConnectedComponents(); len(comps) != 2 {
		t.Fatalf("found %d components; want 2", len(comps))
	}

	path, cost, err := gg.Bridge(0, 1)
	if err != nil {
		t.Fatalf("Bridge error: %v", err)
	}
	wantPath := []int{idx(gg, 0, 0), idx(gg, 1, 0), idx(gg, 2, 0)}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if !reflect.DeepEqual(path, wantPath) {
		t.Errorf("path = %v; want %v", path, wantPath)
	}
}

// TestBridge_MediumRow needs three conversions between the two ends of a row.
func TestBridge_MediumRow(t *testing.T) {
	gg, _ := FromMask([][]bool{{true, false, false, false, true}}, Conn4)
	path, cost, err := gg.Bridge(0, 1)
	if err != nil {
		t.Fatalf("Bridge error: %v", err)
	}
	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestBridge_DiagonalNeighbours: two corner-touching cells are one island
// under Conn8 and need one conversion under Conn4.
func TestBridge_DiagonalNeighbours(t *testing.T) {
	mask := [][]bool{
		{true, false},
		{false, true},
	}
	gg8, _ := FromMask(mask, Conn8)
	if n := len(gg8.ConnectedComponents()); n != 1 {
		t.Fatalf("Conn8 components = %d; want 1", n)
	}
	path, cost, err := gg8.Bridge(0, 0)
	if err != nil {
		t.Fatalf("Bridge error: %v", err)
	}
	if cost != 0 || len(path) != 1 {
		t.Errorf("self bridge = %v cost %d; want single cell at cost 0", path, cost)
	}

	gg4, _ := FromMask(mask, Conn4)
	_, cost, err = gg4.Bridge(0, 1)
	if err != nil {
		t.Fatalf("Bridge error: %v", err)
	}
	if cost != 1 {
		t.Errorf("Conn4 cost = %d; want 1", cost)
	}
}

// TestBridge_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestBridge_InvalidIndices(t *testing.T) {
	gg, _ := FromMask([][]bool{{true, false, true}}, Conn4)

	if _, _, err := gg.Bridge(-1, 1); !errors.Is(err, ErrComponentIndex) {
		t.Errorf("src=-1: got %v; want ErrComponentIndex", err)
	}
	if _, _, err := gg.Bridge(0, 2); !errors.Is(err, ErrComponentIndex) {
		t.Errorf("dst=2: got %v; want ErrComponentIndex", err)
	}
}

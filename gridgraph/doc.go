// Package gridgraph treats a 2D occupancy mask as a graph, enabling
// connectivity checks and minimal-cost "island" bridging on board layouts.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool mask (true = land/occupied).
//   - Identifies connected components ("islands") of land cells.
//   - Floods from a single cell to report everything reachable from it.
//   - Computes minimal water conversions (0-1 BFS) to bridge two islands.
//
// Why:
//
//   - Board layouts: verify every card cell is reachable from the start.
//   - Hand-edited boards: report how many cells would reconnect a split board.
//   - Storage: refuse to persist boards that break the connectivity contract.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Reachable:           O(W×H×d), Memory: O(W×H).
//   - Bridge:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the mask.
//   - ErrNotLand: a flood was started from an empty cell.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph

// Package layout generates the occupancy grid a board is laid out on.
//
// What:
//
//   - Samples waypoints inside a padded interior of a width×height grid.
//   - Joins start → waypoints → start with L-shaped (x first, then y) paths,
//     the "spine".
//   - Buffs the spine into an organic island: every spine cell grows a
//     diamond-shaped blob whose fill probability decays with Manhattan
//     distance, and a cell is only ever added next to an occupied one.
//
// Guarantees:
//
//   - Every occupied cell is 4-connected to the start cell.
//   - Same Params and same seed give bit-identical grids.
//   - The buffer only adds cells; the spine is always part of the result.
//
// Randomness:
//
//	All draws come from an explicit *rand.Rand. Use WithSeed for
//	reproducible boards, WithRand to share a caller-owned source, or
//	neither to seed from the clock (the seed used is reported in Result).
//
// Complexity:
//
//   - SampleWaypoints: O(n).
//   - BuildSpine:      O(n·(W+H)).
//   - Buffer:          O(|spine|·R²), R = MaxRadius.
//
// Errors:
//
//   - ErrBadSize:            width/height ≤ 0, more than MaxCells cells, or a
//     negative waypoint count.
//   - ErrStartOutOfBounds:   start not inside the grid.
//   - ErrInvalidRadius:      negative radius or MinRadius > MaxRadius.
//   - ErrInvalidProbability: probability outside [0,1].
//   - ErrDegenerateRange:    grid too small for the waypoint padding.
package layout

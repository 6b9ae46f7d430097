// Package nlbtt generates board layouts: connected, organic-looking sets of
// grid cells on which a card game's tiles may be placed.
//
// What is nlbtt?
//
//	A small, seedable pipeline that turns a handful of numbers into an
//	occupancy grid:
//		• Waypoint sampling: random interior points inside a padded margin
//		• Spine building: L-shaped paths start → waypoints → start
//		• Organic buffer: probabilistic growth around the spine that never
//		  breaks 4-connectivity
//
// Why this shape?
//
//   - Reproducible - the same params and seed always give the same board
//   - Always playable - every occupied cell is reachable from the start
//   - Pure Go - the generator itself has no dependencies
//
// Packages:
//
//	layout/       Params, Grid, Generate/Build and the pipeline stages
//	gridgraph/    connectivity analysis over occupancy masks
//	internal/     SQLite catalogue, terminal viewer, env config
//	cmd/boardgen  command line front end
//
// Quick ASCII example (5×5, start at the bottom centre, one waypoint):
//
//	··█··
//	·███·
//	·███·
//	·███·
//	·█S█·
//
//	go run ./cmd/boardgen -seed 7
package nlbtt

// Package heightfield is an in-memory toolkit for procedural terrain:
// generating height fields from noise, analysing them, eroding them and
// routing across them.
//
// What is inside?
//
//   - Noise sources: OpenSimplex and Perlin, with FBm and ridged layering
//   - Height grids: indexing, gradients, smoothing, min/max, arithmetic
//   - Terrain analysis: slope, Laplacian, flow accumulation, wetness
//   - Erosion: thermal (talus) and tectonic (stream power) passes
//   - Routing: least-slope paths over an 8-connected grid via Dijkstra
//   - Layers: snow, concrete, grass, water and path classification
//
// Everything is organised in subpackages:
//
//	core/         dense integer-id graph with thread-safe primitives
//	dijkstra/     single-source shortest paths with path reconstruction
//	gridgraph/    lattice neighbourhoods, connected regions, graph export
//	noise/        configurable 2-D noise sources
//	layer/        terrain layer registry and elevation thresholds
//	grid/         the height grid and its field operations
//	terrain/      derived maps, erosion, routing and layer assignment
//	cmd/heightfield   demo pipeline writing every map as a PNG
//
// Quick ASCII example of a least-slope route from S to D around a peak
// (^) on flat ground; * marks the route cell, reached by diagonal steps:
//
//	    . * .
//	    S ^ D
//	    . . .
//
//	go get github.com/katalvlaran/heightfield
package heightfield

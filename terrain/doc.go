// Package terrain turns a height grid into a terrain: world positions and
// normals, hydrological maps, two erosion models and least-cost routing.
//
// A Terrain holds a *grid.Grid (composition, not extension), the per-cell
// layer.Kind assignment, and lattice views from gridgraph used to walk
// 4- and 8-neighbourhoods.
//
// Derived maps:
//
//   - SlopeMap:     gradient magnitude.
//   - LaplacianMap: discrete Laplacian over the available 4-neighbours.
//   - AreaMap:      multi-flow-direction drainage area, highest cells first.
//   - WetnessMap:   log(area / slope), floored at MinSlope so it stays finite.
//
// Erosion:
//
//   - ThermalErosion moves material from cells steeper than the talus angle
//     to their lower neighbours. It reads a snapshot and writes the live grid,
//     and conserves total elevation.
//   - TectonicErosion applies the stream-power law for a number of
//     iterations. The diffusion term is off unless WithDiffusion(true).
//
// Routing:
//
//   - SlopeGraph builds an 8-connected directed graph weighted by the
//     absolute slope angle between cells.
//   - Route runs dijkstra over it and marks the path cells with layer.Path.
//     An unreachable destination returns ErrUnreachable and an empty path.
//
// Library code logs at Debug through the logger set with WithLogger.
package terrain

// Package grid implements the dense scalar field that backs a terrain:
// an nx×ny array of float64 values over an axis-aligned world rectangle.
//
// What:
//
//   - Range-checked access (At, Set) and row stride ny: Index(i,j) = i*ny + j.
//   - Central-difference gradients with a selectable edge policy
//     (BoundaryPeriodic wraps, BoundaryClamp goes one-sided).
//   - Elementwise Add/Sub (gonum floats) with hard dimension checks.
//   - MinValue/MaxValue over the interior scan window.
//   - Smooth and Blur 3×3 filters (no-ops under FilterTruncated, normalised
//     by the kernel sum under FilterWeighted).
//   - Noise initialisation (FillNoise, AddNoise) from any Sampler.
//   - Classification of every cell into a layer.Kind.
//
// Derived maps (GradXMap, GradYMap, and the terrain maps built on Like)
// are independent grids: they share bounds, resolution and options with
// their source but never its values slice.
//
// Errors:
//
//   - ErrInvalidDimensions: nx or ny below 1.
//   - ErrBadValues:         values length is not nx*ny.
//   - ErrOutOfRange:        (i,j) outside the grid.
//   - ErrDimensionMismatch: Add/Sub operands of different resolution.
//   - ErrNilSampler:        FillNoise/AddNoise called with nil.
package grid

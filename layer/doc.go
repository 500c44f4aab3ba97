// Package layer holds the fixed set of surface materials a terrain cell can
// carry: concrete, grass, snow, water, and the path marker used to highlight
// a computed route.
//
// Layers live in a static registry keyed by Kind, so per-cell assignments
// are a []Kind rather than copies of the layer data. Thresholds turn an
// elevation into one of the four natural kinds by comparing its distance
// from the field minimum with fixed fractions of the min-max span.
//
//	t := layer.DefaultThresholds()
//	k := t.Classify(v, lo, hi-lo)
//	colour := layer.MustGet(k).Color
package layer

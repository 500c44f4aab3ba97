// Package noise provides the deterministic 2D noise sources that seed
// height grids.
//
// Two families are available: OpenSimplex2 (github.com/ojrac/opensimplex-go)
// and Perlin (github.com/aquilax/go-perlin). Either can be sampled as a
// single octave or layered as fractional Brownian motion (FBm) or ridged
// multifractal noise:
//
//	src, err := noise.New(noise.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	h := src.Sample(float64(i), float64(j))
//
// Config implements YAML-friendly text (un)marshalling for its enums, so
// "type: perlin" and "fractal: ridged" work directly in config files.
package noise

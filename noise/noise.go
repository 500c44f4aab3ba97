package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// evaluator is a single-octave 2D noise function.
type evaluator interface {
	Eval2(x, y float64) float64
}

// perlinOctave adapts go-perlin to evaluator. The library's own octave
// loop is disabled (n=1) so fractal layering stays uniform across families.
type perlinOctave struct {
	p *perlin.Perlin
}

func (o perlinOctave) Eval2(x, y float64) float64 { return o.p.Noise2D(x, y) }

// Source is a deterministic 2D noise function built from a Config.
// It is safe for concurrent use.
type Source struct {
	cfg      Config
	octaves  []evaluator
	bounding float64
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Frequency <= 0 || math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) {
		return fmt.Errorf("%w: %g", ErrBadFrequency, c.Frequency)
	}
	if _, ok := typeNames[c.Type]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(c.Type))
	}
	if _, ok := fractalNames[c.Fractal]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFractal, int(c.Fractal))
	}
	if c.Fractal != FractalNone && c.Octaves < 1 {
		return fmt.Errorf("%w: %d", ErrBadOctaves, c.Octaves)
	}

	return nil
}

// New builds a Source. Each octave is seeded with cfg.Seed plus its rank.
func New(cfg Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Octaves
	if cfg.Fractal == FractalNone {
		n = 1
	}

	s := &Source{cfg: cfg, octaves: make([]evaluator, n)}
	for o := 0; o < n; o++ {
		seed := cfg.Seed + int64(o)
		switch cfg.Type {
		case TypePerlin:
			s.octaves[o] = perlinOctave{p: perlin.NewPerlin(2, 2, 1, seed)}
		default:
			s.octaves[o] = opensimplex.New(seed)
		}
	}

	// Normalise the octave sum back to roughly [-1,1].
	amp, total := 1.0, 0.0
	for o := 0; o < n; o++ {
		total += amp
		amp *= math.Abs(cfg.Gain)
	}
	s.bounding = 1 / total

	return s, nil
}

// Config returns the configuration the source was built from.
func (s *Source) Config() Config { return s.cfg }

// Sample returns the noise value at (x, y), roughly in [-1, 1].
// It is a pure function of the coordinate and the configuration.
func (s *Source) Sample(x, y float64) float64 {
	x *= s.cfg.Frequency
	y *= s.cfg.Frequency

	switch s.cfg.Fractal {
	case FractalFBm:
		return s.fbm(x, y)
	case FractalRidged:
		return s.ridged(x, y)
	default:
		return s.octaves[0].Eval2(x, y)
	}
}

func (s *Source) fbm(x, y float64) float64 {
	sum, amp := 0.0, s.bounding
	for _, o := range s.octaves {
		sum += o.Eval2(x, y) * amp
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		amp *= s.cfg.Gain
	}

	return sum
}

func (s *Source) ridged(x, y float64) float64 {
	sum, amp := 0.0, s.bounding
	for _, o := range s.octaves {
		sum += (1 - 2*math.Abs(o.Eval2(x, y))) * amp
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		amp *= s.cfg.Gain
	}

	return sum
}

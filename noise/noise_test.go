package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heightfield/noise"
)

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*noise.Config)
		err  error
	}{
		{"ZeroFrequency", func(c *noise.Config) { c.Frequency = 0 }, noise.ErrBadFrequency},
		{"NaNFrequency", func(c *noise.Config) { c.Frequency = math.NaN() }, noise.ErrBadFrequency},
		{"NoOctaves", func(c *noise.Config) { c.Octaves = 0 }, noise.ErrBadOctaves},
		{"UnknownType", func(c *noise.Config) { c.Type = noise.Type(9) }, noise.ErrUnknownType},
		{"UnknownFractal", func(c *noise.Config) { c.Fractal = noise.FractalType(9) }, noise.ErrUnknownFractal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := noise.DefaultConfig()
			tc.mut(&cfg)
			_, err := noise.New(cfg)
			require.ErrorIs(t, err, tc.err)
		})
	}

	// Octaves are irrelevant without a fractal.
	cfg := noise.DefaultConfig()
	cfg.Fractal, cfg.Octaves = noise.FractalNone, 0
	_, err := noise.New(cfg)
	require.NoError(t, err)
}

// TestSample_Deterministic checks purity and seed sensitivity for every
// family/fractal combination.
func TestSample_Deterministic(t *testing.T) {
	for _, typ := range []noise.Type{noise.TypeOpenSimplex2, noise.TypePerlin} {
		for _, fr := range []noise.FractalType{noise.FractalNone, noise.FractalFBm, noise.FractalRidged} {
			t.Run(typ.String()+"/"+fr.String(), func(t *testing.T) {
				cfg := noise.DefaultConfig()
				cfg.Type, cfg.Fractal, cfg.Frequency = typ, fr, 0.13

				a, err := noise.New(cfg)
				require.NoError(t, err)
				b, err := noise.New(cfg)
				require.NoError(t, err)
				cfg.Seed++
				c, err := noise.New(cfg)
				require.NoError(t, err)

				differs := false
				for i := 0; i < 16; i++ {
					for j := 0; j < 16; j++ {
						x, y := float64(i)+0.37, float64(j)+0.61
						v := a.Sample(x, y)
						assert.Equal(t, v, b.Sample(x, y))
						assert.Equal(t, v, a.Sample(x, y))
						assert.False(t, math.IsNaN(v))
						assert.LessOrEqual(t, math.Abs(v), 1.5)
						if v != c.Sample(x, y) {
							differs = true
						}
					}
				}
				assert.True(t, differs, "seed had no effect")
			})
		}
	}
}

func TestConfig_YAML(t *testing.T) {
	src := []byte("type: Perlin\nseed: 7\nfrequency: 0.05\nlacunarity: 2\noctaves: 3\ngain: 0.5\nfractal: ridged\n")
	var cfg noise.Config
	require.NoError(t, yaml.Unmarshal(src, &cfg))
	assert.Equal(t, noise.Config{
		Type: noise.TypePerlin, Seed: 7, Frequency: 0.05, Lacunarity: 2,
		Octaves: 3, Gain: 0.5, Fractal: noise.FractalRidged,
	}, cfg)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: perlin")
	assert.Contains(t, string(out), "fractal: ridged")

	require.ErrorIs(t, yaml.Unmarshal([]byte("type: value\n"), &cfg), noise.ErrUnknownType)
	require.ErrorIs(t, yaml.Unmarshal([]byte("fractal: pingpong\n"), &cfg), noise.ErrUnknownFractal)
}

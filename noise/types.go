// Package noise defines the configuration, enums and sentinel errors of
// the noise sources used to initialise height grids.
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for noise configuration.
var (
	// ErrBadFrequency indicates a non-positive or non-finite frequency.
	ErrBadFrequency = errors.New("noise: frequency must be positive and finite")
	// ErrBadOctaves indicates fewer than one fractal octave.
	ErrBadOctaves = errors.New("noise: octaves must be at least 1")
	// ErrUnknownType indicates an unsupported noise family.
	ErrUnknownType = errors.New("noise: unknown noise type")
	// ErrUnknownFractal indicates an unsupported fractal type.
	ErrUnknownFractal = errors.New("noise: unknown fractal type")
)

// Type selects the base noise family.
type Type int

const (
	// TypeOpenSimplex2 is OpenSimplex gradient noise.
	TypeOpenSimplex2 Type = iota
	// TypePerlin is classic Perlin gradient noise.
	TypePerlin
)

var typeNames = map[Type]string{
	TypeOpenSimplex2: "opensimplex2",
	TypePerlin:       "perlin",
}

// String returns the config name of t.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("type(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, case-insensitively.
func (t *Type) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for k, v := range typeNames {
		if v == name {
			*t = k
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// FractalType selects how octaves are combined.
type FractalType int

const (
	// FractalNone samples a single octave.
	FractalNone FractalType = iota
	// FractalFBm sums octaves (fractional Brownian motion).
	FractalFBm
	// FractalRidged sums inverted absolute octaves, producing ridges.
	FractalRidged
)

var fractalNames = map[FractalType]string{
	FractalNone:   "none",
	FractalFBm:    "fbm",
	FractalRidged: "ridged",
}

// String returns the config name of f.
func (f FractalType) String() string {
	if s, ok := fractalNames[f]; ok {
		return s
	}

	return fmt.Sprintf("fractal(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f FractalType) MarshalText() ([]byte, error) {
	if _, ok := fractalNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFractal, int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, case-insensitively.
func (f *FractalType) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for k, v := range fractalNames {
		if v == name {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownFractal, name)
}

// Config describes a noise source.
//
// Frequency scales input coordinates; values close to zero give flatter
// terrain. Lacunarity multiplies the frequency and Gain the amplitude from
// one octave to the next.
type Config struct {
	Type       Type        `yaml:"type"`
	Seed       int64       `yaml:"seed"`
	Frequency  float64     `yaml:"frequency"`
	Lacunarity float64     `yaml:"lacunarity"`
	Octaves    int         `yaml:"octaves"`
	Gain       float64     `yaml:"gain"`
	Fractal    FractalType `yaml:"fractal"`
}

// DefaultConfig returns OpenSimplex2 FBm noise with frequency 0.01,
// lacunarity 2.5, 4 octaves and gain 0.2.
func DefaultConfig() Config {
	return Config{
		Type:       TypeOpenSimplex2,
		Seed:       1337,
		Frequency:  0.01,
		Lacunarity: 2.5,
		Octaves:    4,
		Gain:       0.2,
		Fractal:    FractalFBm,
	}
}

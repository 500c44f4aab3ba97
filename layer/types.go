// Package layer defines the static registry of surface-material layers
// and the elevation thresholds used to assign them.
package layer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Sentinel errors for layer operations.
var (
	// ErrUnknownKind indicates a Kind outside the registry.
	ErrUnknownKind = errors.New("layer: unknown kind")
	// ErrBadThresholds indicates thresholds outside 0 <= Grass <= Concrete <= Snow <= 1.
	ErrBadThresholds = errors.New("layer: thresholds must satisfy 0 <= grass <= concrete <= snow <= 1")
)

// Kind identifies one of the fixed material layers.
type Kind uint8

const (
	// Concrete is rock and bare ground.
	Concrete Kind = iota
	// Grass is vegetated low ground.
	Grass
	// Snow covers the highest band.
	Snow
	// Water fills the lowest band.
	Water
	// Path marks cells lying on a computed route.
	Path

	numKinds
)

// Layer is an immutable material description.
type Layer struct {
	Kind     Kind
	Label    string
	Erosion  float64    // erosion susceptibility coefficient
	Color    mgl32.Vec3 // display colour, components in [0,1]
	Priority int        // higher wins when layers overlap
}

// Thresholds are fractions of the elevation span, measured from the minimum,
// above which a cell is classified as Snow, Concrete or Grass.
type Thresholds struct {
	Snow     float64 `yaml:"snow"`
	Concrete float64 `yaml:"concrete"`
	Grass    float64 `yaml:"grass"`
}

// DefaultThresholds returns 0.8 / 0.45 / 0.10.
func DefaultThresholds() Thresholds {
	return Thresholds{Snow: 0.8, Concrete: 0.45, Grass: 0.10}
}

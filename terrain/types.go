// Package terrain defines the options, parameters and sentinel errors of
// the terrain engine.
package terrain

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/layer"
)

// Sentinel errors for terrain operations.
var (
	// ErrNilGrid indicates NewFromGrid was called with nil.
	ErrNilGrid = errors.New("terrain: grid is nil")
	// ErrOutOfRange indicates a cell, vertex or world position outside the terrain.
	ErrOutOfRange = errors.New("terrain: position out of range")
	// ErrGeometryMismatch indicates a derived map whose bounds or resolution differ from the terrain's.
	ErrGeometryMismatch = errors.New("terrain: map geometry does not match terrain")
	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("terrain: iterations must be non-negative")
	// ErrUnreachable indicates the route destination cannot be reached from the source.
	ErrUnreachable = errors.New("terrain: destination unreachable")

	// ErrBadTalusAngle indicates a talus angle outside (0, 90) degrees.
	ErrBadTalusAngle = errors.New("terrain: talus angle must be in (0, 90) degrees")
	// ErrBadThermalRate indicates a thermal rate outside [0, 1].
	ErrBadThermalRate = errors.New("terrain: thermal rate must be in [0, 1]")
	// ErrBadMinSlope indicates a non-positive wetness slope floor.
	ErrBadMinSlope = errors.New("terrain: min slope must be positive")
	// ErrBadMaxRouteSlope indicates a non-positive route slope limit.
	ErrBadMaxRouteSlope = errors.New("terrain: max route slope must be positive")
)

// Options configures a Terrain.
type Options struct {
	// TalusAngle is the slope angle in degrees above which thermal erosion moves material.
	TalusAngle float64
	// ThermalRate is the fraction of the centre height shed per pass, shared among steep neighbours.
	ThermalRate float64
	// Thresholds drive layer classification.
	Thresholds layer.Thresholds
	// Diffusion enables the Laplacian term of tectonic erosion.
	Diffusion bool
	// RefreshDerived recomputes area, slope and Laplacian before every tectonic iteration.
	RefreshDerived bool
	// MinSlope is the floor applied to slope and area in the wetness index.
	MinSlope float64
	// MaxRouteSlope makes route edges whose angle is at or above it impassable. +Inf disables it.
	MaxRouteSlope float64
	// GridOptions are passed to the grid built by New.
	GridOptions []grid.Option
	// Logger receives debug records for erosion and routing.
	Logger *slog.Logger
}

// Option is a functional option for New and NewFromGrid.
type Option func(*Options)

// WithTalusAngle sets the talus angle in degrees.
// Panics with ErrBadTalusAngle outside (0, 90).
func WithTalusAngle(deg float64) Option {
	return func(o *Options) {
		if !(deg > 0 && deg < 90) {
			panic(ErrBadTalusAngle.Error())
		}
		o.TalusAngle = deg
	}
}

// WithThermalRate sets the thermal erosion rate.
// Panics with ErrBadThermalRate outside [0, 1].
func WithThermalRate(rate float64) Option {
	return func(o *Options) {
		if !(rate >= 0 && rate <= 1) {
			panic(ErrBadThermalRate.Error())
		}
		o.ThermalRate = rate
	}
}

// WithThresholds sets the layer thresholds. Panics if they do not validate.
func WithThresholds(th layer.Thresholds) Option {
	return func(o *Options) {
		if err := th.Validate(); err != nil {
			panic(err.Error())
		}
		o.Thresholds = th
	}
}

// WithDiffusion honours the diffusion coefficient of TectonicParams.
func WithDiffusion(enabled bool) Option {
	return func(o *Options) { o.Diffusion = enabled }
}

// WithRefreshDerived recomputes derived maps on every tectonic iteration.
func WithRefreshDerived(enabled bool) Option {
	return func(o *Options) { o.RefreshDerived = enabled }
}

// WithMinSlope sets the wetness floor. Panics with ErrBadMinSlope if not positive.
func WithMinSlope(m float64) Option {
	return func(o *Options) {
		if !(m > 0) {
			panic(ErrBadMinSlope.Error())
		}
		o.MinSlope = m
	}
}

// WithMaxRouteSlope limits the steepest edge a route may use, in degrees.
// Panics with ErrBadMaxRouteSlope if not positive.
func WithMaxRouteSlope(deg float64) Option {
	return func(o *Options) {
		if !(deg > 0) {
			panic(ErrBadMaxRouteSlope.Error())
		}
		o.MaxRouteSlope = deg
	}
}

// WithGridOptions forwards options to the grid built by New.
func WithGridOptions(opts ...grid.Option) Option {
	return func(o *Options) { o.GridOptions = append(o.GridOptions, opts...) }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns talus 30°, rate 0.01, default thresholds,
// diffusion and refresh disabled, min slope 1e-6, no route slope limit
// and slog.Default().
func DefaultOptions() Options {
	return Options{
		TalusAngle:    30,
		ThermalRate:   0.01,
		Thresholds:    layer.DefaultThresholds(),
		MinSlope:      1e-6,
		MaxRouteSlope: math.Inf(1),
		Logger:        slog.Default(),
	}
}

// TectonicParams are the stream-power law coefficients:
// each iteration adds U + K·area^(N/2)·slope^N (+ L·laplacian with diffusion).
type TectonicParams struct {
	Uplift      float64 `yaml:"uplift"`      // u
	Erodibility float64 `yaml:"erodibility"` // k
	Diffusion   float64 `yaml:"diffusion"`   // l
	Exponent    float64 `yaml:"exponent"`    // n
	Iterations  int     `yaml:"iterations"`
}

// PointArea is a cell and its elevation, as ordered for flow accumulation.
type PointArea struct {
	I, J int
	H    float64
}

// Route is the result of a least-cost routing query.
type Route struct {
	// Path lists the cell indices from source to destination, inclusive.
	Path []int
	// Cost is the total slope cost of Path.
	Cost float64
	// Distances holds the cost from the source to every cell (+Inf if unreachable).
	Distances []float64
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/layer"
	"github.com/katalvlaran/heightfield/noise"
	"github.com/katalvlaran/heightfield/terrain"
)

var (
	// ErrBadConfig wraps every validation failure of a loaded config.
	ErrBadConfig = errors.New("heightfield: invalid config")
)

// Cell is an (i, j) grid coordinate, written as [i, j] in YAML.
type Cell [2]int

// Config is the demo pipeline configuration. Zero fields in a YAML file
// keep the values from DefaultConfig.
type Config struct {
	Min [2]float64 `yaml:"min"`
	Max [2]float64 `yaml:"max"`
	NX  int        `yaml:"nx"`
	NY  int        `yaml:"ny"`

	Boundary string `yaml:"boundary"` // periodic | clamp
	Filter   string `yaml:"filter"`   // truncated | weighted

	Noise      noise.Config     `yaml:"noise"`
	Amplitude  float64          `yaml:"amplitude"`
	Thresholds layer.Thresholds `yaml:"thresholds"`

	ThermalPasses int     `yaml:"thermal_passes"`
	TalusAngle    float64 `yaml:"talus_angle"`
	ThermalRate   float64 `yaml:"thermal_rate"`

	Tectonic       terrain.TectonicParams `yaml:"tectonic"`
	Diffusion      bool                   `yaml:"diffusion"`
	RefreshDerived bool                   `yaml:"refresh_derived"`

	RouteFrom     Cell    `yaml:"route_from"`
	RouteTo       Cell    `yaml:"route_to"`
	MaxRouteSlope float64 `yaml:"max_route_slope"` // 0 = no limit
}

// DefaultConfig returns a 128×128 map over [0,512]² with light erosion.
func DefaultConfig() Config {
	return Config{
		Min:           [2]float64{0, 0},
		Max:           [2]float64{512, 512},
		NX:            128,
		NY:            128,
		Boundary:      "periodic",
		Filter:        "truncated",
		Noise:         noise.DefaultConfig(),
		Amplitude:     100,
		Thresholds:    layer.DefaultThresholds(),
		ThermalPasses: 5,
		TalusAngle:    30,
		ThermalRate:   0.5,
		Tectonic: terrain.TectonicParams{
			Uplift:      0,
			Erodibility: 0.01,
			Diffusion:   0.1,
			Exponent:    1,
			Iterations:  2,
		},
		RouteFrom: Cell{1, 1},
		RouteTo:   Cell{126, 126},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("heightfield: read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("heightfield: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the fields the library options would otherwise panic on.
func (c Config) Validate() error {
	switch {
	case c.NX < 1 || c.NY < 1:
		return fmt.Errorf("%w: resolution %dx%d", ErrBadConfig, c.NX, c.NY)
	case c.Max[0] < c.Min[0] || c.Max[1] < c.Min[1]:
		return fmt.Errorf("%w: bounds %v..%v", ErrBadConfig, c.Min, c.Max)
	case c.ThermalPasses < 0:
		return fmt.Errorf("%w: thermal_passes %d", ErrBadConfig, c.ThermalPasses)
	case c.TalusAngle <= 0 || c.TalusAngle >= 90:
		return fmt.Errorf("%w: talus_angle %g", ErrBadConfig, c.TalusAngle)
	case c.ThermalRate < 0 || c.ThermalRate > 1:
		return fmt.Errorf("%w: thermal_rate %g", ErrBadConfig, c.ThermalRate)
	case c.MaxRouteSlope < 0 || c.MaxRouteSlope > 90:
		return fmt.Errorf("%w: max_route_slope %g", ErrBadConfig, c.MaxRouteSlope)
	case !c.inside(c.RouteFrom) || !c.inside(c.RouteTo):
		return fmt.Errorf("%w: route %v→%v outside %dx%d", ErrBadConfig, c.RouteFrom, c.RouteTo, c.NX, c.NY)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := c.Noise.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if _, err := c.gridOptions(); err != nil {
		return err
	}

	return nil
}

func (c Config) inside(p Cell) bool {
	return p[0] >= 0 && p[0] < c.NX && p[1] >= 0 && p[1] < c.NY
}

// Bounds returns the configured world rectangle.
func (c Config) Bounds() grid.Bounds {
	return grid.Bounds{Min: mgl64.Vec2(c.Min), Max: mgl64.Vec2(c.Max)}
}

func (c Config) gridOptions() ([]grid.Option, error) {
	var opts []grid.Option
	switch strings.ToLower(c.Boundary) {
	case "", "periodic":
		opts = append(opts, grid.WithBoundary(grid.BoundaryPeriodic))
	case "clamp":
		opts = append(opts, grid.WithBoundary(grid.BoundaryClamp))
	default:
		return nil, fmt.Errorf("%w: boundary %q", ErrBadConfig, c.Boundary)
	}
	switch strings.ToLower(c.Filter) {
	case "", "truncated":
		opts = append(opts, grid.WithFilter(grid.FilterTruncated))
	case "weighted":
		opts = append(opts, grid.WithFilter(grid.FilterWeighted))
	default:
		return nil, fmt.Errorf("%w: filter %q", ErrBadConfig, c.Filter)
	}

	return opts, nil
}

// TerrainOptions translates the config into terrain options.
func (c Config) TerrainOptions() ([]terrain.Option, error) {
	gopts, err := c.gridOptions()
	if err != nil {
		return nil, err
	}
	opts := []terrain.Option{
		terrain.WithGridOptions(gopts...),
		terrain.WithThresholds(c.Thresholds),
		terrain.WithTalusAngle(c.TalusAngle),
		terrain.WithThermalRate(c.ThermalRate),
		terrain.WithDiffusion(c.Diffusion),
		terrain.WithRefreshDerived(c.RefreshDerived),
	}
	if c.MaxRouteSlope > 0 {
		opts = append(opts, terrain.WithMaxRouteSlope(c.MaxRouteSlope))
	}

	return opts, nil
}

// scaled wraps a noise source with an amplitude factor.
type scaled struct {
	src *noise.Source
	amp float64
}

func (s scaled) Sample(x, y float64) float64 { return s.src.Sample(x, y) * s.amp }

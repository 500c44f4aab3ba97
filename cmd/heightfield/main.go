// Command heightfield generates a noise terrain, erodes it, routes across it
// and writes every derived map as a PNG.
//
// Usage:
//
//	heightfield [-config file.yaml] [-out dir] [-scale n] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/layer"
	"github.com/katalvlaran/heightfield/noise"
	"github.com/katalvlaran/heightfield/terrain"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults if empty)")
	out := flag.String("out", ".", "output directory for PNG files")
	scale := flag.Int("scale", 4, "PNG upscale factor")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Error("output directory", "err", err)
		os.Exit(1)
	}
	if err := run(cfg, *out, *scale, log); err != nil {
		log.Error("pipeline failed", "err", err)
		os.Exit(1)
	}
}

// run executes the whole pipeline: noise, maps, erosion, routing, layers.
func run(cfg Config, out string, scale int, log *slog.Logger) error {
	src, err := noise.New(cfg.Noise)
	if err != nil {
		return err
	}
	gopts, err := cfg.gridOptions()
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Bounds(), cfg.NX, cfg.NY, nil, gopts...)
	if err != nil {
		return err
	}
	if err := g.FillNoise(scaled{src: src, amp: cfg.Amplitude}); err != nil {
		return err
	}

	topts, err := cfg.TerrainOptions()
	if err != nil {
		return err
	}
	tr, err := terrain.NewFromGrid(g, append(topts, terrain.WithLogger(log))...)
	if err != nil {
		return err
	}
	log.Info("terrain generated",
		"nx", cfg.NX, "ny", cfg.NY,
		"noise", cfg.Noise.Type, "fractal", cfg.Noise.Fractal, "seed", cfg.Noise.Seed,
		"min", tr.Grid().MinValue(), "max", tr.Grid().MaxValue())

	save := func(name string, img image.Image) error {
		path, err := writePNG(out, name, img, scale)
		if err != nil {
			return err
		}
		log.Info("wrote", "file", path)

		return nil
	}

	if err := save("height", grayImage(tr.Grid())); err != nil {
		return err
	}
	slope := tr.SlopeMap()
	area := tr.AreaMap()
	wet, err := tr.WetnessMap(area, slope)
	if err != nil {
		return err
	}
	maps := []struct {
		name string
		g    *grid.Grid
	}{
		{"slope", slope},
		{"area", area},
		{"wetness", wet},
		{"laplacian", tr.LaplacianMap()},
		{"grad_x", tr.Grid().GradXMap()},
		{"grad_y", tr.Grid().GradYMap()},
	}
	for _, m := range maps {
		if err := save(m.name, grayImage(m.g)); err != nil {
			return err
		}
	}

	for p := 0; p < cfg.ThermalPasses; p++ {
		shed := tr.ThermalErosion()
		log.Debug("thermal pass", "pass", p, "cells", shed)
	}
	if err := tr.TectonicErosion(cfg.Tectonic); err != nil {
		return err
	}
	tr.ClassifyLayers()
	if err := save("eroded", grayImage(tr.Grid())); err != nil {
		return err
	}

	from, err := tr.Index(cfg.RouteFrom[0], cfg.RouteFrom[1])
	if err != nil {
		return err
	}
	to, err := tr.Index(cfg.RouteTo[0], cfg.RouteTo[1])
	if err != nil {
		return err
	}
	r, err := tr.Route(from, to)
	switch {
	case errors.Is(err, terrain.ErrUnreachable):
		log.Warn("no route", "from", cfg.RouteFrom, "to", cfg.RouteTo)
	case err != nil:
		return err
	default:
		log.Info("route", "from", cfg.RouteFrom, "to", cfg.RouteTo, "cells", len(r.Path), "cost", r.Cost)
	}

	lakes, err := tr.LayerRegions(layer.Water)
	if err != nil {
		return err
	}
	log.Info("layers", "lakes", len(lakes))

	nx, ny := tr.Size()
	if err := save("layers", layerImage(tr.Layers(), nx, ny)); err != nil {
		return fmt.Errorf("heightfield: layers: %w", err)
	}

	return nil
}

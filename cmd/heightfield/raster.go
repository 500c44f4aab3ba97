package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/layer"
)

// grayImage maps g onto 0..255 between its extreme values. Pixel (x, y)
// is cell (i=x, j=y). A constant field renders black.
func grayImage(g *grid.Grid) *image.Gray {
	nx, ny := g.Size()
	vals := g.Raw()
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo

	img := image.NewGray(image.Rect(0, 0, nx, ny))
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			var c uint8
			if span > 0 {
				c = uint8((vals[g.Index(i, j)] - lo) / span * 255)
			}
			img.SetGray(i, j, color.Gray{Y: c})
		}
	}

	return img
}

// layerImage paints each cell with its layer colour.
func layerImage(kinds []layer.Kind, nx, ny int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := layer.MustGet(kinds[i*ny+j]).Color
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(c.X() * 255),
				G: uint8(c.Y() * 255),
				B: uint8(c.Z() * 255),
				A: 255,
			})
		}
	}

	return img
}

// upscale enlarges src by an integer factor with nearest-neighbour sampling.
func upscale(src image.Image, scale int) image.Image {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}

// writePNG writes img, upscaled by scale, to dir/name.png.
func writePNG(dir, name string, img image.Image, scale int) (string, error) {
	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("heightfield: %w", err)
	}
	if err := png.Encode(f, upscale(img, scale)); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("heightfield: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("heightfield: %w", err)
	}

	return path, nil
}

package main

import (
	"context"
	"log"
	"math"
	"os"
	"strings"

	"github.com/planetgen/planetgen/internal/cliopt"
	"github.com/planetgen/planetgen/internal/oracle"
	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/project"
	"github.com/planetgen/planetgen/pkg/planet"
)

const minimalPalette = "0 0 0 80\n6 0 64 160\n10 0 128 0\n19 255 255 255\n"

// This example renders an orthographic globe with daylight shading and a
// coastline plus land contour lines every 2 colour steps, drawn in the
// palette's OUTLINE1/OUTLINE2 colours, showing how the lower-level Generate result
// (a *raster.Frame) can be inspected before encoding.
func main() {
	pal, err := palette.Load(strings.NewReader(minimalPalette))
	if err != nil {
		log.Fatalf("load palette: %v", err)
	}

	cfg := planet.Default()
	cfg.Width, cfg.Height = 400, 400
	cfg.Seed = 0.42
	cfg.Projection = project.Orthographic
	cfg.Shading = oracle.ShadeDaylight
	cfg.ShadeAngle = 45 * math.Pi / 180
	cfg.ShadeAngle2 = 30 * math.Pi / 180
	cfg.OutlineMode = cliopt.OutlineTrace
	cfg.ContourStep = 2

	gen := planet.NewGenerator(cfg, pal)
	frame, err := gen.Generate(context.Background())
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	land, sea := 0, 0
	for _, c := range frame.Colour {
		if int(c) >= palette.Lowest && int(c) < pal.Land {
			sea++
		} else if int(c) != palette.Back {
			land++
		}
	}
	log.Printf("rendered %d land pixels, %d sea pixels", land, sea)

	out, err := os.Create("planet-globe.bmp")
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	if err := gen.Write(out, frame, cliopt.FormatBMP, false); err != nil {
		log.Fatalf("write: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/planetgen/planetgen/internal/cliopt"
	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/project"
	"github.com/planetgen/planetgen/pkg/planet"
)

// minimalPalette stands in for a real "Olsson.col" file so this example
// runs without any external assets.
const minimalPalette = "0 0 0 80\n6 0 64 160\n10 0 128 0\n19 255 255 255\n"

func main() {
	pal, err := palette.Load(strings.NewReader(minimalPalette))
	if err != nil {
		log.Fatalf("load palette: %v", err)
	}

	cfg := planet.Default()
	cfg.Width, cfg.Height = 320, 200
	cfg.Seed = 0.1
	cfg.Projection = project.Mercator

	gen := planet.NewGenerator(cfg, pal)
	frame, err := gen.Generate(context.Background())
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	out, err := os.Create("planet-map.ppm")
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	if err := gen.Write(out, frame, cliopt.FormatPPM, false); err != nil {
		log.Fatalf("write: %v", err)
	}
}

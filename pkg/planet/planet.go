package planet

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/planetgen/planetgen/internal/cliopt"
	"github.com/planetgen/planetgen/internal/encode"
	"github.com/planetgen/planetgen/internal/oracle"
	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/project"
	"github.com/planetgen/planetgen/internal/raster"
)

// Generator builds a planet image from a Config, hiding the internal
// oracle/projection/raster/palette pipeline behind a small method set.
type Generator struct {
	cfg  Config
	pal  *palette.Palette
	kind project.Kind
}

// NewGenerator builds a Generator from cfg and an already-loaded
// palette. Palette loading is left to the caller (and to
// internal/palette.Load) so library users can supply a palette from any
// source, not just a file path.
func NewGenerator(cfg Config, pal *palette.Palette) *Generator {
	return &Generator{cfg: cfg, pal: pal, kind: cfg.Projection}
}

// Generate renders one frame according to g's configuration.
func (g *Generator) Generate(ctx context.Context) (*raster.Frame, error) {
	if g.cfg.FindMatch {
		return nil, fmt.Errorf("find-match mode has no single frame; use FindMatch")
	}

	params := project.Params{
		Longi:  g.cfg.LongiDeg * math.Pi / 180,
		Lat:    g.cfg.LatDeg * math.Pi / 180,
		Scale:  g.cfg.Scale,
		Width:  g.cfg.Width,
		Height: g.cfg.Height,
	}
	proj := project.Select(g.kind, params)

	baseDepth := project.BaseDepth(g.cfg.Scale, g.cfg.Height)

	base := oracle.New(oracle.Params{
		Seed:        g.cfg.Seed,
		M:           g.cfg.InitialAlt,
		DD1:         g.cfg.DD1,
		DD2:         g.cfg.DD2,
		POW:         g.cfg.POW,
		Depth:       baseDepth,
		Shading:     g.cfg.Shading,
		ShadeAngle:  g.cfg.ShadeAngle,
		ShadeAngle2: g.cfg.ShadeAngle2,
	})

	opts := raster.Options{
		Workers:       g.cfg.Workers,
		Latic:         g.cfg.Latic,
		Shading:       g.cfg.Shading != oracle.ShadeNone,
		WithGrid:      g.cfg.VGridDeg != 0 || g.cfg.HGridDeg != 0,
		IsHeightfield: g.cfg.Heightfield,
		BaseDepth:     baseDepth,
	}

	frame, err := raster.Render(ctx, g.cfg.Width, g.cfg.Height, base, proj, g.pal, opts)
	if err != nil {
		return nil, err
	}

	if opts.WithGrid {
		raster.ApplyGrid(frame, g.cfg.VGridDeg, g.cfg.HGridDeg)
	}

	switch g.cfg.OutlineMode {
	case cliopt.OutlineBW:
		raster.ApplyOutline(frame, raster.OutlineBWOnly, g.cfg.ContourStep, g.pal)
	case cliopt.OutlineTrace:
		raster.ApplyOutline(frame, raster.OutlineTraceColour, g.cfg.ContourStep, g.pal)
	}

	if opts.Shading {
		raster.SmoothShade(frame)
	}

	return frame, nil
}

// WaterPercentage returns the percentage (0 to 100) of frame pixels whose
// colour index is below the land threshold; reserved indices such as BACK
// count as water. The command prints it to stderr after a
// Peters-projection run.
func WaterPercentage(frame *raster.Frame, pal *palette.Palette) float64 {
	water, land := 0, 0
	for _, c := range frame.Colour {
		if int(c) < pal.Land {
			water++
		} else {
			land++
		}
	}
	if water+land == 0 {
		return 0
	}
	return 100 * float64(water) / float64(water+land)
}

// Write encodes frame to w in the requested format. isBW requests the
// black-and-white variant of the chosen format (meaningful only when
// an outline mode was applied).
func (g *Generator) Write(w io.Writer, frame *raster.Frame, format cliopt.OutputFormat, isBW bool) error {
	pixel := func(i, j int) color.RGBA {
		idx := int(frame.Colour[j*frame.Width+i])
		if idx < 0 || idx >= len(g.pal.Colors) {
			idx = 0
		}
		return g.pal.Colors[idx]
	}
	isWhite := func(i, j int) bool {
		return int(frame.Colour[j*frame.Width+i]) == palette.White
	}

	if g.cfg.Heightfield {
		return encode.WriteHeightfield(w, frame.Width, frame.Height, func(i, j int) int32 {
			return frame.Elevation[j*frame.Width+i]
		})
	}

	switch format {
	case cliopt.FormatPPM:
		if isBW {
			return encode.WritePPMBW(w, frame.Width, frame.Height, isWhite)
		}
		return encode.WritePPM(w, frame.Width, frame.Height, pixel)
	case cliopt.FormatXPM:
		if isBW {
			return encode.WriteXPMBW(w, frame.Width, frame.Height, isWhite)
		}
		colourIndex := func(i, j int) int { return int(frame.Colour[j*frame.Width+i]) }
		return encode.WriteXPM(w, frame.Width, frame.Height, colourIndex, g.pal.Colors)
	default:
		if isBW {
			return encode.WriteBMPBW(w, frame.Width, frame.Height, isWhite)
		}
		return encode.WriteBMP(w, frame.Width, frame.Height, pixel)
	}
}

// Package planet provides a clean public API for generating synthetic
// planetary-map raster images.
package planet

import (
	"math"

	"github.com/planetgen/planetgen/internal/cliopt"
	"github.com/planetgen/planetgen/internal/oracle"
	"github.com/planetgen/planetgen/internal/project"
)

// Config is the full set of parameters a single image generation needs.
//
// Zero-value Config is not meaningful; build one with Default or
// FromCLI.
type Config struct {
	Seed          float64
	Width, Height int
	Scale         float64
	LongiDeg      float64
	LatDeg        float64
	VGridDeg      float64
	HGridDeg      float64
	InitialAlt    float64
	DD1, DD2      float64
	POW           float64

	Latic bool

	Projection  project.Kind
	FindMatch   bool
	Heightfield bool

	Shading     oracle.ShadeMode
	ShadeAngle  float64 // radians
	ShadeAngle2 float64 // radians

	OutlineMode cliopt.OutlineMode
	ContourStep int

	Workers int
}

// Default returns the configuration the original program starts from
// before any flags are applied.
func Default() Config {
	return Config{
		Seed:       0.123,
		Width:      800,
		Height:     600,
		Scale:      1.0,
		InitialAlt: -0.02,
		DD1:        0.45,
		DD2:        0.035,
		POW:        0.47,
		Projection: project.Mercator,
	}
}

// projectionFromLetter maps a -p letter onto a project.Kind; ok is
// false for 'f' (find-match, handled separately by the caller) and for
// any unrecognized letter.
func projectionFromLetter(r rune) (kind project.Kind, ok bool) {
	switch r {
	case cliopt.ProjMercator:
		return project.Mercator, true
	case cliopt.ProjPeters:
		return project.Peters, true
	case cliopt.ProjSquare:
		return project.Square, true
	case cliopt.ProjSinusoidal:
		return project.Sinusoidal, true
	case cliopt.ProjOrthographic:
		return project.Orthographic, true
	case cliopt.ProjGnomonic:
		return project.Gnomonic, true
	case cliopt.ProjAzimuthal:
		return project.Azimuthal, true
	case cliopt.ProjConical:
		return project.Conical, true
	case cliopt.ProjMollweide:
		return project.Mollweide, true
	case cliopt.ProjStereographic:
		return project.Stereographic, true
	case cliopt.ProjIcosahedral:
		return project.Icosahedral, true
	case cliopt.ProjHeightfield:
		return project.Heightfield, true
	}
	return 0, false
}

// FromCLI builds a Config from a parsed command-line invocation.
func FromCLI(c cliopt.Config) (Config, error) {
	cfg := Default()
	cfg.Seed = c.Seed
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Scale = c.Scale
	cfg.LongiDeg = c.Longi
	cfg.LatDeg = c.Lat
	cfg.VGridDeg = c.VGrid
	cfg.HGridDeg = c.HGrid
	cfg.InitialAlt = c.InitialAlt
	cfg.DD1 = c.DD1
	cfg.DD2 = c.DD2
	cfg.Latic = c.Latic
	cfg.OutlineMode = c.OutlineMode
	cfg.ContourStep = c.ContourStep
	cfg.ShadeAngle = c.ShadeAngle * math.Pi / 180
	cfg.ShadeAngle2 = c.ShadeAngle2 * math.Pi / 180

	switch c.Shading {
	case cliopt.ShadeBumpAll:
		cfg.Shading = oracle.ShadeBumpAll
	case cliopt.ShadeBumpLand:
		cfg.Shading = oracle.ShadeBumpLand
	case cliopt.ShadeDaylight:
		cfg.Shading = oracle.ShadeDaylight
	default:
		cfg.Shading = oracle.ShadeNone
	}

	if c.Projection == cliopt.ProjFindMatch {
		cfg.FindMatch = true
		return cfg, nil
	}
	if c.Projection == cliopt.ProjHeightfield {
		cfg.Heightfield = true
	}
	kind, ok := projectionFromLetter(c.Projection)
	if !ok {
		return cfg, &cliopt.UsageError{Arg: string(c.Projection), Msg: "unknown projection letter"}
	}
	cfg.Projection = kind
	return cfg, nil
}

// Command planetgen generates a synthetic planetary-map raster image
// from a fractal altitude model.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/planetgen/planetgen/internal/cliopt"
	"github.com/planetgen/planetgen/internal/encode"
	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/raster"
	"github.com/planetgen/planetgen/pkg/planet"
)

const usage = `planetgen [options]
  -s seed -w width -h height -m scale -l longitude -L latitude
  -g vgrid -G hgrid -i initial_alt -c -C palette-file -o output-file
  -O[step] -E[step] -B -b -d -a angle -A angle -P -x -V dd2 -v dd1
  -pX (X in m p q s o g a c M S i h f) -X
`

func formatExt(format cliopt.OutputFormat) string {
	switch format {
	case cliopt.FormatPPM:
		return ".ppm"
	case cliopt.FormatXPM:
		return ".xpm"
	default:
		return ".bmp"
	}
}

func run(argv []string) int {
	cliCfg, err := cliopt.Parse(argv)
	if err != nil {
		var usageErr *cliopt.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, usageErr)
			fmt.Fprint(os.Stderr, usage)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cliCfg.Help {
		fmt.Fprint(os.Stdout, usage)
		return 0
	}

	if cliCfg.Projection == cliopt.ProjFindMatch {
		return runFindMatch(cliCfg)
	}

	cfg, err := planet.FromCLI(cliCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	palFile, err := os.Open(cliCfg.PaletteFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, &palette.ErrPaletteOpen{Path: cliCfg.PaletteFile, Err: err})
		return 1
	}
	pal, err := palette.Load(palFile)
	palFile.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, &palette.ErrPaletteOpen{Path: cliCfg.PaletteFile, Err: err})
		return 1
	}

	gen := planet.NewGenerator(cfg, pal)
	frame, err := gen.Generate(context.Background())
	if err != nil {
		var allocErr *raster.ErrAllocation
		if errors.As(err, &allocErr) {
			fmt.Fprintln(os.Stderr, allocErr)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	outPath := cliCfg.OutputFile
	if filepath.Ext(outPath) == "" {
		outPath += formatExt(cliCfg.Format)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, &encode.ErrOutputOpen{Path: outPath, Err: err})
		return 1
	}
	defer out.Close()

	isBW := cliCfg.OutlineMode == cliopt.OutlineBW
	if err := gen.Write(out, frame, cliCfg.Format, isBW); err != nil {
		fmt.Fprintln(os.Stderr, &encode.ErrOutputOpen{Path: outPath, Err: err})
		return 1
	}

	if cliCfg.Projection == cliopt.ProjPeters {
		fmt.Fprintf(os.Stderr, "water percentage: %.0f\n", planet.WaterPercentage(frame, pal))
	}
	return 0
}

func runFindMatch(cliCfg cliopt.Config) int {
	m, err := encode.ReadAsciiMap(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, w := range m.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	best := int(^uint(0) >> 1)
	sp := encode.SearchParams{
		Seed:         cliCfg.Seed,
		Increment:    0.00001,
		InitialAlt:   cliCfg.InitialAlt,
		DD1:          cliCfg.DD1,
		DD2:          cliCfg.DD2,
		POW:          0.47,
		MaxSeedSteps: 100000,
	}
	if err := encode.FindMatch(context.Background(), os.Stdout, m, sp, &best); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}

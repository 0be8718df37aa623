package raster

import (
	"math"

	"github.com/planetgen/planetgen/internal/palette"
)

// Classify turns an altitude and the direction's y-component (its sine
// latitude) into a palette index, applying the sea/land/icecap rules.
func Classify(a, y float64, latic bool, pal *palette.Palette) uint16 {
	y2 := y * y
	y8 := y2 * y2 * y2 * y2

	if a <= 0 {
		if latic && y8+a >= 0.98 {
			return uint16(pal.Highest)
		}
		v := pal.Sea + int(math.Floor(float64(pal.Sea-palette.Lowest+1)*10*a))
		return uint16(clampInt(v, palette.Lowest, pal.Sea))
	}

	if latic {
		a += 0.1 * y8
	}
	if a >= 0.1 {
		return uint16(pal.Highest)
	}
	v := pal.Land + int(math.Floor(float64(pal.Highest-pal.Land+1)*10*a))
	return uint16(clampInt(v, pal.Land, pal.Highest))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

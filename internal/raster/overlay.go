package raster

import (
	"math"

	"github.com/planetgen/planetgen/internal/palette"
)

// ApplyGrid paints GRID pixels wherever a longitude or latitude line
// (spaced vgrid/hgrid degrees apart) crosses between a pixel and its
// right or below neighbour, using the recorded direction buffers. Grid
// pixels are fully lit (shade 255) so they read clearly over shaded
// terrain.
func ApplyGrid(f *Frame, vgrid, hgrid float64) {
	if f.DirX == nil {
		return
	}

	lonBucket := func(idx int) int {
		deg := math.Atan2(f.DirX[idx], f.DirZ[idx])*180/math.Pi + 360
		return int(math.Floor(deg / vgrid))
	}
	latBucket := func(idx int) int {
		deg := math.Asin(clampUnit(f.DirY[idx]))*180/math.Pi + 360
		return int(math.Floor(deg / hgrid))
	}

	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			idx := f.at(i, j)
			isGrid := math.Abs(f.DirY[idx]) >= 1-1e-9

			if vgrid > 0 && !isGrid {
				if i+1 < f.Width && lonBucket(idx) != lonBucket(f.at(i+1, j)) {
					isGrid = true
				}
				if !isGrid && j+1 < f.Height && lonBucket(idx) != lonBucket(f.at(i, j+1)) {
					isGrid = true
				}
			}
			if hgrid > 0 && !isGrid {
				if i+1 < f.Width && latBucket(idx) != latBucket(f.at(i+1, j)) {
					isGrid = true
				}
				if !isGrid && j+1 < f.Height && latBucket(idx) != latBucket(f.at(i, j+1)) {
					isGrid = true
				}
			}

			if isGrid {
				f.Colour[idx] = uint16(palette.Grid)
				if f.Shade != nil {
					f.Shade[idx] = 255
				}
			}
		}
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// OutlineMode selects how the outline/contour pass renders coast and
// contour pixels.
type OutlineMode int

const (
	OutlineNone OutlineMode = iota
	OutlineTraceColour
	OutlineBWOnly
)

// ApplyOutline paints coastline and, if contourStep > 0, land contour
// pixels. In OutlineBWOnly mode land collapses to WHITE and sea to BLACK
// first; otherwise contour pixels alternate OUTLINE1/OUTLINE2 by parity.
func ApplyOutline(f *Frame, mode OutlineMode, contourStep int, pal *palette.Palette) {
	if mode == OutlineNone {
		return
	}
	isLand := func(c uint16) bool { return int(c) >= pal.Land }
	isSea := func(c uint16) bool { return int(c) >= palette.Lowest && int(c) <= pal.Sea }

	original := append([]uint16(nil), f.Colour...)

	if mode == OutlineBWOnly {
		for idx, c := range original {
			if isLand(c) {
				f.Colour[idx] = uint16(palette.White)
			} else {
				f.Colour[idx] = uint16(palette.Black)
			}
		}
	}

	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			idx := f.at(i, j)
			c := original[idx]

			if isSea(c) && hasLandNeighbour8(f, original, i, j, isLand) {
				paintOutline(f, idx, mode, 0)
				continue
			}

			if contourStep > 0 && isLand(c) {
				t := (int(c) - pal.Land) / contourStep
				if hasHigherContourNeighbour4(f, original, i, j, pal.Land, contourStep, t) {
					paintOutline(f, idx, mode, t)
				}
			}
		}
	}
}

func paintOutline(f *Frame, idx int, mode OutlineMode, t int) {
	if mode == OutlineBWOnly {
		f.Colour[idx] = uint16(palette.Black)
		return
	}
	if t%2 == 0 {
		f.Colour[idx] = uint16(palette.Outline1)
	} else {
		f.Colour[idx] = uint16(palette.Outline2)
	}
}

func hasLandNeighbour8(f *Frame, colour []uint16, i, j int, isLand func(uint16) bool) bool {
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := i+di, j+dj
			if ni < 0 || ni >= f.Width || nj < 0 || nj >= f.Height {
				continue
			}
			if isLand(colour[f.at(ni, nj)]) {
				return true
			}
		}
	}
	return false
}

func hasHigherContourNeighbour4(f *Frame, colour []uint16, i, j, land, step, t int) bool {
	deltas := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range deltas {
		ni, nj := i+d[0], j+d[1]
		if ni < 0 || ni >= f.Width || nj < 0 || nj >= f.Height {
			continue
		}
		nc := int(colour[f.at(ni, nj)])
		if nc < land {
			continue
		}
		nt := (nc - land) / step
		if nt > t {
			return true
		}
	}
	return false
}

// SmoothShade averages each shade value with its right, below, and
// below-right neighbours using weights (4,2,2,1)/9, the final pass over
// the shading buffer.
func SmoothShade(f *Frame) {
	if f.Shade == nil {
		return
	}
	out := make([]uint8, len(f.Shade))
	copy(out, f.Shade)
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			idx := f.at(i, j)
			centre := float64(f.Shade[idx])
			right := centre
			below := centre
			diag := centre
			if i+1 < f.Width {
				right = float64(f.Shade[f.at(i+1, j)])
			}
			if j+1 < f.Height {
				below = float64(f.Shade[f.at(i, j+1)])
			}
			if i+1 < f.Width && j+1 < f.Height {
				diag = float64(f.Shade[f.at(i+1, j+1)])
			}
			v := (4*centre + 2*right + 2*below + diag) / 9
			out[idx] = uint8(v)
		}
	}
	f.Shade = out
}

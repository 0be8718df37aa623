package raster

import (
	"strings"
	"testing"

	"github.com/planetgen/planetgen/internal/palette"
)

func TestApplyOutlineBWEveryOutlinePixelBordersOppositeClass(t *testing.T) {
	pal, err := palette.Load(strings.NewReader("0 0 0 0\n19 255 255 255\n"))
	if err != nil {
		t.Fatalf("palette.Load: %v", err)
	}

	f := NewFrame(4, 4, false, false, false)
	// Checkerboard of sea (LOWEST) and land (HIGHEST) so every pixel
	// borders the opposite class.
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if (i+j)%2 == 0 {
				f.Set(i, j, uint16(palette.Lowest))
			} else {
				f.Set(i, j, uint16(pal.Highest))
			}
		}
	}

	ApplyOutline(f, OutlineBWOnly, 0, pal)

	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if f.Get(i, j) != uint16(palette.Black) {
				continue // only outline (coast) pixels are checked
			}
			if !hadOppositeNeighbourBeforeOverlay(i, j) {
				t.Errorf("outline pixel (%d,%d) has no opposite-class neighbour", i, j)
			}
		}
	}
}

// hadOppositeNeighbourBeforeOverlay re-derives, from the checkerboard
// layout used above, whether (i,j) had an opposite-class 8-neighbour.
func hadOppositeNeighbourBeforeOverlay(i, j int) bool {
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := i+di, j+dj
			if ni < 0 || ni >= 4 || nj < 0 || nj >= 4 {
				continue
			}
			if (ni+nj)%2 != (i+j)%2 {
				return true
			}
		}
	}
	return false
}

func TestSmoothShadeAveragesNeighbours(t *testing.T) {
	f := NewFrame(2, 2, true, false, false)
	f.Shade[f.at(0, 0)] = 0
	f.Shade[f.at(1, 0)] = 90
	f.Shade[f.at(0, 1)] = 90
	f.Shade[f.at(1, 1)] = 90

	SmoothShade(f)

	want := uint8((4*0 + 2*90 + 2*90 + 90) / 9)
	if got := f.Shade[f.at(0, 0)]; got != want {
		t.Errorf("smoothed shade = %d, want %d", got, want)
	}
}

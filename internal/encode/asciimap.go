package encode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/planetgen/planetgen/internal/oracle"
)

// Find-match mode compares a hand-drawn preference map against coarse
// renderings of candidate seeds, reporting the best-matching seed,
// rotation and altitude offset found so far.
const (
	sampleWidth  = 24 // input columns
	sampleHeight = 11 // input rows
	mapWidth     = 47 // interpolated internal grid
	mapHeight    = 21
)

// AsciiMap is the parsed 11x24 preference grid, expanded to the
// internal 47x21 interpolated grid exactly as the original reader does,
// plus the latitude weight used when scoring candidates.
type AsciiMap struct {
	Pref     [mapWidth][mapHeight]int
	Weight   [mapHeight]int
	Warnings []string
}

var mapSymbols = map[byte]int{
	'.': -8,
	',': -4,
	':': -2,
	';': -1,
	'-': 0,
	'*': 1,
	'o': 2,
	'O': 4,
	'@': 16,
}

// ReadAsciiMap parses sampleHeight lines of sampleWidth symbols. Unknown
// symbols produce a warning and are treated as neutral (0); parsing
// continues rather than failing the whole map.
func ReadAsciiMap(r io.Reader) (*AsciiMap, error) {
	m := &AsciiMap{}
	for j := 0; j < mapHeight; j++ {
		y := 0.5 * 7.5 * (2.0*float64(j) - mapHeight + 1)
		y = math.Cos(y * math.Pi / 180)
		m.Weight[j] = int(100.0*y + 0.5)
	}

	br := bufio.NewReader(r)
	for row := 0; row < sampleHeight; row++ {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return m, fmt.Errorf("read map row %d: %w", row, err)
		}
		j := row * 2
		col := 0
		for _, ch := range []byte(line) {
			if ch == '\n' || ch == '\r' {
				continue
			}
			if col >= sampleWidth {
				break
			}
			i := col * 2
			v, ok := mapSymbols[ch]
			if !ok {
				m.Warnings = append(m.Warnings, fmt.Sprintf("wrong map symbol: %c", ch))
				v = 0
			}
			m.Pref[i][j] = v
			if i > 0 {
				m.Pref[i-1][j] = (m.Pref[i][j] + m.Pref[i-2][j]) / 2
			}
			col++
		}
	}
	for j := 1; j < mapHeight; j += 2 {
		for i := 0; i < mapWidth; i++ {
			m.Pref[i][j] = (m.Pref[i][j-1] + m.Pref[i][j+1]) / 2
		}
	}
	return m, nil
}

// SearchParams controls a find-match run: the seed to start from, the
// amount each unsuccessful attempt advances the seed by, the initial
// altitude around which offsets are tried, and how many seeds to try
// before giving up (the original runs forever; a library call needs a
// bound).
type SearchParams struct {
	Seed         float64
	Increment    float64
	InitialAlt   float64
	DD1, DD2     float64
	POW          float64
	MaxSeedSteps int
}

// candidateRow mirrors the four-subsample-per-cell coarse rendering the
// original scores candidates against.
func candidateRow(o *oracle.Oracle, j int) [mapWidth]int {
	var row [mapWidth]int
	y := 0.5 * 7.5 * (2.0*float64(j) - mapHeight + 1)
	y = math.Sin(y * math.Pi / 180)
	cos2 := math.Sqrt(1 - y*y)
	y2raw := 0.5 * 7.5 * (2.0*float64(j) - mapHeight + 1.5)
	y2 := math.Sin(y2raw * math.Pi / 180)
	cos22 := math.Sqrt(1 - y2*y2)

	for i := 0; i < mapWidth; i++ {
		theta1 := -0.5*math.Pi + math.Pi*(2.0*float64(i)-mapWidth)/mapWidth
		theta12 := -0.5*math.Pi + math.Pi*(2.0*float64(i)+0.5-mapWidth)/mapWidth

		sample := func(theta, yy, cc float64) float64 {
			p := oracle.Vec3{X: math.Cos(theta) * cc, Y: yy, Z: -math.Sin(theta) * cc}
			return o.Query(p).Altitude
		}
		c := 128 + 1000*sample(theta1, y, cos2)
		c1 := 128 + 1000*sample(theta12, y, cos2)
		c2 := 128 + 1000*sample(theta1, y2, cos22)
		c3 := 128 + 1000*sample(theta12, y2, cos22)
		v := int((c + c1 + c2 + c3) / 4.0)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		row[i] = v
	}
	return row
}

// searchDepth recomputes Depth for row j the way find-match mode does,
// shallower in purpose than the full-resolution projections since only
// a coarse match is needed.
func searchDepth(j int) int {
	y := 0.5 * 7.5 * (2.0*float64(j) - mapHeight + 1)
	y = math.Sin(y * math.Pi / 180)
	scale1 := float64(mapWidth) / mapHeight / math.Sqrt(1-y*y) / math.Pi
	return 3*int(math.Log(scale1*mapHeight)/math.Log(2)) + 6
}

// FindMatch tries successive seeds (advancing by sp.Increment each
// round) and, whenever a seed's coarse rendering matches the preference
// map better than anything seen so far on best, writes the improvement
// to w: a parameter line followed by the resulting best-match ASCII
// map. best should be initialized to a large sentinel by the caller and
// is updated in place across repeated calls so a caller can keep
// searching incrementally.
func FindMatch(ctx context.Context, w io.Writer, m *AsciiMap, sp SearchParams, best *int) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	seed := sp.Seed
	for step := 0; step < sp.MaxSeedSteps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		grid := make([][mapWidth]int, mapHeight)
		for j := 0; j < mapHeight; j++ {
			o := oracle.New(oracle.Params{
				Seed:  seed,
				M:     sp.InitialAlt,
				DD1:   sp.DD1,
				DD2:   sp.DD2,
				POW:   sp.POW,
				Depth: searchDepth(j),
			})
			grid[j] = candidateRow(o, j)
		}

		for k := 0; k < mapWidth; k++ {
			for l := -20; l <= 20; l += 2 {
				errcount := 0
				for j := 0; j < mapHeight; j++ {
					errcount1 := 0
					for i := 0; i < mapWidth; i++ {
						v := grid[j][(i+k)%mapWidth]
						pref := m.Pref[i][j]
						if pref < 0 && v > 128-l {
							errcount1 -= pref
						}
						if pref > 0 && v <= 128-l {
							errcount1 += pref
						}
					}
					errcount += m.Weight[j] * errcount1
				}

				if errcount < *best {
					*best = errcount
					fmt.Fprintf(bw, "Errors: %d, parameters: -s %.12f -l %.1f -i %.3f\n",
						errcount, seed, 360.0*float64(k)/(mapWidth+1), sp.InitialAlt+float64(l)/1000.0)
					for j := 0; j < mapHeight; j++ {
						for i := 0; i < mapWidth; i++ {
							if grid[j][(i+k)%mapWidth] <= 128-l {
								bw.WriteByte('.')
							} else {
								bw.WriteByte('O')
							}
						}
						bw.WriteByte('\n')
					}
					bw.Flush()
				}
			}
		}

		seed += sp.Increment
	}
	return nil
}

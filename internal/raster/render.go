package raster

import (
	"context"
	"runtime"
	"sync"

	"github.com/planetgen/planetgen/internal/oracle"
	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/project"
)

// Options controls how Render partitions work and reports progress, in
// the same shape as a chart-loader's parallel options: a worker count and
// a (done, total) progress callback.
type Options struct {
	// Workers is the number of goroutines rendering rows concurrently.
	// 0 or 1 renders single-threaded; every worker count produces
	// byte-identical output since rows are independent and each worker
	// gets its own forked oracle.
	Workers int

	// Progress is called after each row completes, with done counting
	// completed rows and total the image height.
	Progress func(done, total int)

	Latic       bool
	Shading     bool
	WithGrid    bool
	IsHeightfield bool
	BaseDepth   int
}

// Render allocates a Frame and fills it by querying proj for each pixel's
// sphere direction and base for its altitude (and shade, if enabled).
func Render(ctx context.Context, width, height int, base *oracle.Oracle, proj project.Projection, pal *palette.Palette, opts Options) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, &ErrAllocation{Index: 0, Total: width * height, Err: errInvalidDimensions}
	}
	f := NewFrame(width, height, opts.Shading, opts.WithGrid, opts.IsHeightfield)

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > height {
		workers = height
	}
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	var progressMu sync.Mutex
	done := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			workerOracle := base.Fork()
			currentDepth := -1
			var rowOracle *oracle.Oracle

			for j := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}

				depth := opts.BaseDepth
				if rd, ok := proj.(project.RowDepth); ok {
					depth = rd.RowDepth(j)
				}
				if depth != currentDepth || rowOracle == nil {
					rowOracle = workerOracle.WithDepth(depth)
					currentDepth = depth
				}

				renderRow(f, j, width, rowOracle, proj, pal, opts)

				progressMu.Lock()
				done++
				if opts.Progress != nil {
					opts.Progress(done, height)
				}
				progressMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return f, nil
}

func renderRow(f *Frame, j, width int, o *oracle.Oracle, proj project.Projection, pal *palette.Palette, opts Options) {
	for i := 0; i < width; i++ {
		idx := f.at(i, j)

		dir, ok := proj.Direction(i, j)
		if !ok {
			f.Colour[idx] = uint16(palette.Back)
			if f.Shade != nil {
				f.Shade[idx] = 255
			}
			continue
		}

		if f.DirX != nil {
			f.DirX[idx] = dir.X
			f.DirY[idx] = dir.Y
			f.DirZ[idx] = dir.Z
		}

		res := o.Query(dir)

		if f.Elevation != nil {
			f.Elevation[idx] = int32(res.Altitude * 1e7)
			continue
		}

		f.Colour[idx] = Classify(res.Altitude, dir.Y, opts.Latic, pal)
		if f.Shade != nil {
			f.Shade[idx] = res.Shade
		}
	}
}

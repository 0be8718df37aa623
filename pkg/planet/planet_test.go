package planet

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/planetgen/planetgen/internal/palette"
	"github.com/planetgen/planetgen/internal/project"
)

func testPalette(t *testing.T) *palette.Palette {
	t.Helper()
	pal, err := palette.Load(strings.NewReader("0 0 0 0\n4 0 0 128\n6 0 0 255\n10 0 128 0\n19 255 255 255\n"))
	if err != nil {
		t.Fatalf("palette.Load: %v", err)
	}
	return pal
}

func TestGenerateMercatorProducesFullFrame(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 40, 30
	cfg.Projection = project.Mercator

	gen := NewGenerator(cfg, testPalette(t))
	frame, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(frame.Colour) != 40*30 {
		t.Fatalf("frame has %d pixels, want %d", len(frame.Colour), 40*30)
	}
}

func TestGenerateTwiceIsByteIdentical(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 100, 100
	cfg.Seed = 0.123
	cfg.Projection = project.Mercator
	pal := testPalette(t)

	var outs [2]bytes.Buffer
	for k := 0; k < 2; k++ {
		gen := NewGenerator(cfg, pal)
		frame, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if err := gen.Write(&outs[k], frame, 0, false); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if !bytes.Equal(outs[0].Bytes(), outs[1].Bytes()) {
		t.Errorf("two identically configured runs produced different output")
	}
}

func TestGenerateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 0, 30
	gen := NewGenerator(cfg, testPalette(t))
	if _, err := gen.Generate(context.Background()); err == nil {
		t.Fatal("expected an error for a zero-width frame")
	}
}

func TestWaterPercentageWithinRange(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 64, 64
	cfg.Projection = project.Peters
	pal := testPalette(t)
	gen := NewGenerator(cfg, pal)
	frame, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pct := WaterPercentage(frame, pal)
	if pct < 0 || pct > 100 {
		t.Errorf("water percentage = %v, want in [0,100]", pct)
	}
}

package encode

import (
	"image/color"
	"strings"
	"testing"
)

func TestCharsPerPixelGrowsWithColourCount(t *testing.T) {
	if cpp := charsPerPixel(10); cpp != 1 {
		t.Errorf("charsPerPixel(10) = %d, want 1", cpp)
	}
	if cpp := charsPerPixel(2000); cpp < 2 {
		t.Errorf("charsPerPixel(2000) = %d, want >= 2", cpp)
	}
}

func TestEncodeIndexFixedWidth(t *testing.T) {
	s := encodeIndex(5, 3)
	if len(s) != 3 {
		t.Errorf("encodeIndex length = %d, want 3", len(s))
	}
}

func TestWriteXPMProducesHeaderAndColourTable(t *testing.T) {
	var buf strings.Builder
	colours := []color.RGBA{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	err := WriteXPM(&buf, 2, 2, func(i, j int) int { return (i + j) % 2 }, colours)
	if err != nil {
		t.Fatalf("WriteXPM: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/* XPM */") {
		t.Errorf("missing XPM marker")
	}
	if !strings.Contains(out, "c #000000") || !strings.Contains(out, "c #FFFFFF") {
		t.Errorf("missing expected colour entries:\n%s", out)
	}
}

func TestWriteXPMBWTwoColours(t *testing.T) {
	var buf strings.Builder
	err := WriteXPMBW(&buf, 2, 1, func(i, j int) bool { return i == 0 })
	if err != nil {
		t.Fatalf("WriteXPMBW: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ". c #000000") || !strings.Contains(out, "X c #FFFFFF") {
		t.Errorf("missing BW colour entries:\n%s", out)
	}
}

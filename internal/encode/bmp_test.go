package encode

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"
)

func TestWriteBMPHeaderFields(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBMP(&buf, 3, 2, func(i, j int) color.RGBA {
		return color.RGBA{R: uint8(i * 10), G: uint8(j * 10), B: 0, A: 255}
	})
	if err != nil {
		t.Fatalf("WriteBMP: %v", err)
	}
	data := buf.Bytes()
	if data[0] != 'B' || data[1] != 'M' {
		t.Fatalf("missing BM magic")
	}
	width := binary.LittleEndian.Uint32(data[18:])
	height := binary.LittleEndian.Uint32(data[22:])
	if width != 3 || height != 2 {
		t.Errorf("header dims = %d x %d, want 3 x 2", width, height)
	}
	bpp := binary.LittleEndian.Uint16(data[28:])
	if bpp != 24 {
		t.Errorf("bpp = %d, want 24", bpp)
	}
	rowBytes := 3 * 3
	pad := rowPadding(rowBytes)
	wantSize := 54 + (rowBytes+pad)*2
	if len(data) != wantSize {
		t.Errorf("file size = %d, want %d", len(data), wantSize)
	}
}

func TestWriteBMPBWPalette(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBMPBW(&buf, 2, 2, func(i, j int) bool { return (i+j)%2 == 0 })
	if err != nil {
		t.Fatalf("WriteBMPBW: %v", err)
	}
	data := buf.Bytes()
	if binary.LittleEndian.Uint16(data[28:]) != 1 {
		t.Errorf("expected 1 bpp")
	}
	// Palette entry 1 (white) BGRA bytes at offset 54+4.
	if data[54+4] != 255 || data[54+5] != 255 || data[54+6] != 255 {
		t.Errorf("white palette entry wrong: %v", data[58:62])
	}
}

// Package encode serializes a rendered frame into the output formats: BMP,
// PPM, XPM, a plain-text heightfield, and the ASCII preference map used by
// find-match mode.
package encode

import (
	"encoding/binary"
	"image/color"
	"io"
)

// ErrOutputOpen is returned when an output destination cannot be written.
type ErrOutputOpen struct {
	Path string
	Err  error
}

func (e *ErrOutputOpen) Error() string {
	return "open output " + e.Path + ": " + e.Err.Error()
}

func (e *ErrOutputOpen) Unwrap() error { return e.Err }

// rowPadding returns the number of pad bytes BMP requires to align each
// row to a 4-byte boundary.
func rowPadding(rowBytes int) int {
	return (4 - rowBytes%4) % 4
}

// WriteBMP writes a 24-bpp bottom-up BMP image. pixel(i,j) must return
// the colour at that coordinate; rows are written bottom-to-top and
// padded to a 4-byte boundary per BMP's on-disk layout.
func WriteBMP(w io.Writer, width, height int, pixel func(i, j int) color.RGBA) error {
	rowBytes := width * 3
	pad := rowPadding(rowBytes)
	imageSize := (rowBytes + pad) * height
	fileSize := 54 + imageSize

	hdr := make([]byte, 54)
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(hdr[10:], 54) // pixel data offset
	binary.LittleEndian.PutUint32(hdr[14:], 40) // DIB header size
	binary.LittleEndian.PutUint32(hdr[18:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[22:], uint32(height))
	binary.LittleEndian.PutUint16(hdr[26:], 1)  // planes
	binary.LittleEndian.PutUint16(hdr[28:], 24) // bpp
	binary.LittleEndian.PutUint32(hdr[34:], uint32(imageSize))

	if _, err := w.Write(hdr); err != nil {
		return err
	}

	padBytes := make([]byte, pad)
	row := make([]byte, rowBytes)
	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			c := pixel(i, j)
			row[i*3+0] = c.B
			row[i*3+1] = c.G
			row[i*3+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if pad > 0 {
			if _, err := w.Write(padBytes); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteBMPBW writes a 1-bpp bottom-up BMP where isWhite(i,j) selects
// white (true) or black (false) for each pixel.
func WriteBMPBW(w io.Writer, width, height int, isWhite func(i, j int) bool) error {
	rowBytes := (width + 7) / 8
	pad := rowPadding(rowBytes)
	paletteSize := 8 // two BGRA entries
	imageSize := (rowBytes + pad) * height
	dataOffset := 54 + paletteSize
	fileSize := dataOffset + imageSize

	hdr := make([]byte, dataOffset)
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(hdr[10:], uint32(dataOffset))
	binary.LittleEndian.PutUint32(hdr[14:], 40)
	binary.LittleEndian.PutUint32(hdr[18:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[22:], uint32(height))
	binary.LittleEndian.PutUint16(hdr[26:], 1)
	binary.LittleEndian.PutUint16(hdr[28:], 1)
	binary.LittleEndian.PutUint32(hdr[34:], uint32(imageSize))
	// Palette: index 0 black, index 1 white.
	hdr[58], hdr[59], hdr[60], hdr[61] = 255, 255, 255, 0

	if _, err := w.Write(hdr); err != nil {
		return err
	}

	padBytes := make([]byte, pad)
	row := make([]byte, rowBytes)
	for j := height - 1; j >= 0; j-- {
		for b := range row {
			row[b] = 0
		}
		for i := 0; i < width; i++ {
			if isWhite(i, j) {
				row[i/8] |= 1 << (7 - uint(i%8))
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
		if pad > 0 {
			if _, err := w.Write(padBytes); err != nil {
				return err
			}
		}
	}
	return nil
}

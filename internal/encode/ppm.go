package encode

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// WritePPM writes a binary P6 colour PPM.
func WritePPM(w io.Writer, width, height int, pixel func(i, j int) color.RGBA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height)
	row := make([]byte, width*3)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := pixel(i, j)
			row[i*3+0] = c.R
			row[i*3+1] = c.G
			row[i*3+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePPMBW writes a P6 PPM with maxval 1: isWhite(i,j) selects white
// (1,1,1) or black (0,0,0) per pixel.
func WritePPMBW(w io.Writer, width, height int, isWhite func(i, j int) bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n1\n", width, height)
	row := make([]byte, width*3)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			v := byte(0)
			if isWhite(i, j) {
				v = 1
			}
			row[i*3+0], row[i*3+1], row[i*3+2] = v, v, v
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

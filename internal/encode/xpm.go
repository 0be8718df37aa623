package encode

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
)

// xpmAlphabet is the 64-symbol table XPM colour-table characters are
// drawn from: punctuation, digits, upper-case, then enough lower-case
// letters to reach 64 distinct glyphs.
const xpmAlphabet = "@$.,:;-+=#*&0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnop"

// charsPerPixel returns the number of XPM colour-table characters needed
// to name n distinct colours, per the historical ceil(log32(n)) sizing.
func charsPerPixel(n int) int {
	if n <= 1 {
		return 1
	}
	cpp := int(math.Ceil(math.Log(float64(n)) / math.Log(32)))
	if cpp < 1 {
		cpp = 1
	}
	return cpp
}

// encodeIndex renders idx as a fixed-width string of XPM alphabet
// characters, most significant digit first.
func encodeIndex(idx, width int) string {
	base := len(xpmAlphabet)
	buf := make([]byte, width)
	for k := width - 1; k >= 0; k-- {
		buf[k] = xpmAlphabet[idx%base]
		idx /= base
	}
	return string(buf)
}

// WriteXPM writes an ASCII XPM image with one colour-table entry per
// element of colours, whether or not colourIndex uses that index.
func WriteXPM(w io.Writer, width, height int, colourIndex func(i, j int) int, colours []color.RGBA) error {
	cpp := charsPerPixel(len(colours))
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/* XPM */\nstatic char *image[] = {\n")
	fmt.Fprintf(bw, "\"%d %d %d %d\",\n", width, height, len(colours), cpp)
	for idx, c := range colours {
		fmt.Fprintf(bw, "\"%s c #%02X%02X%02X\",\n", encodeIndex(idx, cpp), c.R, c.G, c.B)
	}
	for j := 0; j < height; j++ {
		fmt.Fprint(bw, "\"")
		for i := 0; i < width; i++ {
			fmt.Fprint(bw, encodeIndex(colourIndex(i, j), cpp))
		}
		if j < height-1 {
			fmt.Fprint(bw, "\",\n")
		} else {
			fmt.Fprint(bw, "\"\n")
		}
	}
	fmt.Fprint(bw, "};\n")
	return bw.Flush()
}

// WriteXPMBW writes a two-colour XPM using '.' for black and 'X' for
// white, the black-and-white variant's fixed alphabet.
func WriteXPMBW(w io.Writer, width, height int, isWhite func(i, j int) bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* XPM */\nstatic char *image[] = {\n")
	fmt.Fprintf(bw, "\"%d %d 2 1\",\n", width, height)
	fmt.Fprint(bw, "\". c #000000\",\n\"X c #FFFFFF\",\n")
	for j := 0; j < height; j++ {
		fmt.Fprint(bw, "\"")
		for i := 0; i < width; i++ {
			if isWhite(i, j) {
				fmt.Fprint(bw, "X")
			} else {
				fmt.Fprint(bw, ".")
			}
		}
		if j < height-1 {
			fmt.Fprint(bw, "\",\n")
		} else {
			fmt.Fprint(bw, "\"\n")
		}
	}
	fmt.Fprint(bw, "};\n")
	return bw.Flush()
}

package encode

import (
	"bufio"
	"fmt"
	"io"
)

// WriteHeightfield writes raw signed elevation samples as whitespace
// separated integers, one row per line, for use by external terrain
// tools rather than as a viewable image.
func WriteHeightfield(w io.Writer, width, height int, elevation func(i, j int) int32) error {
	bw := bufio.NewWriter(w)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			if i > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", elevation(i, j)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

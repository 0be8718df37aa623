package main

import (
	"testing"

	"github.com/planetgen/planetgen/internal/cliopt"
)

func TestFormatExtMatchesRequestedFormat(t *testing.T) {
	cases := map[cliopt.OutputFormat]string{
		cliopt.FormatBMP: ".bmp",
		cliopt.FormatPPM: ".ppm",
		cliopt.FormatXPM: ".xpm",
	}
	for format, want := range cases {
		if got := formatExt(format); got != want {
			t.Errorf("formatExt(%v) = %q, want %q", format, got, want)
		}
	}
}

package encode

import (
	"context"
	"strings"
	"testing"
)

func sampleMapText() string {
	row := strings.Repeat(".", sampleWidth) + "\n"
	return strings.Repeat(row, sampleHeight)
}

func TestReadAsciiMapAllSeaProducesNegativePreferences(t *testing.T) {
	m, err := ReadAsciiMap(strings.NewReader(sampleMapText()))
	if err != nil {
		t.Fatalf("ReadAsciiMap: %v", err)
	}
	for i := 0; i < mapWidth; i++ {
		for j := 0; j < mapHeight; j++ {
			if m.Pref[i][j] != -8 {
				t.Fatalf("Pref[%d][%d] = %d, want -8", i, j, m.Pref[i][j])
			}
		}
	}
	if len(m.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", m.Warnings)
	}
}

func TestReadAsciiMapUnknownSymbolWarns(t *testing.T) {
	text := strings.Replace(sampleMapText(), ".", "?", 1)
	m, err := ReadAsciiMap(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadAsciiMap: %v", err)
	}
	if len(m.Warnings) == 0 {
		t.Errorf("expected a warning for the unknown symbol")
	}
}

func TestFindMatchReportsImprovingMatches(t *testing.T) {
	m, err := ReadAsciiMap(strings.NewReader(sampleMapText()))
	if err != nil {
		t.Fatalf("ReadAsciiMap: %v", err)
	}
	var out strings.Builder
	best := int(^uint(0) >> 1) // max int sentinel
	sp := SearchParams{
		Seed:         0.123,
		Increment:    0.00001,
		InitialAlt:   -0.02,
		DD1:          0.45,
		DD2:          0.035,
		POW:          0.47,
		MaxSeedSteps: 1,
	}
	if err := FindMatch(context.Background(), &out, m, sp, &best); err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if !strings.Contains(out.String(), "Errors:") {
		t.Errorf("expected at least one reported improvement, got: %q", out.String())
	}
}

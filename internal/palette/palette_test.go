package palette

import (
	"strings"
	"testing"
)

func TestLoadInterpolatesAndFillsTail(t *testing.T) {
	src := "0 0 0 0\n5 255 255 255\n"
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Colors) != MinSize {
		t.Fatalf("expected minimum palette size %d, got %d", MinSize, len(p.Colors))
	}
	if p.Colors[0].R != 0 || p.Colors[5].R != 255 {
		t.Errorf("endpoints not preserved: %+v", p.Colors[0:6])
	}
	mid := p.Colors[2]
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("index 2 should be linearly interpolated, got %+v", mid)
	}
	for i := 6; i < len(p.Colors); i++ {
		if p.Colors[i] != p.Colors[5] {
			t.Errorf("tail index %d should repeat the last colour", i)
		}
	}
}

func TestLoadClampsOutOfOrderIndices(t *testing.T) {
	src := "3 10 10 10\n1 20 20 20\n"
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// The second record's index 1 < 3 must be clamped up to 3.
	if p.Colors[3].R != 20 {
		t.Errorf("out-of-order index should clamp up to the previous index, got %+v", p.Colors[3])
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("not a record\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed palette line")
	}
}

func TestRoleIndicesDerived(t *testing.T) {
	src := "0 0 0 0\n19 255 255 255\n"
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Highest != 19 {
		t.Errorf("Highest = %d, want 19", p.Highest)
	}
	if p.Sea != (Lowest+19)/2 {
		t.Errorf("Sea = %d, want %d", p.Sea, (Lowest+19)/2)
	}
	if p.Land != p.Sea+1 {
		t.Errorf("Land = %d, want Sea+1", p.Land)
	}
}

package cliopt

import "testing"

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Seed != 0.123 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseBasicFlags(t *testing.T) {
	cfg, err := Parse([]string{"-s", "0.5", "-w", "320", "-h", "200", "-pm"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != 0.5 || cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Projection != ProjMercator {
		t.Errorf("projection = %q, want %q", cfg.Projection, ProjMercator)
	}
}

func TestParseProjectionSpacedOperand(t *testing.T) {
	cfg, err := Parse([]string{"-p", "o"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Projection != ProjOrthographic {
		t.Errorf("projection = %q, want %q", cfg.Projection, ProjOrthographic)
	}
}

func TestParseOutlineWithGluedStep(t *testing.T) {
	cfg, err := Parse([]string{"-E10"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.OutlineMode != OutlineTrace || cfg.ContourStep != 10 {
		t.Errorf("unexpected outline config: %+v", cfg)
	}
}

func TestParseOutlineBareFlag(t *testing.T) {
	cfg, err := Parse([]string{"-O"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.OutlineMode != OutlineBW || cfg.ContourStep != 0 {
		t.Errorf("unexpected outline config: %+v", cfg)
	}
}

func TestParseUnknownFlagReturnsUsageError(t *testing.T) {
	_, err := Parse([]string{"-Z"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	var usageErr *UsageError
	if !asUsageError(err, &usageErr) {
		t.Errorf("expected *UsageError, got %T", err)
	}
}

func TestParseMissingValueReturnsUsageError(t *testing.T) {
	_, err := Parse([]string{"-s"})
	if err == nil {
		t.Fatal("expected an error for a missing value")
	}
}

func TestParseHelpShortCircuits(t *testing.T) {
	cfg, err := Parse([]string{"-?"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Help {
		t.Errorf("expected Help to be set")
	}
}

func asUsageError(err error, target **UsageError) bool {
	if ue, ok := err.(*UsageError); ok {
		*target = ue
		return true
	}
	return false
}

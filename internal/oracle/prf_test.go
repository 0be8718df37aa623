package oracle

import "testing"

func TestPRFSymmetric(t *testing.T) {
	pairs := [][2]float64{{0.1, 0.2}, {-3.7, 5.5}, {0, 0}, {1e6, -1e6}}
	for _, pr := range pairs {
		a := PRF(pr[0], pr[1])
		b := PRF(pr[1], pr[0])
		if diff := a - b; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("PRF(%v,%v)=%v PRF(%v,%v)=%v not symmetric", pr[0], pr[1], a, pr[1], pr[0], b)
		}
	}
}

func TestPRFRange(t *testing.T) {
	for _, p := range []float64{0, 0.5, 123.456, -99.9, 1e9} {
		for _, q := range []float64{0, 0.5, 123.456, -99.9, 1e9} {
			v := PRF(p, q)
			if v < -1 || v >= 1 {
				t.Errorf("PRF(%v,%v)=%v out of [-1,1)", p, q, v)
			}
		}
	}
}

func TestRootSeedsDeterministic(t *testing.T) {
	a1, a2, a3, a4 := RootSeeds(0.123)
	b1, b2, b3, b4 := RootSeeds(0.123)
	if a1 != b1 || a2 != b2 || a3 != b3 || a4 != b4 {
		t.Fatal("RootSeeds not deterministic for identical seed")
	}
}

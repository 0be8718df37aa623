package oracle

import "testing"

func testParams() Params {
	return Params{Seed: 0.123, M: -0.02, DD1: 0.45, DD2: 0.035, POW: 0.47, Depth: 12}
}

func TestAltitudeDeterministic(t *testing.T) {
	o1 := New(testParams())
	o2 := New(testParams())
	p := normalized(Vec3{0.3, 0.4, 0.5})

	r1 := o1.Query(p)
	r2 := o2.Query(p)
	if r1.Altitude != r2.Altitude {
		t.Fatalf("altitude not deterministic: %v vs %v", r1.Altitude, r2.Altitude)
	}
}

func TestAltitudeBoundedRealistic(t *testing.T) {
	o := New(testParams())
	for _, p := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, normalized(Vec3{1, 1, 1})} {
		a := o.Query(p).Altitude
		if a < -2 || a > 2 {
			t.Errorf("altitude %v at %v outside sane range", a, p)
		}
	}
}

func TestForkIndependentCache(t *testing.T) {
	o := New(testParams())
	p := normalized(Vec3{-0.2, 0.7, 0.3})
	_ = o.Query(p) // populate cache

	f := o.Fork()
	if f.cache.valid {
		t.Fatal("forked oracle should start with an empty cache")
	}
	// Querying through the fork must not panic or disturb the original.
	a1 := o.Query(p).Altitude
	a2 := f.Query(p).Altitude
	if a1 != a2 {
		t.Fatalf("fork produced different altitude for same point: %v vs %v", a1, a2)
	}
}

func TestRootTetraContainsOrigin(t *testing.T) {
	r1, r2, r3, r4 := RootSeeds(0.5)
	root := rootTetra(r1, r2, r3, r4, -0.02)
	if !root.contains(Vec3{0, 0, 0}) {
		t.Fatal("enclosing tetrahedron must contain the sphere's centre")
	}
}

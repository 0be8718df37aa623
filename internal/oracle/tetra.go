package oracle

import "math"

// vertex is one corner of a subdivision tetrahedron: a point on (or, at the
// root, far outside) the unit sphere, the altitude synthesized for it, and
// the seed used to derive its descendants' randomness.
type vertex struct {
	pos  Vec3
	alt  float64
	seed float64
}

// tetra is four vertices bounding the region of a recursive subdivision
// step.
type tetra [4]vertex

// sqrt3 appears in the closed form of the enclosing tetrahedron's vertices;
// named rather than inlined so the asymmetric per-axis offsets below stay
// legible.
var sqrt3 = math.Sqrt(3)

// rootTetra builds the enclosing tetrahedron. The offsets are deliberately
// asymmetric so that no query direction on the unit sphere ever lies
// exactly on a face.
func rootTetra(r1, r2, r3, r4, m float64) tetra {
	return tetra{
		{pos: Vec3{-sqrt3 - 0.20, -sqrt3 - 0.22, -sqrt3 - 0.23}, alt: m, seed: r1},
		{pos: Vec3{-sqrt3 - 0.19, sqrt3 + 0.18, sqrt3 + 0.17}, alt: m, seed: r2},
		{pos: Vec3{sqrt3 + 0.21, -sqrt3 - 0.24, sqrt3 + 0.15}, alt: m, seed: r3},
		{pos: Vec3{sqrt3 + 0.24, sqrt3 + 0.22, -sqrt3 - 0.25}, alt: m, seed: r4},
	}
}

// sameSide reports whether p and ref lie on the same side of the plane
// through a, b, c.
func sameSide(a, b, c, ref, p Vec3) bool {
	n := cross(sub(b, a), sub(c, a))
	dr := dot(n, sub(ref, a))
	dp := dot(n, sub(p, a))
	return dr*dp >= 0
}

// contains reports whether p lies inside t, tested face by face against
// the vertex opposite each face.
func (t tetra) contains(p Vec3) bool {
	v0, v1, v2, v3 := t[0].pos, t[1].pos, t[2].pos, t[3].pos
	if !sameSide(v1, v2, v3, v0, p) {
		return false
	}
	if !sameSide(v0, v2, v3, v1, p) {
		return false
	}
	if !sameSide(v0, v1, v3, v2, p) {
		return false
	}
	if !sameSide(v0, v1, v2, v3, p) {
		return false
	}
	return true
}

// leaf is the accumulated state handed to a face-level callback once
// subdivision bottoms out: the averaged altitude plus enough geometry for
// the shader to compute a gradient.
type leaf struct {
	altitude float64
	t        tetra
}

// step finds the longest edge of t, splits it at a seeded midpoint, and
// returns whichever of the two resulting sub-tetrahedra contains p.
func step(t tetra, p Vec3, dd1, dd2, pow float64) tetra {
	// Find the longest of the six edges and permute vertices so it
	// becomes (v0, v1); v2, v3 keep each other's company.
	type edge struct{ i, j int }
	edges := [6]edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	longest, bi, bj := -1.0, 0, 1
	for _, e := range edges {
		d := length2(sub(t[e.i].pos, t[e.j].pos))
		if d > longest {
			longest, bi, bj = d, e.i, e.j
		}
	}
	rest := [2]int{}
	k := 0
	for i := 0; i < 4; i++ {
		if i != bi && i != bj {
			rest[k] = i
			k++
		}
	}
	v0, v1, v2, v3 := t[bi], t[bj], t[rest[0]], t[rest[1]]

	es := PRF(v0.seed, v1.seed)
	es1 := PRF(es, es)
	es2 := 0.5 + 0.1*PRF(es1, es1)
	es3 := 1 - es2

	var epos Vec3
	switch {
	case v0.pos.X < v1.pos.X:
		epos = add(scale(v0.pos, es2), scale(v1.pos, es3))
	case v0.pos.X > v1.pos.X:
		epos = add(scale(v0.pos, es3), scale(v1.pos, es2))
	default:
		epos = scale(add(v0.pos, v1.pos), 0.5)
	}

	lab := length2(sub(v0.pos, v1.pos))
	if lab > 1 {
		lab = math.Sqrt(lab)
	}
	ealt := 0.5*(v0.alt+v1.alt) + es*dd1*math.Abs(v0.alt-v1.alt) + es1*dd2*math.Pow(lab, pow)

	e := vertex{pos: epos, alt: ealt, seed: es}

	if sameSide(v2.pos, v3.pos, e.pos, v0.pos, p) {
		return tetra{v2, v3, v0, e}
	}
	return tetra{v2, v3, v1, e}
}

// subdivide descends from t toward p for level steps, calling onLeaf
// exactly once when level reaches zero, and returns the resulting
// altitude. dd1, dd2 and pow are the subdivision tuning weights.
func subdivide(t tetra, p Vec3, level int, dd1, dd2, pow float64, onLeaf func(leaf)) float64 {
	for level > 0 {
		t = step(t, p, dd1, dd2, pow)
		level--
	}
	alt := (t[0].alt + t[1].alt + t[2].alt + t[3].alt) / 4
	if onLeaf != nil {
		onLeaf(leaf{altitude: alt, t: t})
	}
	return alt
}

// descend performs the same recursion as subdivide but stops after
// from-to steps, returning the intermediate tetrahedron without computing
// a leaf altitude. Used to populate the shallow cache.
func descend(t tetra, p Vec3, from, to int, dd1, dd2, pow float64) tetra {
	for from > to {
		t = step(t, p, dd1, dd2, pow)
		from--
	}
	return t
}

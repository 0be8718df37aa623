package oracle

import "math"

// ShadeMode selects how a leaf face is converted into an 8-bit shade
// byte.
type ShadeMode int

const (
	ShadeNone ShadeMode = iota
	ShadeBumpAll
	ShadeBumpLand
	ShadeDaylight
)

func clamp8(v float64) uint8 {
	switch {
	case v < 10:
		return 10
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// gradient returns the coarse face-normal proxy g = sum a_i*(centroid-V_i).
func (l leaf) gradient() Vec3 {
	var centroid Vec3
	for _, v := range l.t {
		centroid = add(centroid, v.pos)
	}
	centroid = scale(centroid, 0.25)

	var g Vec3
	for _, v := range l.t {
		g = add(g, scale(sub(centroid, v.pos), v.alt))
	}
	return g
}

// edgeLengthSquaredSum sums the squared lengths of all six edges of the
// leaf's tetrahedron, used to scale the daylight model's land-face offset.
func (l leaf) edgeLengthSquaredSum() float64 {
	sum := 0.0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			sum += length2(sub(l.t[i].pos, l.t[j].pos))
		}
	}
	return sum
}

// shade computes the 8-bit shade byte for the leaf face seen from point,
// using the given model and light angles (radians).
func shade(l leaf, point Vec3, mode ShadeMode, angle, angle2 float64) uint8 {
	switch mode {
	case ShadeBumpAll, ShadeBumpLand:
		return shadeBump(l, point, mode, angle)
	case ShadeDaylight:
		return shadeDaylight(l, point, angle, angle2)
	default:
		return 128
	}
}

func shadeBump(l leaf, point Vec3, mode ShadeMode, angle float64) uint8 {
	g := l.gradient()
	glen := length(g)
	if glen == 0 {
		return 128
	}

	x, y, z := point.X, point.Y, point.Z
	t := math.Sqrt(1 - y*y)
	if t < 1e-4 {
		t = 1e-4
	}

	gx, gy, gz := g.X, g.Y, g.Z
	g1 := -(x*y/t)*gx + t*gy - (z*y/t)*gz
	g2 := -(z/t)*gx + (x/t)*gz

	v := (-math.Sin(angle)*g1-math.Cos(angle)*g2)*48/glen + 128
	s := clamp8(v)

	if mode == ShadeBumpLand && l.altitude < 0 {
		return 150
	}
	return s
}

func shadeDaylight(l leaf, point Vec3, angle, angle2 float64) uint8 {
	sun := Vec3{
		X: math.Cos(angle-math.Pi/2) * math.Cos(angle2),
		Y: -math.Sin(angle2),
		Z: -math.Sin(angle-math.Pi/2) * math.Cos(angle2),
	}

	p := point
	if l.altitude > 0 {
		sumSq := l.edgeLengthSquaredSum()
		if sumSq > 0 {
			k := 50 / math.Sqrt(sumSq)
			p = add(point, scale(l.gradient(), k))
		}
	}

	plen := length(p)
	if plen == 0 {
		return 128
	}
	v := dot(p, sun)/plen*170 + 10
	return clamp8(v)
}

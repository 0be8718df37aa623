package project

import "math"

// newConicalProjection builds the conformal conic projection. The cone
// constant k1 = 1/sin(lat) diverges at the equator and degenerates to
// the orthographic axis at the poles, so those two edge cases are
// redirected to the projections the conic formula converges to rather
// than evaluated directly.
func newConicalProjection(p Params) Projection {
	const eps = 1e-6
	switch {
	case math.Abs(p.Lat) < eps:
		return newMercatorProjection(p)
	case math.Abs(math.Abs(p.Lat)-math.Pi/2) < eps:
		return &stereographicProjection{p: p, rot: newRotation(p.Longi, p.Lat)}
	default:
		k1 := 1 / math.Sin(p.Lat)
		c := k1 * k1
		y2 := math.Sqrt(c * (1 - math.Sin(p.Lat/k1)) / (1 + math.Sin(p.Lat/k1)))
		return &conicalProjection{p: p, k1: k1, c: c, y2: y2, southward: p.Lat <= 0}
	}
}

// conicalProjection keeps the cone's apex on the polar axis and folds
// the centre longitude directly into theta1 rather than rotating the
// sphere; of the two edge cases above, only the polar one uses a
// rotation.
type conicalProjection struct {
	p         Params
	k1, c, y2 float64
	southward bool
}

func (m *conicalProjection) Direction(i, j int) (Vec3, bool) {
	x, y := planeCoords(i, j, m.p.Width, m.p.Height, m.p.Scale)
	if m.southward {
		y -= m.y2
	} else {
		y += m.y2
	}

	zz := x*x + y*y
	var theta1 float64
	switch {
	case zz == 0:
		theta1 = 0
	case m.southward:
		theta1 = -m.k1 * math.Atan2(x, -y)
	default:
		theta1 = m.k1 * math.Atan2(x, y)
	}
	if theta1 < -math.Pi || theta1 > math.Pi {
		return Vec3{}, false
	}
	theta1 += m.p.Longi - math.Pi/2

	theta2 := m.k1 * math.Asin((zz-m.c)/(zz+m.c))
	if theta2 > math.Pi/2 || theta2 < -math.Pi/2 {
		return Vec3{}, false
	}

	cos2 := math.Cos(theta2)
	lat := math.Sin(theta2)
	return Vec3{X: math.Cos(theta1) * cos2, Y: lat, Z: -math.Sin(theta1) * cos2}, true
}

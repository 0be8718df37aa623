package project

import "math"

// The cylindrical family (Mercator, Peters, Square, Sinusoidal) keeps
// latitude lines horizontal by shifting the row index with a
// projection-specific offset k derived from the centre latitude, and
// folding the centre longitude directly into each row's theta1 rather
// than rotating the whole sphere. Their plane coordinates are normalized
// by width, not height, unlike the azimuthal family and the conic
// projection. Mollweide is the one member of the family that genuinely
// rotates: it keeps the 3D tilt but still normalizes by width.
//
// All four recompute their effective recursion depth per row, since a
// row's foreshortening changes how much sphere a pixel covers.

func cylWidthTerm(i, width int, scale float64) float64 {
	return (2*float64(i) - float64(width)) / float64(width) / scale
}

func cylTheta1(i int, p Params) float64 {
	return p.Longi - math.Pi/2 + math.Pi*cylWidthTerm(i, p.Width, p.Scale)
}

// --- Mercator ---

type mercatorProjection struct {
	p Params
	k int
}

func newMercatorProjection(p Params) *mercatorProjection {
	y := math.Sin(p.Lat)
	y = (1 + y) / (1 - y)
	y = 0.5 * math.Log(y)
	k := int(0.5 * y * float64(p.Width) * p.Scale / math.Pi)
	return &mercatorProjection{p: p, k: k}
}

func (m *mercatorProjection) rowY(j int) (y, cos2 float64) {
	y = math.Pi * (2*float64(j-m.k) - float64(m.p.Height)) / float64(m.p.Width) / m.p.Scale
	y = math.Exp(2 * y)
	y = (y - 1) / (y + 1)
	cos2 = math.Sqrt(1 - y*y)
	return
}

func (m *mercatorProjection) Direction(i, j int) (Vec3, bool) {
	y, cos2 := m.rowY(j)
	theta1 := cylTheta1(i, m.p)
	return Vec3{X: math.Cos(theta1) * cos2, Y: y, Z: -math.Sin(theta1) * cos2}, true
}

func (m *mercatorProjection) RowDepth(j int) int {
	_, cos2 := m.rowY(j)
	if cos2 < 1e-6 {
		cos2 = 1e-6
	}
	scale1 := m.p.Scale * float64(m.p.Width) / float64(m.p.Height) / cos2 / math.Pi
	return rowDepthFromScale1(scale1, m.p.Height)
}

// --- Peters ---

type petersProjection struct {
	p Params
	k int
}

func newPetersProjection(p Params) *petersProjection {
	y := 2 * math.Sin(p.Lat)
	k := int(0.5 * y * float64(p.Width) * p.Scale / math.Pi)
	return &petersProjection{p: p, k: k}
}

func (m *petersProjection) rowY(j int) (y, cos2 float64, outside bool) {
	y = 0.5 * math.Pi * (2*float64(j-m.k) - float64(m.p.Height)) / float64(m.p.Width) / m.p.Scale
	if math.Abs(y) > 1 {
		return 0, 0, true
	}
	cos2 = math.Sqrt(1 - y*y)
	return
}

func (m *petersProjection) Direction(i, j int) (Vec3, bool) {
	y, cos2, outside := m.rowY(j)
	if outside {
		return Vec3{}, false
	}
	theta1 := cylTheta1(i, m.p)
	return Vec3{X: math.Cos(theta1) * cos2, Y: y, Z: -math.Sin(theta1) * cos2}, true
}

func (m *petersProjection) RowDepth(j int) int {
	_, cos2, outside := m.rowY(j)
	if outside || cos2 <= 0 {
		cos2 = 1e-6
	}
	scale1 := m.p.Scale * float64(m.p.Width) / float64(m.p.Height) / cos2 / math.Pi
	return rowDepthFromScale1(scale1, m.p.Height)
}

// --- Square (equirectangular) ---

type squareProjection struct {
	p Params
	k int
}

func newSquareProjection(p Params) *squareProjection {
	k := int(0.5 * p.Lat * float64(p.Width) * p.Scale / math.Pi)
	return &squareProjection{p: p, k: k}
}

func (m *squareProjection) rowLat(j int) (lat float64, outside bool) {
	lat = (2*float64(j-m.k) - float64(m.p.Height)) / float64(m.p.Width) / m.p.Scale * math.Pi
	if math.Abs(lat) >= math.Pi/2 {
		return 0, true
	}
	return lat, false
}

func (m *squareProjection) Direction(i, j int) (Vec3, bool) {
	lat, outside := m.rowLat(j)
	if outside {
		return Vec3{}, false
	}
	cos2 := math.Cos(lat)
	theta1 := cylTheta1(i, m.p)
	return Vec3{X: math.Cos(theta1) * cos2, Y: math.Sin(lat), Z: -math.Sin(theta1) * cos2}, true
}

func (m *squareProjection) RowDepth(j int) int {
	lat, outside := m.rowLat(j)
	cos2 := math.Cos(lat)
	if outside || cos2 <= 0 {
		cos2 = 1e-6
	}
	scale1 := m.p.Scale * float64(m.p.Width) / float64(m.p.Height) / cos2 / math.Pi
	return rowDepthFromScale1(scale1, m.p.Height)
}

// --- Mollweide ---

type mollweideProjection struct {
	p   Params
	rot rotation
}

func (m *mollweideProjection) rowY(j int) (y, zz, cos2 float64, outside bool) {
	y1 := 2 * (2*float64(j) - float64(m.p.Height)) / float64(m.p.Width) / m.p.Scale
	if math.Abs(y1) >= 1 {
		return 0, 0, 0, true
	}
	zz = math.Sqrt(1 - y1*y1)
	y = 2 / math.Pi * (y1*zz + math.Asin(y1))
	cos2 = math.Sqrt(1 - y*y)
	return
}

func (m *mollweideProjection) Direction(i, j int) (Vec3, bool) {
	y, zz, cos2, outside := m.rowY(j)
	if outside {
		return Vec3{}, false
	}
	theta1 := math.Pi / zz * cylWidthTerm(i, m.p.Width, m.p.Scale)
	if math.Abs(theta1) > math.Pi {
		return Vec3{}, false
	}
	theta1 -= math.Pi / 2
	x2 := math.Cos(theta1) * cos2
	z2 := -math.Sin(theta1) * cos2
	return m.rot.apply(x2, y, z2), true
}

func (m *mollweideProjection) RowDepth(j int) int {
	_, _, cos2, outside := m.rowY(j)
	if outside || cos2 <= 0 {
		cos2 = 1e-6
	}
	scale1 := m.p.Scale * float64(m.p.Width) / float64(m.p.Height) / cos2 / math.Pi
	return rowDepthFromScale1(scale1, m.p.Height)
}

// --- Sinusoidal (interrupted, 12 gores) ---

type sinusoidalProjection struct {
	p Params
	k int
}

func newSinusoidalProjection(p Params) *sinusoidalProjection {
	k := int(p.Lat * float64(p.Width) * p.Scale / math.Pi)
	return &sinusoidalProjection{p: p, k: k}
}

func (m *sinusoidalProjection) rowLat(j int) (lat float64, outside bool) {
	lat = (2*float64(j-m.k) - float64(m.p.Height)) / float64(m.p.Width) / m.p.Scale * math.Pi
	if math.Abs(lat) >= math.Pi/2 {
		return 0, true
	}
	return lat, false
}

func (m *sinusoidalProjection) Direction(i, j int) (Vec3, bool) {
	lat, outside := m.rowLat(j)
	if outside {
		return Vec3{}, false
	}
	cos2 := math.Cos(lat)
	if cos2 <= 0 {
		return Vec3{}, false
	}

	width12 := m.p.Width / 12
	l := i * 12 / m.p.Width
	l1 := float64(l) * float64(m.p.Width) / 12.0
	i1 := float64(i) - l1

	theta2 := m.p.Longi - math.Pi/2 + math.Pi*(2*l1-float64(m.p.Width))/float64(m.p.Width)/m.p.Scale
	theta1 := (math.Pi * (2*i1 - float64(width12)) / float64(m.p.Width) / m.p.Scale) / cos2
	if math.Abs(theta1) > math.Pi/12 {
		return Vec3{}, false
	}

	theta := theta1 + theta2
	return Vec3{X: math.Cos(theta) * cos2, Y: math.Sin(lat), Z: -math.Sin(theta) * cos2}, true
}

func (m *sinusoidalProjection) RowDepth(j int) int {
	lat, outside := m.rowLat(j)
	cos2 := math.Cos(lat)
	if outside || cos2 <= 0 {
		cos2 = 1e-6
	}
	scale1 := m.p.Scale * float64(m.p.Width) / float64(m.p.Height) / cos2 / math.Pi
	return rowDepthFromScale1(scale1, m.p.Height)
}

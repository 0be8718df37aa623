package project

import "math"

// azimuthalLocal turns a plane radius rho and the projection's own
// radius-to-central-angle function into a pre-rotation direction vector.
func azimuthalLocal(x, y float64, c func(rho float64) float64) Vec3 {
	rho := math.Hypot(x, y)
	if rho < 1e-12 {
		return Vec3{0, 0, 1}
	}
	sc := math.Sin(c(rho))
	cc := math.Cos(c(rho))
	return Vec3{X: x * sc / rho, Y: y * sc / rho, Z: cc}
}

// --- Orthographic ---

type orthographicProjection struct {
	p   Params
	rot rotation
}

func (m *orthographicProjection) Direction(i, j int) (Vec3, bool) {
	x, y := planeCoords(i, j, m.p.Width, m.p.Height, m.p.Scale)
	if x*x+y*y > 1 {
		return Vec3{}, false
	}
	z := math.Sqrt(1 - x*x - y*y)
	return m.rot.apply(x, y, z), true
}

// --- Gnomonic ---

type gnomonicProjection struct {
	p   Params
	rot rotation
}

func (m *gnomonicProjection) Direction(i, j int) (Vec3, bool) {
	x, y := planeCoords(i, j, m.p.Width, m.p.Height, m.p.Scale)
	local := azimuthalLocal(x, y, math.Atan)
	return m.rot.apply(local.X, local.Y, local.Z), true
}

// --- Stereographic ---

type stereographicProjection struct {
	p   Params
	rot rotation
}

func (m *stereographicProjection) Direction(i, j int) (Vec3, bool) {
	x, y := planeCoords(i, j, m.p.Width, m.p.Height, m.p.Scale)
	local := azimuthalLocal(x, y, func(rho float64) float64 { return 2 * math.Atan(rho) })
	return m.rot.apply(local.X, local.Y, local.Z), true
}

// --- Azimuthal (Lambert equal-area) ---

type azimuthalProjection struct {
	p   Params
	rot rotation
}

func (m *azimuthalProjection) Direction(i, j int) (Vec3, bool) {
	x, y := planeCoords(i, j, m.p.Width, m.p.Height, m.p.Scale)
	rho2 := x*x + y*y
	if 1-0.5*rho2 < -1 {
		return Vec3{}, false
	}
	local := azimuthalLocal(x, y, func(rho float64) float64 { return 2 * math.Asin(rho/2) })
	return m.rot.apply(local.X, local.Y, local.Z), true
}

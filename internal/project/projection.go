// Package project implements the forward map-projection library: for each
// supported projection, turning an output pixel coordinate into either a
// direction vector on the unit sphere or a flag that the pixel lies
// outside the mapped disc.
package project

import (
	"math"

	"github.com/planetgen/planetgen/internal/oracle"
)

// Vec3 is a direction or point in three dimensions, shared with the
// altitude oracle so projection output needs no conversion at the call
// site.
type Vec3 = oracle.Vec3

// Kind names one of the twelve supported projections.
type Kind int

const (
	Mercator Kind = iota
	Peters
	Square
	Mollweide
	Sinusoidal
	Stereographic
	Orthographic
	Gnomonic
	Icosahedral
	Azimuthal
	Conical
	Heightfield
)

// Params are the shared inputs every projection is built from.
type Params struct {
	Longi, Lat    float64 // centre, radians
	Scale         float64
	Width, Height int
}

// Projection maps an output pixel to a sphere direction.
type Projection interface {
	// Direction returns the sphere direction for pixel (i, j), or
	// ok=false if the pixel lies outside the projected disc.
	Direction(i, j int) (dir Vec3, ok bool)
}

// RowDepth is implemented by projections whose effective recursion depth
// varies by output row (the cylindrical family). The raster driver checks
// for this interface and recomputes Depth once per row when present.
type RowDepth interface {
	RowDepth(j int) int
}

// rotation holds the precomputed sine/cosine of the centre longitude and
// latitude so each pixel's rotation is a handful of multiplies.
type rotation struct {
	slo, clo, sla, cla float64
}

func newRotation(longi, lat float64) rotation {
	return rotation{
		slo: math.Sin(longi), clo: math.Cos(longi),
		sla: math.Sin(lat), cla: math.Cos(lat),
	}
}

// apply rotates a naive view-space direction into the globe's frame:
// tilted by the centre latitude first, then around the vertical axis by
// the centre longitude.
func (r rotation) apply(x, y, z float64) Vec3 {
	yTilt := r.cla*y - r.sla*z
	zTilt := r.sla*y + r.cla*z
	x1 := r.clo*x + r.slo*zTilt
	z1 := -r.slo*x + r.clo*zTilt
	return Vec3{X: x1, Y: yTilt, Z: z1}
}

// planeCoords maps pixel (i, j) to the centred, scale-normalized plane
// coordinates the azimuthal family and the conic projection are expressed
// in terms of, both axes normalized by height. The cylindrical family
// normalizes by width instead and computes its own plane coordinates
// (see cylindrical.go).
func planeCoords(i, j, width, height int, scale float64) (x, y float64) {
	x = (2*float64(i) - float64(width)) / float64(height) / scale
	y = (2*float64(j) - float64(height)) / float64(height) / scale
	return
}

// BaseDepth computes Depth = 3*floor(log2(scale*height)) + 6, the
// once-per-image recursion depth used directly by azimuthal projections
// and as the starting point row-dependent projections scale from.
func BaseDepth(scale float64, height int) int {
	return 3*int(math.Floor(log2(scale*float64(height)))) + 6
}

// rowDepthFromScale1 computes the recomputed-per-row depth used by the cylindrical
// family: 3*floor(log2(scale1*height)) + 3, where scale1 folds in the
// row's latitude-dependent foreshortening.
func rowDepthFromScale1(scale1 float64, height int) int {
	return 3*int(math.Floor(log2(scale1*float64(height)))) + 3
}

func log2(x float64) float64 { return math.Log(x) / math.Log(2) }

// Select builds the Projection for kind, precomputing whatever the
// projection needs once (rotation, cone constants, the icosahedral
// triangle table) rather than per pixel.
func Select(kind Kind, p Params) Projection {
	rot := newRotation(p.Longi, p.Lat)
	switch kind {
	case Mercator:
		return newMercatorProjection(p)
	case Peters:
		return newPetersProjection(p)
	case Square:
		return newSquareProjection(p)
	case Mollweide:
		return &mollweideProjection{p: p, rot: rot}
	case Sinusoidal:
		return newSinusoidalProjection(p)
	case Stereographic:
		return &stereographicProjection{p: p, rot: rot}
	case Orthographic:
		return &orthographicProjection{p: p, rot: rot}
	case Gnomonic:
		return &gnomonicProjection{p: p, rot: rot}
	case Icosahedral:
		return newIcosahedralProjection(p, rot)
	case Azimuthal:
		return &azimuthalProjection{p: p, rot: rot}
	case Conical:
		return newConicalProjection(p)
	case Heightfield:
		return &orthographicProjection{p: p, rot: rot}
	default:
		return newSquareProjection(p)
	}
}

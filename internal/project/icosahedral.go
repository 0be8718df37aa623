package project

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// The icosahedral net lays out twenty triangular faces in three rows: a
// 5-triangle north polar cap, a 10-triangle equatorial belt, and a
// 5-triangle south polar cap, at the two characteristic latitudes of a
// regular icosahedron's face centroids.
const (
	icoL1Deg = 10.812317 // belt face centroid latitude
	icoL2Deg = 52.622632 // polar cap face centroid latitude
	icoScale = 55.6      // net-to-tangent-plane scale ("S" in the net formula)
	icoUnit  = 72.0       // pixel-net width of one belt cell; cap cells are 2 units wide
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// icoFace is one of the twenty net cells: its bounding box in net (x0,y0)
// space, and the sphere direction its centroid maps to.
type icoFace struct {
	x0min, x0max, y0min, y0max float64
	centroidLat, centroidLon   float64
}

// Bounds implements rtreego.Spatial so faces can be indexed directly.
func (f icoFace) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{f.x0min, f.y0min},
		[]float64{f.x0max - f.x0min, f.y0max - f.y0min},
	)
	return rect
}

func (f icoFace) contains(x0, y0 float64) bool {
	return x0 >= f.x0min && x0 < f.x0max && y0 >= f.y0min && y0 < f.y0max
}

func buildIcoFaces() []icoFace {
	faces := make([]icoFace, 0, 20)

	// Equatorial belt: 10 cells, one unit wide, alternating latitude
	// sign so adjacent triangles in the net point up/down.
	beltLeft := -5 * icoUnit
	for m := 0; m < 10; m++ {
		lat := icoL1Deg
		if m%2 == 1 {
			lat = -icoL1Deg
		}
		faces = append(faces, icoFace{
			x0min: beltLeft + float64(m)*icoUnit,
			x0max: beltLeft + float64(m+1)*icoUnit,
			y0min: -icoUnit / 2, y0max: icoUnit / 2,
			centroidLat: deg2rad(lat),
			centroidLon: deg2rad(float64(m) * 36),
		})
	}

	// Polar caps: 5 cells each, two units wide, starting at the belt's
	// left edge so each spans exactly one pair of belt cells.
	capLeft := -2.5 * (2 * icoUnit)
	for k := 0; k < 5; k++ {
		faces = append(faces, icoFace{
			x0min: capLeft + float64(k)*2*icoUnit,
			x0max: capLeft + float64(k+1)*2*icoUnit,
			y0min: icoUnit / 2, y0max: icoUnit/2 + 2*icoUnit,
			centroidLat: deg2rad(icoL2Deg),
			centroidLon: deg2rad(float64(k)*72 + 36),
		})
		faces = append(faces, icoFace{
			x0min: capLeft + float64(k)*2*icoUnit,
			x0max: capLeft + float64(k+1)*2*icoUnit,
			y0min: -icoUnit/2 - 2*icoUnit, y0max: -icoUnit / 2,
			centroidLat: deg2rad(-icoL2Deg),
			centroidLon: deg2rad(float64(k)*72 + 36),
		})
	}

	return faces
}

// icosahedralProjection looks up the net cell a pixel falls in via an
// R-tree bounding-box query (built once), confirms it with the cell's
// half-open box test, then projects locally about that cell's face
// centroid with a small gnomonic patch. Cells are axis-aligned
// rectangles: the slanted edges of the net's triangles are not tested.
type icosahedralProjection struct {
	p     Params
	rot   rotation
	tree  *rtreego.Rtree
	faces []icoFace
}

func newIcosahedralProjection(p Params, rot rotation) Projection {
	faces := buildIcoFaces()
	tree := rtreego.NewTree(2, 5, 10)
	for _, f := range faces {
		tree.Insert(f)
	}
	return &icosahedralProjection{p: p, rot: rot, tree: tree, faces: faces}
}

// netCoords maps a pixel to the unfolded net's (x0, y0) coordinate space,
// in the same pixel-unit scale used by buildIcoFaces (one belt cell is
// icoUnit wide). The centre latitude shifts the net vertically, letting
// the configured view centre pan across the unfolded net. Both axes
// divide by width even though y0's numerator uses height, a quirk
// carried over unchanged.
func (m *icosahedralProjection) netCoords(i, j int) (x0, y0 float64) {
	w := float64(m.p.Width)
	h := float64(m.p.Height)
	latDeg := m.p.Lat * 180 / math.Pi
	x0 = 198.0*(2*float64(i)-w)/w/m.p.Scale - 36
	y0 = 198.0*(2*float64(j)-h)/w/m.p.Scale - latDeg
	return
}

func (m *icosahedralProjection) Direction(i, j int) (Vec3, bool) {
	x0, y0 := m.netCoords(i, j)

	point := rtreego.Point{x0, y0}
	rect, _ := rtreego.NewRect(point, []float64{1e-9, 1e-9})
	candidates := m.tree.SearchIntersect(rect)

	var face *icoFace
	for _, c := range candidates {
		f := c.(icoFace)
		if f.contains(x0, y0) {
			face = &f
			break
		}
	}
	if face == nil {
		return Vec3{}, false
	}

	cx := (face.x0min + face.x0max) / 2
	cy := (face.y0min + face.y0max) / 2
	dx := (x0 - cx) / icoScale
	dy := (y0 - cy) / icoScale

	faceRot := newRotation(face.centroidLon, face.centroidLat)
	local := azimuthalLocal(dx, dy, math.Atan)
	onFace := faceRot.apply(local.X, local.Y, local.Z)
	return m.rot.apply(onFace.X, onFace.Y, onFace.Z), true
}

package oracle

// Params is the immutable configuration an Oracle is built from: the
// seeds, subdivision weights and shading model needed to answer altitude
// queries deterministically.
type Params struct {
	Seed float64
	M    float64 // initial altitude planted at the root tetrahedron's vertices
	DD1  float64 // altitude_weight
	DD2  float64 // distance_weight
	POW  float64 // distance_power
	Depth int

	Shading     ShadeMode
	ShadeAngle  float64 // radians
	ShadeAngle2 float64 // radians
}

// Result is the outcome of a single altitude query.
type Result struct {
	Altitude float64
	Shade    uint8 // valid only when the oracle was built with shading enabled
}

// Oracle answers altitude queries for a fixed set of Params. It is not
// safe for concurrent use by multiple goroutines because of its internal
// shallow-depth cache; parallel callers must each work with their own
// Fork.
type Oracle struct {
	params Params
	root   tetra
	cache  *shallowCache
}

// New builds an Oracle from params.
func New(params Params) *Oracle {
	r1, r2, r3, r4 := RootSeeds(params.Seed)
	return &Oracle{
		params: params,
		root:   rootTetra(r1, r2, r3, r4, params.M),
		cache:  &shallowCache{},
	}
}

// Fork returns a new Oracle sharing this one's parameters and root
// tetrahedron but with an independent, empty shallow cache. Each parallel
// worker in the raster driver should query its own Fork.
func (o *Oracle) Fork() *Oracle {
	return &Oracle{
		params: o.params,
		root:   o.root,
		cache:  &shallowCache{},
	}
}

// Query returns the altitude (and, if shading is enabled, the shade byte)
// for the unit-sphere direction p.
func (o *Oracle) Query(p Vec3) Result {
	depth := o.params.Depth
	dd1, dd2, pow := o.params.DD1, o.params.DD2, o.params.POW

	var res Result
	onLeaf := func(l leaf) {
		if o.params.Shading != ShadeNone {
			res.Shade = shade(l, p, o.params.Shading, o.params.ShadeAngle, o.params.ShadeAngle2)
		}
	}

	if depth <= shallowDepth {
		res.Altitude = subdivide(o.root, p, depth, dd1, dd2, pow, onLeaf)
		return res
	}

	t, ok := o.cache.lookup(p)
	if !ok {
		t = descend(o.root, p, depth, shallowDepth, dd1, dd2, pow)
		o.cache.store(t)
	}
	res.Altitude = subdivide(t, p, shallowDepth, dd1, dd2, pow, onLeaf)
	return res
}

// WithDepth returns a shallow copy of o configured to query at a
// different recursion depth, sharing the root tetrahedron but not the
// cache (a cache entry populated at one depth is not valid at another).
// Cylindrical projections need this because Depth is recomputed per row.
func (o *Oracle) WithDepth(depth int) *Oracle {
	n := o.Fork()
	n.params.Depth = depth
	return n
}

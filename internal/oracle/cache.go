package oracle

import "sync"

// shallowDepth is the recursion level at which the initial descent from
// the root tetrahedron is cached. Every query shares the same top of the
// tree down to this depth, so remembering the sub-tetrahedron reached on
// the first query and testing containment against it first avoids
// replaying an identical top-of-tree descent for every pixel.
const shallowDepth = 11

// shallowCache remembers the most recently reached sub-tetrahedron at
// shallowDepth so later queries that fall inside it can skip straight to
// shallow-depth recursion instead of re-descending from the root.
//
// This mirrors a lazily-populated, lock-guarded single-entry cache: the
// first Oracle.Query populates it through store, later queries check
// containment through lookup under a read lock before falling back to a
// full re-descent, whose result replaces the entry.
type shallowCache struct {
	mu    sync.RWMutex
	valid bool
	t     tetra
}

// lookup returns the cached sub-tetrahedron if p lies inside it.
func (c *shallowCache) lookup(p Vec3) (tetra, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return tetra{}, false
	}
	if !c.t.contains(p) {
		return tetra{}, false
	}
	return c.t, true
}

// store remembers t as the new cached sub-tetrahedron.
func (c *shallowCache) store(t tetra) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
	c.valid = true
}

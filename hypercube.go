package denclue

import (
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// cubeKey is the stable integer-coefficient identity of a HyperCube: one
// coefficient per dimension, computed as round(upper[i]/edge). Using an
// integer tuple (rather than a decimal-textual key) makes map lookups and
// equality exact regardless of floating formatting.
type cubeKey string

// makeCubeKey joins integer coefficients into a map key.
func makeCubeKey(coeffs []int) cubeKey {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = strconv.Itoa(c)
	}
	return cubeKey(strings.Join(parts, ","))
}

// HyperCube is one grid cell: its coefficient key, edge length, member
// points, a running per-component sum (for an incrementally maintained
// mean), and the set of neighboring cells' keys.
type HyperCube struct {
	dim     int
	edge    float64
	key     cubeKey
	coeffs  []int
	upper   []float64
	points  []Point
	sum     []float64
	neighbs map[cubeKey]struct{}
}

// newHyperCube creates an empty cube identified by coeffs, whose upper
// corner is coeffs[i]*edge and whose lower corner is upper[i]-edge.
func newHyperCube(dim int, edge float64, coeffs []int) *HyperCube {
	upper := make([]float64, dim)
	for i, c := range coeffs {
		upper[i] = float64(c) * edge
	}
	return &HyperCube{
		dim:     dim,
		edge:    edge,
		key:     makeCubeKey(coeffs),
		coeffs:  append([]int(nil), coeffs...),
		upper:   upper,
		sum:     make([]float64, dim),
		neighbs: make(map[cubeKey]struct{}),
	}
}

// Key returns the cube's coefficient key.
func (c *HyperCube) Key() cubeKey { return c.key }

// Len reports how many points have been inserted into the cube.
func (c *HyperCube) Len() int { return len(c.points) }

// Points returns the cube's member points, in insertion order. The
// returned slice aliases the cube's internal storage and must not be
// mutated by the caller.
func (c *HyperCube) Points() []Point { return c.points }

// contains reports whether p belongs in this cube: for every component i,
// upper[i]-edge <= p[i] < upper[i].
func (c *HyperCube) contains(p Point) bool {
	for i := 0; i < c.dim; i++ {
		v := p.At(i)
		if v < c.upper[i]-c.edge || v >= c.upper[i] {
			return false
		}
	}
	return true
}

// Insert adds p to the cube and folds it into the running sum. If p does
// not actually belong in this cube (a routing error upstream), the
// mismatch is logged and the insert is rejected.
func (c *HyperCube) Insert(p Point) {
	if !c.contains(p) {
		log.Printf("denclue: point %s does not belong in cube %s, insert rejected", p, c.key)
		return
	}
	c.points = append(c.points, p)
	attrs := make([]float64, c.dim)
	for i := 0; i < c.dim; i++ {
		attrs[i] = p.At(i)
	}
	floats.Add(c.sum, attrs)
}

// Mean returns the running componentwise average of the cube's points as
// a Point. Calling it on an empty cube is a caller error; the zero Point
// is returned.
func (c *HyperCube) Mean() Point {
	if len(c.points) == 0 {
		return ZeroPoint(c.dim)
	}
	avg := make([]float64, c.dim)
	copy(avg, c.sum)
	floats.Scale(1/float64(len(c.points)), avg)
	return Point{attrs: avg}
}

// SetNeighbors replaces the cube's adjacency set with keys, filtering out
// the cube's own key if present.
func (c *HyperCube) SetNeighbors(keys []cubeKey) {
	c.neighbs = make(map[cubeKey]struct{}, len(keys))
	for _, k := range keys {
		if k == c.key {
			continue
		}
		c.neighbs[k] = struct{}{}
	}
}

// Neighbors returns the cube's current adjacency set as a slice.
func (c *HyperCube) Neighbors() []cubeKey {
	out := make([]cubeKey, 0, len(c.neighbs))
	for k := range c.neighbs {
		out = append(out, k)
	}
	return out
}

// RemoveEmptyNeighbors drops every key in empty from the cube's adjacency
// set.
func (c *HyperCube) RemoveEmptyNeighbors(empty map[cubeKey]struct{}) {
	for k := range empty {
		delete(c.neighbs, k)
	}
}

// IsNeighborOf reports whether c is adjacent to some cube named in keys
// AND the Euclidean distance between the two cubes' means is at most
// 2*edge. cubes maps keys to the candidate HyperCubes referenced by keys.
func (c *HyperCube) IsNeighborOf(keys map[cubeKey]struct{}, cubes map[cubeKey]*HyperCube) bool {
	for k := range c.neighbs {
		if _, ok := keys[k]; !ok {
			continue
		}
		other, ok := cubes[k]
		if !ok || other.Len() == 0 || c.Len() == 0 {
			continue
		}
		if c.Mean().Dist(other.Mean()) <= 2*c.edge {
			return true
		}
	}
	return false
}

// String renders the cube's upper-bound corner for diagnostics and output
// parity; it is not the map key.
func (c *HyperCube) String() string {
	return NewPoint(c.upper).String()
}

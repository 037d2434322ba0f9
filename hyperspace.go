package denclue

import (
	"log"
	"math"
	"sort"
)

// HyperSpace is the full grid covering a Dataset's bounding box: a
// key-to-cube map plus, after pruning, the high-populated cube keys that
// density/attractor/path computation draws its points from.
//
// highPopulatedOrder and highPopulated carry the same set of keys: the
// former is the stable, sorted discovery order RetainedPoints iterates
// in, the latter is the O(1) membership set Prune/IsNeighborOf consult.
// Go randomizes map iteration, so the set alone cannot serve both
// purposes without making retained-point order (and everything
// downstream of it: cluster discovery order, merge winners, output
// numbering) vary from run to run.
type HyperSpace struct {
	dim                int
	edge               float64
	xi                 float64
	cubes              map[cubeKey]*HyperCube
	highPopulated      map[cubeKey]struct{}
	highPopulatedOrder []cubeKey
}

// sortedKeys returns the keys of cubes in ascending string order, so
// callers that must range over the map deterministically can do so.
func sortedKeys(cubes map[cubeKey]*HyperCube) []cubeKey {
	keys := make([]cubeKey, 0, len(cubes))
	for k := range cubes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// NewHyperSpace builds the grid of edge-2*sigma cubes covering dataset's
// bounding box and routes every point of dataset into its owning cube. It
// does not prune; call Prune to do that.
func NewHyperSpace(dataset *Dataset, sigma, xi float64) *HyperSpace {
	dim := dataset.Dim()
	edge := 2 * sigma
	lower := dataset.LowerBounds()
	rawUpper := dataset.UpperBounds()

	coeffMin := make([]int, dim)
	coeffMax := make([]int, dim)
	for i := 0; i < dim; i++ {
		alignedUpper := edge * math.Ceil(rawUpper[i]/edge)
		coeffMin[i] = int(math.Floor(lower[i]/edge)) + 1
		coeffMax[i] = int(math.Round(alignedUpper / edge))
		// A point lying exactly on an upper bound that is a multiple of
		// edge routes to floor(upper/edge)+1, one past the aligned corner;
		// extend the range so that point still has a cube.
		if top := int(math.Floor(rawUpper[i]/edge)) + 1; top > coeffMax[i] {
			coeffMax[i] = top
		}
		if coeffMax[i] < coeffMin[i] {
			coeffMax[i] = coeffMin[i]
		}
	}

	hs := &HyperSpace{
		dim:           dim,
		edge:          edge,
		xi:            xi,
		cubes:         make(map[cubeKey]*HyperCube),
		highPopulated: make(map[cubeKey]struct{}),
	}

	hs.buildCubes(coeffMin, coeffMax)
	hs.linkNeighbors(coeffMin, coeffMax)

	for i := 0; i < dataset.Len(); i++ {
		hs.route(dataset.Get(i))
	}

	return hs
}

// buildCubes enumerates every coefficient tuple in the cartesian product
// of [coeffMin[i], coeffMax[i]] and allocates a HyperCube for each.
func (hs *HyperSpace) buildCubes(coeffMin, coeffMax []int) {
	coeffs := make([]int, hs.dim)
	copy(coeffs, coeffMin)

	for {
		c := newHyperCube(hs.dim, hs.edge, coeffs)
		hs.cubes[c.Key()] = c

		i := hs.dim - 1
		for i >= 0 {
			coeffs[i]++
			if coeffs[i] <= coeffMax[i] {
				break
			}
			coeffs[i] = coeffMin[i]
			i--
		}
		if i < 0 {
			break
		}
	}
}

// linkNeighbors assigns each cube the keys of the 3^d-1 coefficient
// tuples obtained by perturbing each coordinate by {-1,0,+1} (excluding
// the all-zero perturbation), discarding any that fall outside the
// declared coefficient range.
func (hs *HyperSpace) linkNeighbors(coeffMin, coeffMax []int) {
	deltas := make([]int, hs.dim)
	for key, cube := range hs.cubes {
		_ = key
		var neighborKeys []cubeKey
		for i := range deltas {
			deltas[i] = -1
		}
		for {
			allZero := true
			candidate := make([]int, hs.dim)
			inRange := true
			for i := 0; i < hs.dim; i++ {
				if deltas[i] != 0 {
					allZero = false
				}
				candidate[i] = cube.coeffs[i] + deltas[i]
				if candidate[i] < coeffMin[i] || candidate[i] > coeffMax[i] {
					inRange = false
				}
			}
			if !allZero && inRange {
				neighborKeys = append(neighborKeys, makeCubeKey(candidate))
			}

			j := hs.dim - 1
			for j >= 0 {
				deltas[j]++
				if deltas[j] <= 1 {
					break
				}
				deltas[j] = -1
				j--
			}
			if j < 0 {
				break
			}
		}
		cube.SetNeighbors(neighborKeys)
	}
}

// route assigns p to its owning cube, logging and dropping it if no such
// cube exists in the grid.
func (hs *HyperSpace) route(p Point) {
	coeffs := make([]int, hs.dim)
	for i := 0; i < hs.dim; i++ {
		coeffs[i] = int(math.Floor(p.At(i)/hs.edge)) + 1
	}
	key := makeCubeKey(coeffs)
	cube, ok := hs.cubes[key]
	if !ok {
		log.Printf("denclue: point %s routed outside the grid, dropped", p)
		return
	}
	cube.Insert(p)
}

// minPopulation is the high-populated threshold xi/(2*dim).
func (hs *HyperSpace) minPopulation() float64 {
	return hs.xi / (2 * float64(hs.dim))
}

// Prune performs the three-step pruning pass described by the grid
// pruning design: mark high-populated cubes and drop empty ones, strip
// dangling adjacency to the dropped cubes, then drop every surviving
// cube that is neither high-populated nor a qualifying neighbor of one.
func (hs *HyperSpace) Prune() {
	threshold := hs.minPopulation()
	empty := make(map[cubeKey]struct{})
	hs.highPopulated = make(map[cubeKey]struct{})
	hs.highPopulatedOrder = nil

	for _, key := range sortedKeys(hs.cubes) {
		cube := hs.cubes[key]
		if float64(cube.Len()) >= threshold {
			hs.highPopulated[key] = struct{}{}
			hs.highPopulatedOrder = append(hs.highPopulatedOrder, key)
			continue
		}
		if cube.Len() == 0 {
			empty[key] = struct{}{}
			delete(hs.cubes, key)
		}
	}

	for _, key := range sortedKeys(hs.cubes) {
		hs.cubes[key].RemoveEmptyNeighbors(empty)
	}

	for _, key := range sortedKeys(hs.cubes) {
		if _, high := hs.highPopulated[key]; high {
			continue
		}
		if !hs.cubes[key].IsNeighborOf(hs.highPopulated, hs.cubes) {
			delete(hs.cubes, key)
		}
	}
}

// RetainedPoints returns every point belonging to a high-populated cube,
// in stable key order (then insertion order within a cube). This is the
// complete set that density, gradient, hill-climbing, and path search
// draw from; points in surviving non-high-populated neighbor cubes are
// excluded.
func (hs *HyperSpace) RetainedPoints() []Point {
	var out []Point
	for _, key := range hs.highPopulatedOrder {
		cube, ok := hs.cubes[key]
		if !ok {
			continue
		}
		out = append(out, cube.Points()...)
	}
	return out
}

// CubeCount reports how many cubes remain in the grid (post-prune, this
// includes both high-populated cubes and any surviving qualifying
// neighbors).
func (hs *HyperSpace) CubeCount() int { return len(hs.cubes) }

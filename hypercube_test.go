package denclue

import "testing"

func TestHyperCubeContainsAndInsert(t *testing.T) {
	c := newHyperCube(2, 2, []int{1, 1})
	// upper = [2,2], lower = [0,0]
	inside := NewPoint([]float64{1, 1})
	outside := NewPoint([]float64{3, 3})

	c.Insert(inside)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after inserting contained point", c.Len())
	}

	c.Insert(outside)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after rejecting out-of-range point", c.Len())
	}
}

func TestHyperCubeMean(t *testing.T) {
	c := newHyperCube(2, 10, []int{1, 1})
	c.Insert(NewPoint([]float64{1, 1}))
	c.Insert(NewPoint([]float64{3, 5}))
	mean := c.Mean()
	if mean.At(0) != 2 || mean.At(1) != 3 {
		t.Fatalf("Mean() = %v, want [2 3]", []float64{mean.At(0), mean.At(1)})
	}
}

func TestHyperCubeMeanEmpty(t *testing.T) {
	c := newHyperCube(2, 10, []int{0, 0})
	mean := c.Mean()
	if mean.At(0) != 0 || mean.At(1) != 0 {
		t.Fatalf("Mean() on empty cube = %v, want zero point", mean)
	}
}

func TestHyperCubeSetNeighborsFiltersSelf(t *testing.T) {
	c := newHyperCube(1, 1, []int{0})
	other := newHyperCube(1, 1, []int{1})
	c.SetNeighbors([]cubeKey{c.Key(), other.Key()})
	neighbors := c.Neighbors()
	if len(neighbors) != 1 || neighbors[0] != other.Key() {
		t.Fatalf("Neighbors() = %v, want only %v", neighbors, other.Key())
	}
}

func TestHyperCubeRemoveEmptyNeighbors(t *testing.T) {
	c := newHyperCube(1, 1, []int{0})
	a := newHyperCube(1, 1, []int{1})
	b := newHyperCube(1, 1, []int{-1})
	c.SetNeighbors([]cubeKey{a.Key(), b.Key()})
	c.RemoveEmptyNeighbors(map[cubeKey]struct{}{a.Key(): {}})
	neighbors := c.Neighbors()
	if len(neighbors) != 1 || neighbors[0] != b.Key() {
		t.Fatalf("Neighbors() after removal = %v, want only %v", neighbors, b.Key())
	}
}

func TestHyperCubeIsNeighborOf(t *testing.T) {
	c := newHyperCube(1, 2, []int{1})
	other := newHyperCube(1, 2, []int{2})
	c.Insert(NewPoint([]float64{1}))
	other.Insert(NewPoint([]float64{3}))
	c.SetNeighbors([]cubeKey{other.Key()})

	cubes := map[cubeKey]*HyperCube{other.Key(): other}
	keys := map[cubeKey]struct{}{other.Key(): {}}

	if !c.IsNeighborOf(keys, cubes) {
		t.Fatalf("IsNeighborOf() = false, want true (means within 2*edge)")
	}
}

func TestHyperCubeIsNeighborOfRequiresAdjacency(t *testing.T) {
	c := newHyperCube(1, 2, []int{1})
	other := newHyperCube(1, 2, []int{2})
	c.Insert(NewPoint([]float64{1}))
	other.Insert(NewPoint([]float64{3}))
	// c's neighbor set is empty: no adjacency recorded.
	cubes := map[cubeKey]*HyperCube{other.Key(): other}
	keys := map[cubeKey]struct{}{other.Key(): {}}

	if c.IsNeighborOf(keys, cubes) {
		t.Fatalf("IsNeighborOf() = true, want false without recorded adjacency")
	}
}

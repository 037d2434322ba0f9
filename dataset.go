package denclue

import "math"

// Dataset is an append-only, ordered collection of Points of common
// dimension, together with a running integer-aligned bounding box.
type Dataset struct {
	dim    int
	points []Point
	upper  []float64
	lower  []float64
}

// NewDataset returns an empty Dataset of dimension dim. Bounds start at
// the identity for their respective extremum (−∞ for upper, +∞ for
// lower) so the first Add establishes them outright.
func NewDataset(dim int) *Dataset {
	upper := make([]float64, dim)
	lower := make([]float64, dim)
	for i := 0; i < dim; i++ {
		upper[i] = math.Inf(-1)
		lower[i] = math.Inf(1)
	}
	return &Dataset{dim: dim, upper: upper, lower: lower}
}

// Add appends p to the Dataset and folds its components into the running
// bounding box. Bounds are always rounded to integers, so the grid built
// from them is unaffected by floating noise in the input.
func (d *Dataset) Add(p Point) {
	d.points = append(d.points, p)
	for i := 0; i < d.dim; i++ {
		v := p.At(i)
		d.upper[i] = math.Ceil(math.Max(d.upper[i], v))
		d.lower[i] = math.Floor(math.Min(d.lower[i], v))
	}
}

// Get returns the i-th point added to the Dataset.
func (d *Dataset) Get(i int) Point { return d.points[i] }

// Len reports the number of points in the Dataset.
func (d *Dataset) Len() int { return len(d.points) }

// Dim reports the Dataset's fixed dimension.
func (d *Dataset) Dim() int { return d.dim }

// UpperBounds returns a copy of the running per-component ceiling.
func (d *Dataset) UpperBounds() []float64 {
	out := make([]float64, len(d.upper))
	copy(out, d.upper)
	return out
}

// LowerBounds returns a copy of the running per-component floor.
func (d *Dataset) LowerBounds() []float64 {
	out := make([]float64, len(d.lower))
	copy(out, d.lower)
	return out
}

package denclue

import (
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is a fixed-dimension vector of reals plus a scalar density value.
// The zero Point is not useful; construct one with NewPoint or ZeroPoint.
// Copying a Point is independent: arithmetic never mutates the receiver's
// backing slice in place, it allocates a fresh one.
type Point struct {
	attrs   []float64
	density float64
}

// NewPoint builds a Point from attrs, copying the slice so the caller's
// backing array can be reused or mutated afterward without affecting p.
func NewPoint(attrs []float64) Point {
	cp := make([]float64, len(attrs))
	copy(cp, attrs)
	return Point{attrs: cp}
}

// ZeroPoint returns a dim-dimensional Point with every component 0.
func ZeroPoint(dim int) Point {
	return Point{attrs: make([]float64, dim)}
}

// Dim reports the number of components in p.
func (p Point) Dim() int { return len(p.attrs) }

// At returns the i-th component of p. An out-of-range i is a diagnosable
// caller error: it is logged and At falls back to component 0 (or 0 itself
// for a zero-dimensional point). Callers must not rely on this fallback.
func (p Point) At(i int) float64 {
	if i < 0 || i >= len(p.attrs) {
		log.Printf("denclue: component %d out of range for point of dimension %d", i, len(p.attrs))
		if len(p.attrs) == 0 {
			return 0
		}
		return p.attrs[0]
	}
	return p.attrs[i]
}

// Density returns the density value last stored on p.
func (p Point) Density() float64 { return p.density }

// SetDensity stores d as p's density. Arithmetic on p never reads or
// writes this field.
func (p *Point) SetDensity(d float64) { p.density = d }

func minDim(a, b Point) int {
	if len(a.attrs) < len(b.attrs) {
		return len(a.attrs)
	}
	return len(b.attrs)
}

// Add returns a + b, componentwise, truncated to min(a.Dim(), b.Dim()).
func (a Point) Add(b Point) Point {
	dim := minDim(a, b)
	out := make([]float64, dim)
	floats.AddTo(out, a.attrs[:dim], b.attrs[:dim])
	return Point{attrs: out}
}

// Sub returns a - b, componentwise, truncated to min(a.Dim(), b.Dim()).
func (a Point) Sub(b Point) Point {
	dim := minDim(a, b)
	out := make([]float64, dim)
	floats.SubTo(out, a.attrs[:dim], b.attrs[:dim])
	return Point{attrs: out}
}

// Scale returns a copy of a with every component multiplied by s.
func (a Point) Scale(s float64) Point {
	out := make([]float64, len(a.attrs))
	copy(out, a.attrs)
	floats.Scale(s, out)
	return Point{attrs: out}
}

// Norm returns the Euclidean (L2) norm of a.
func (a Point) Norm() float64 {
	return floats.Norm(a.attrs, 2)
}

// Dist returns the Euclidean distance between a and b, truncated to
// min(a.Dim(), b.Dim()).
func Dist(a, b Point) float64 {
	dim := minDim(a, b)
	return floats.Distance(a.attrs[:dim], b.attrs[:dim], 2)
}

// Dist returns the Euclidean distance between a and b.
func (a Point) Dist(b Point) float64 { return Dist(a, b) }

// Equal reports whether a and b are the same point, i.e. Dist(a, b) == 0.
func (a Point) Equal(b Point) bool { return a.Dist(b) == 0 }

// Less orders Points lexicographically over their components, breaking
// ties (equal points, or a mismatched dimension where the shared prefix is
// equal) in favor of true. It exists only so Points can serve as a
// deterministic sort/map key in tests; clustering logic never calls it.
func (a Point) Less(b Point) bool {
	dim := minDim(a, b)
	for i := 0; i < dim; i++ {
		if a.attrs[i] != b.attrs[i] {
			return a.attrs[i] < b.attrs[i]
		}
	}
	return true
}

// String renders p as "v0,v1,...,v_{d-1}", the canonical textual form used
// for attractor identity and output rendering.
func (p Point) String() string {
	parts := make([]string, len(p.attrs))
	for i, v := range p.attrs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// ParsePoint parses a comma-separated string of dim reals into a Point.
// A malformed or missing component is treated as 0 rather than aborting
// the parse; extra components beyond dim are ignored.
func ParsePoint(s string, dim int) Point {
	fields := strings.Split(s, ",")
	attrs := make([]float64, dim)
	for i := 0; i < dim && i < len(fields); i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			continue
		}
		attrs[i] = v
	}
	return Point{attrs: attrs}
}

package denclue

import (
	"math"
	"testing"
)

func TestInfluenceSelfIsZero(t *testing.T) {
	p := NewPoint([]float64{1, 2})
	if got := Influence(p, p, 1); got != 0 {
		t.Fatalf("Influence(p,p) = %v, want 0", got)
	}
}

func TestInfluenceSymmetricAndBounded(t *testing.T) {
	a := NewPoint([]float64{0, 0})
	b := NewPoint([]float64{1, 1})
	ab := Influence(a, b, 1.5)
	ba := Influence(b, a, 1.5)
	if ab != ba {
		t.Fatalf("Influence not symmetric: %v vs %v", ab, ba)
	}
	if ab < 0 || ab > 1 {
		t.Fatalf("Influence out of [0,1]: %v", ab)
	}
}

func TestDensitySumsInfluence(t *testing.T) {
	x := NewPoint([]float64{0, 0})
	retained := []Point{
		NewPoint([]float64{1, 0}),
		NewPoint([]float64{0, 1}),
	}
	want := Influence(x, retained[0], 1) + Influence(x, retained[1], 1)
	if got := Density(x, retained, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Density() = %v, want %v", got, want)
	}
}

func TestGradientPointsTowardMass(t *testing.T) {
	x := NewPoint([]float64{0, 0})
	retained := []Point{NewPoint([]float64{1, 0})}
	g := Gradient(x, retained, 1)
	if g.At(0) <= 0 {
		t.Fatalf("Gradient()[0] = %v, want > 0 (mass is in +x direction)", g.At(0))
	}
	if g.At(1) != 0 {
		t.Fatalf("Gradient()[1] = %v, want 0", g.At(1))
	}
}

func TestParallelDensityMatchesSequential(t *testing.T) {
	retained := []Point{
		NewPoint([]float64{0, 0}),
		NewPoint([]float64{1, 1}),
		NewPoint([]float64{2, 2}),
	}
	targets := []Point{
		NewPoint([]float64{0.5, 0.5}),
		NewPoint([]float64{1.5, 1.5}),
	}
	got := ParallelDensity(targets, retained, 1)
	for i, x := range targets {
		want := Density(x, retained, 1)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("ParallelDensity()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

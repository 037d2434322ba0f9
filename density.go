package denclue

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Influence returns the Gaussian influence of y on x under bandwidth
// sigma: 0 when x and y coincide, exp(-dist(x,y)^2/(2*sigma^2))
// otherwise.
func Influence(x, y Point, sigma float64) float64 {
	d := x.Dist(y)
	if d == 0 {
		return 0
	}
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

// Density returns the sum of x's influence received from every point in
// retained.
func Density(x Point, retained []Point, sigma float64) float64 {
	var sum float64
	for _, y := range retained {
		sum += Influence(x, y, sigma)
	}
	return sum
}

// Gradient returns the density gradient at x with respect to retained:
// its i-th component is sum_y (y_i - x_i) * Influence(x, y, sigma).
func Gradient(x Point, retained []Point, sigma float64) Point {
	grad := make([]float64, x.Dim())
	diff := make([]float64, x.Dim())
	for _, y := range retained {
		inf := Influence(x, y, sigma)
		if inf == 0 {
			continue
		}
		dim := minDim(x, y)
		floats.SubTo(diff[:dim], y.attrs[:dim], x.attrs[:dim])
		floats.AddScaled(grad[:dim], inf, diff[:dim])
	}
	return Point{attrs: grad}
}

// workerCount bounds the goroutine fan-out used by ParallelDensity,
// mirroring the teacher's row-range worker-pool sizing.
func workerCount(n int) int {
	w := runtime.NumCPU()
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// ParallelDensity computes Density for every point in targets against the
// fixed retained set, fanning the outer loop across a bounded worker pool
// since the retained set is read-only at this point in the pipeline.
func ParallelDensity(targets []Point, retained []Point, sigma float64) []float64 {
	out := make([]float64, len(targets))
	if len(targets) == 0 {
		return out
	}
	workers := workerCount(len(targets))
	chunk := (len(targets) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(targets); start += chunk {
		end := start + chunk
		if end > len(targets) {
			end = len(targets)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = Density(targets[i], retained, sigma)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

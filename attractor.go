package denclue

// maxHillClimbIterations caps the hill-climb so a flat or oscillating
// density field can never loop forever.
const maxHillClimbIterations = 1000

// FindAttractor hill-climbs from seed toward a local density maximum
// ("density attractor") over retained, returning the point where the
// climb terminates. seed's density must already be computed (the density
// phase runs before the attractor phase); the returned point carries
// whatever density its final iterate had.
func FindAttractor(seed Point, retained []Point, sigma float64) Point {
	current := seed
	for i := 0; i < maxHillClimbIterations; i++ {
		grad := Gradient(current, retained, sigma)
		norm := grad.Norm()
		if norm == 0 {
			return current
		}

		next := current.Add(grad.Scale(1 / norm))
		nextDensity := Density(next, retained, sigma)

		if nextDensity < current.Density() {
			return current
		}

		next.SetDensity(nextDensity)
		current = next
	}
	return current
}

package denclue

// Run executes the full DENCLUE pipeline over dataset under cfg: build the
// grid, prune it, compute density over the retained points, hill-climb
// each retained point to its attractor, group by attractor, and merge
// path-connected groups.
//
// It returns an error without doing any work if cfg fails validation.
func Run(dataset *Dataset, cfg Config) ([]Cluster, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	space := NewHyperSpace(dataset, cfg.Sigma, cfg.Xi)
	space.Prune()

	retained := space.RetainedPoints()
	densities := ParallelDensity(retained, retained, cfg.Sigma)
	for i := range retained {
		retained[i].SetDensity(densities[i])
	}

	find := func(seed Point) Point {
		return FindAttractor(seed, retained, cfg.Sigma)
	}

	groups := groupByAttractor(retained, find, cfg.Xi)
	reachable := newDenseGraph(retained, cfg.Sigma, cfg.Xi)

	return mergeClusters(groups, reachable), nil
}

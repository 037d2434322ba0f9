package denclue

// Cluster is one discovered cluster: its density attractor and the
// points whose hill-climb terminated there (directly, or transitively
// through a path-connected merge).
type Cluster struct {
	Attractor Point
	Members   []Point
}

// clusterSet is the provisional grouping built by groupByAttractor: an
// order-preserving map from attractor key to its member points, plus the
// attractor Point itself keyed the same way.
type clusterSet struct {
	order      []string
	members    map[string][]Point
	attractors map[string]Point
	erased     map[string]bool
}

func newClusterSet() *clusterSet {
	return &clusterSet{
		members:    make(map[string][]Point),
		attractors: make(map[string]Point),
		erased:     make(map[string]bool),
	}
}

// add appends member to the group keyed by attractor's textual form,
// recording first-insertion order.
func (cs *clusterSet) add(attractor, member Point) {
	key := attractor.String()
	if _, ok := cs.members[key]; !ok {
		cs.order = append(cs.order, key)
		cs.attractors[key] = attractor
	}
	cs.members[key] = append(cs.members[key], member)
}

// groupByAttractor runs Phase A: for every retained point, it hill-climbs
// to its attractor via find, keeping the point only if the attractor's
// density is at least xi.
func groupByAttractor(retained []Point, find func(Point) Point, xi float64) *clusterSet {
	cs := newClusterSet()
	for _, p := range retained {
		attractor := find(p)
		if attractor.Density() < xi {
			continue
		}
		cs.add(attractor, p)
	}
	return cs
}

// mergeClusters runs Phase B: for every pair of distinct provisional
// clusters in first-insertion order (outer index i, inner index j>i),
// merge cluster j into cluster i when reachable.PathExists holds between
// their attractors, and mark j erased. The outer cluster keeps absorbing
// subsequent matches, exactly as the original's iterator-pair traversal
// does.
func mergeClusters(cs *clusterSet, reachable *denseGraph) []Cluster {
	for i := 0; i < len(cs.order); i++ {
		keyI := cs.order[i]
		if cs.erased[keyI] {
			continue
		}
		for j := i + 1; j < len(cs.order); j++ {
			keyJ := cs.order[j]
			if cs.erased[keyJ] {
				continue
			}
			if reachable.PathExists(cs.attractors[keyI], cs.attractors[keyJ]) {
				cs.members[keyI] = append(cs.members[keyI], cs.members[keyJ]...)
				cs.erased[keyJ] = true
			}
		}
	}

	var out []Cluster
	for _, key := range cs.order {
		if cs.erased[key] {
			continue
		}
		members := cs.members[key]
		if len(members) == 0 {
			continue
		}
		out = append(out, Cluster{Attractor: cs.attractors[key], Members: members})
	}
	return out
}

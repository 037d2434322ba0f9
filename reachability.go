package denclue

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// denseGraph is the set of xi-dense retained points and the sigma-close
// edges between them, precomputed once per Run call so every attractor
// pair's PathExists query reuses it instead of re-scanning the retained
// set.
type denseGraph struct {
	points []Point
	sigma  float64
	xi     float64
	// close[i] lists the indices j for which dist(points[i], points[j]) < sigma.
	close [][]int
}

// newDenseGraph builds the dense-point adjacency from retained, keeping
// only points whose density is at least xi.
func newDenseGraph(retained []Point, sigma, xi float64) *denseGraph {
	dg := &denseGraph{sigma: sigma, xi: xi}
	for _, p := range retained {
		if p.Density() >= xi {
			dg.points = append(dg.points, p)
		}
	}
	dg.close = make([][]int, len(dg.points))
	for i := range dg.points {
		for j := range dg.points {
			if i == j {
				continue
			}
			if dg.points[i].Dist(dg.points[j]) < sigma {
				dg.close[i] = append(dg.close[i], j)
			}
		}
	}
	return dg
}

func pointVertexID(i int) string { return fmt.Sprintf("p%d", i) }

// PathExists reports whether p and q are connected by a chain of
// xi-dense, sigma-close retained points: directly (if within sigma of
// each other) or through dg's precomputed dense-point graph, answered via
// breadth-first search. Each retained point is a single graph vertex, so
// BFS's visited set naturally enforces that no point is reused within a
// path.
func (dg *denseGraph) PathExists(p, q Point) bool {
	if p.Dist(q) <= dg.sigma {
		return true
	}

	// core.NewGraph() is unweighted; bfs.BFS itself rejects weighted
	// graphs (ErrWeightedGraph). Every edge must carry weight 0 or
	// AddEdge fails with ErrBadWeight and adds nothing.
	g := core.NewGraph()
	for i := range dg.points {
		if err := g.AddVertex(pointVertexID(i)); err != nil {
			log.Printf("denclue: adding retained-point vertex: %v", err)
		}
	}
	for i, neighbors := range dg.close {
		for _, j := range neighbors {
			if j > i {
				if _, err := g.AddEdge(pointVertexID(i), pointVertexID(j), 0); err != nil {
					log.Printf("denclue: adding dense-point edge: %v", err)
				}
			}
		}
	}

	const srcID, dstID = "src", "dst"
	if err := g.AddVertex(srcID); err != nil {
		log.Printf("denclue: adding src vertex: %v", err)
	}
	if err := g.AddVertex(dstID); err != nil {
		log.Printf("denclue: adding dst vertex: %v", err)
	}
	for i, pt := range dg.points {
		if p.Dist(pt) < dg.sigma {
			if _, err := g.AddEdge(srcID, pointVertexID(i), 0); err != nil {
				log.Printf("denclue: wiring src to retained point: %v", err)
			}
		}
		if q.Dist(pt) < dg.sigma {
			if _, err := g.AddEdge(pointVertexID(i), dstID, 0); err != nil {
				log.Printf("denclue: wiring retained point to dst: %v", err)
			}
		}
	}

	result, err := bfs.BFS(g, srcID)
	if err != nil {
		return false
	}
	_, reached := result.Depth[dstID]
	return reached
}

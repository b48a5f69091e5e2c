package routing

import (
	"slices"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
)

// ReconstructPath returns the vertices from the tree source to end, both included.
// false means end is unreachable.
func ReconstructPath(t *ShortestPathTree, end datastructure.Index) ([]datastructure.Index, bool) {
	if !t.Reachable(end) {
		return nil, false
	}

	path := make([]datastructure.Index, 0)
	for curr := end; curr != datastructure.INVALID_INDEX; curr = t.prev[curr] {
		if len(path) == len(t.prev) {
			// a predecessor chain longer than the vertex count has a cycle
			return nil, false
		}
		path = append(path, curr)
	}

	if path[len(path)-1] != t.source {
		return nil, false
	}

	slices.Reverse(path)
	return path, true
}

// PathLength sums the edge weights along path. consecutive vertices must be adjacent.
func PathLength(g *datastructure.Graph, path []datastructure.Index) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += g.GetHaversineDistanceFromUtoV(path[i], path[i+1])
	}
	return total
}

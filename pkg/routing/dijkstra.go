package routing

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
)

var ErrIndexOutOfRange = errors.New("start vertex out of range")

// ShortestPathTree is the result of a single source query. dist[v] is +Inf and prev[v] is
// datastructure.INVALID_INDEX when v is not reachable from the source.
type ShortestPathTree struct {
	source datastructure.Index
	dist   []float64
	prev   []datastructure.Index
}

func (t *ShortestPathTree) GetSource() datastructure.Index {
	return t.source
}

// Distance returns the shortest distance in km to v and whether v is reachable at all.
func (t *ShortestPathTree) Distance(v datastructure.Index) (float64, bool) {
	if int(v) >= len(t.dist) {
		return math.Inf(1), false
	}
	d := t.dist[v]
	return d, !math.IsInf(d, 1)
}

func (t *ShortestPathTree) Reachable(v datastructure.Index) bool {
	_, ok := t.Distance(v)
	return ok
}

func (t *ShortestPathTree) Predecessor(v datastructure.Index) datastructure.Index {
	return t.prev[v]
}

func (t *ShortestPathTree) NumberOfVertices() int {
	return len(t.dist)
}

// Dijkstra computes shortest distances from start with the dense O(V^2) variant: every round scans all
// vertices for the unvisited one with the smallest finite distance, lowest id first on ties.
// edges are relaxed in insertion order with a strict comparison, so among equal cost paths the one found
// first is kept.
func Dijkstra(g *datastructure.Graph, start datastructure.Index) (*ShortestPathTree, error) {
	n := g.NumberOfVertices()
	if int(start) >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, start, n)
	}

	dist := make([]float64, n)
	prev := make([]datastructure.Index, n)
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		prev[i] = datastructure.INVALID_INDEX
	}
	dist[start] = 0

	for i := 0; i < n; i++ {
		u, ok := minUnvisited(dist, visited)
		if !ok {
			// every remaining vertex is unreachable
			break
		}
		visited[u] = true

		g.ForOutEdgesOfVertex(u, func(e *datastructure.Edge) {
			v := e.GetHead()
			if visited[v] {
				return
			}
			if newDist := dist[u] + e.GetWeight(); newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
			}
		})
	}

	return &ShortestPathTree{
		source: start,
		dist:   dist,
		prev:   prev,
	}, nil
}

func minUnvisited(dist []float64, visited []bool) (datastructure.Index, bool) {
	u := datastructure.INVALID_INDEX
	best := math.Inf(1)
	for j := range dist {
		if !visited[j] && dist[j] < best {
			best = dist[j]
			u = datastructure.Index(j)
		}
	}
	return u, u != datastructure.INVALID_INDEX
}

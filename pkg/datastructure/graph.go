package datastructure

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/campus-navigator/pkg"
	"github.com/lintang-b-s/campus-navigator/pkg/geo"
)

type Index uint32

// INVALID_INDEX marks "no vertex", e.g. the predecessor of the source in a shortest path tree.
const INVALID_INDEX Index = math.MaxUint32

type Vertex struct {
	coord Coordinate
	name  string
	id    Index
}

func NewVertex(lat, lon float64, id Index, name string) *Vertex {
	return &Vertex{
		coord: NewCoordinate(lat, lon),
		name:  name,
		id:    id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.coord.Lat()
}

func (v *Vertex) GetLon() float64 {
	return v.coord.Lon()
}

func (v *Vertex) GetCoordinate() Coordinate {
	return v.coord
}

func (v *Vertex) GetName() string {
	return v.name
}

// Edge is one direction of an undirected campus path. weight is in km.
type Edge struct {
	weight float64
	edgeId Index
	tail   Index
	head   Index
}

func NewEdge(edgeId, tail, head Index, weight float64) *Edge {
	return &Edge{
		edgeId: edgeId,
		tail:   tail,
		head:   head,
		weight: weight,
	}
}

func (e *Edge) GetWeight() float64 {
	return e.weight
}

func (e *Edge) GetEdgeID() Index {
	return e.edgeId
}

func (e *Edge) GetTail() Index {
	return e.tail
}

func (e *Edge) GetHead() Index {
	return e.head
}

// Graph is a bounded undirected campus graph. vertices are dense slots indexed by id, a slot stays nil
// until AddVertex targets it. every undirected connection is stored as two mirrored Edge records.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
	outEdges [][]Index // vertex id -> ids of its outgoing edges in insertion order
	maxEdges int
}

// NewGraph allocates a graph for numVertices slots. numVertices must be in [1, pkg.MAX_NODES].
func NewGraph(numVertices int) (*Graph, error) {
	if numVertices <= 0 || numVertices > pkg.MAX_NODES {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, numVertices)
	}
	maxEdges := numVertices * (numVertices - 1)
	return &Graph{
		vertices: make([]*Vertex, numVertices),
		edges:    make([]*Edge, 0, maxEdges),
		outEdges: make([][]Index, numVertices),
		maxEdges: maxEdges,
	}, nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) EdgeCapacity() int {
	return g.maxEdges
}

func (g *Graph) checkIndex(u Index) error {
	if int(u) >= len(g.vertices) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, u, len(g.vertices))
	}
	return nil
}

// AddVertex sets slot id. an existing vertex in that slot is overwritten; names are not required to be unique.
func (g *Graph) AddVertex(id Index, lat, lon float64, name string) error {
	if err := g.checkIndex(id); err != nil {
		return err
	}
	if !geo.IsValidCoordinate(lat, lon) {
		return fmt.Errorf("%w: vertex %d (%f, %f)", ErrInvalidCoordinate, id, lat, lon)
	}
	g.vertices[id] = NewVertex(lat, lon, id, name)
	return nil
}

// AddEdge connects u and v in both directions. the weight of both records is the haversine distance
// between the endpoints, computed once.
func (g *Graph) AddEdge(u, v Index) error {
	for _, id := range []Index{u, v} {
		if err := g.checkIndex(id); err != nil {
			return err
		}
		if g.vertices[id] == nil {
			return fmt.Errorf("%w: %d", ErrVertexNotSet, id)
		}
	}
	if len(g.edges)+2 > g.maxEdges {
		return fmt.Errorf("%w: capacity %d", ErrEdgeCapacityExceeded, g.maxEdges)
	}

	weight := g.GetHaversineDistanceFromUtoV(u, v)

	g.appendEdge(u, v, weight)
	g.appendEdge(v, u, weight)
	return nil
}

func (g *Graph) appendEdge(tail, head Index, weight float64) {
	edgeId := Index(len(g.edges))
	g.edges = append(g.edges, NewEdge(edgeId, tail, head, weight))
	g.outEdges[tail] = append(g.outEdges[tail], edgeId)
}

func (g *Graph) HasVertex(u Index) bool {
	return int(u) < len(g.vertices) && g.vertices[u] != nil
}

// GetVertex returns nil for an unset slot. u must be in range.
func (g *Graph) GetVertex(u Index) *Vertex {
	return g.vertices[u]
}

func (g *Graph) GetEdge(e Index) *Edge {
	return g.edges[e]
}

func (g *Graph) GetEdges() []*Edge {
	return g.edges
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.outEdges[u])
}

func (g *Graph) ForOutEdgesOfVertex(u Index, handle func(e *Edge)) {
	for _, e := range g.outEdges[u] {
		handle(g.edges[e])
	}
}

func (g *Graph) GetHaversineDistanceFromUtoV(u, v Index) float64 {
	uvertex := g.GetVertex(u)
	vvertex := g.GetVertex(v)
	return geo.HaversineDistance(uvertex.GetLat(), uvertex.GetLon(), vvertex.GetLat(), vvertex.GetLon())
}

// GetVerticeIds returns the ids of all set slots in ascending order.
func (g *Graph) GetVerticeIds() []Index {
	nodeIds := make([]Index, 0, len(g.vertices))
	for i, v := range g.vertices {
		if v != nil {
			nodeIds = append(nodeIds, Index(i))
		}
	}
	return nodeIds
}

func (g *Graph) ForEachVertices(handle func(v *Vertex, vId Index)) {
	for i, v := range g.vertices {
		if v == nil {
			continue
		}
		handle(v, Index(i))
	}
}

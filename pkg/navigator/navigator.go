package navigator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/campus-navigator/pkg"
	"github.com/lintang-b-s/campus-navigator/pkg/campusdata"
	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"github.com/lintang-b-s/campus-navigator/pkg/facility"
	"github.com/lintang-b-s/campus-navigator/pkg/geo"
	"github.com/lintang-b-s/campus-navigator/pkg/routing"
	"go.uber.org/zap"
)

// ErrInvalidQuery wraps every rejected query input, the cause is kept in the chain.
var ErrInvalidQuery = errors.New("invalid query")

type Place struct {
	ID   datastructure.Index
	Name string
}

// Route is the answer of a shortest route query. Found is false when To is unreachable from From,
// every other path field is empty in that case.
type Route struct {
	From        Place
	To          Place
	Found       bool
	Distance    float64 // km
	Vertices    []datastructure.Index
	Names       []string
	Coordinates []datastructure.Coordinate
}

// String joins the place names along the route.
func (r Route) String() string {
	return strings.Join(r.Names, pkg.ROUTE_SEPARATOR)
}

func (r Route) Polyline() string {
	return geo.PolylineFromCoords(r.Coordinates)
}

// Parking is the answer of a nearest parking query. Found is false when the campus has no parking lots.
type Parking struct {
	Name     string
	Lat      float64
	Lon      float64
	Distance float64 // km
	Found    bool
}

type Navigator struct {
	campus *campusdata.Campus
	logger *zap.Logger
}

func NewNavigator(campus *campusdata.Campus, logger *zap.Logger) *Navigator {
	return &Navigator{
		campus: campus,
		logger: logger,
	}
}

func (n *Navigator) Campus() *campusdata.Campus {
	return n.campus
}

func (n *Navigator) NumberOfPlaces() int {
	return n.campus.Graph.NumberOfVertices()
}

// Places lists the set graph slots in id order, empty slots are skipped.
func (n *Navigator) Places() []Place {
	places := make([]Place, 0, n.NumberOfPlaces())
	n.campus.Graph.ForEachVertices(func(v *datastructure.Vertex, vId datastructure.Index) {
		places = append(places, Place{ID: vId, Name: v.GetName()})
	})
	return places
}

func (n *Navigator) place(id int) (Place, error) {
	g := n.campus.Graph
	if id < 0 || id >= g.NumberOfVertices() {
		return Place{}, fmt.Errorf("%w: %w: %d not in [0, %d)", ErrInvalidQuery, datastructure.ErrIndexOutOfRange, id, g.NumberOfVertices())
	}
	if !g.HasVertex(datastructure.Index(id)) {
		return Place{}, fmt.Errorf("%w: %w: %d", ErrInvalidQuery, datastructure.ErrVertexNotSet, id)
	}
	return Place{ID: datastructure.Index(id), Name: g.GetVertex(datastructure.Index(id)).GetName()}, nil
}

// ShortestRoute validates both ids against [0, NumberOfPlaces()) before running Dijkstra from start.
func (n *Navigator) ShortestRoute(start, end int) (Route, error) {
	from, err := n.place(start)
	if err != nil {
		return Route{}, err
	}
	to, err := n.place(end)
	if err != nil {
		return Route{}, err
	}

	g := n.campus.Graph
	tree, err := routing.Dijkstra(g, from.ID)
	if err != nil {
		return Route{}, err
	}

	route := Route{From: from, To: to}
	dist, ok := tree.Distance(to.ID)
	if !ok {
		n.logger.Info("no route found", zap.String("from", from.Name), zap.String("to", to.Name))
		return route, nil
	}
	path, ok := routing.ReconstructPath(tree, to.ID)
	if !ok {
		return route, nil
	}

	route.Found = true
	route.Distance = dist
	route.Vertices = path
	for _, v := range path {
		vertex := g.GetVertex(v)
		route.Names = append(route.Names, vertex.GetName())
		route.Coordinates = append(route.Coordinates, vertex.GetCoordinate())
	}

	n.logger.Debug("route found",
		zap.String("from", from.Name),
		zap.String("to", to.Name),
		zap.Float64("distance_km", dist),
		zap.Int("hops", len(path)-1))
	return route, nil
}

// NearestParking returns the parking lot closest to (lat, lon).
func (n *Navigator) NearestParking(lat, lon float64) (Parking, error) {
	if !geo.IsValidCoordinate(lat, lon) {
		return Parking{}, fmt.Errorf("%w: %w: (%f, %f)", ErrInvalidQuery, datastructure.ErrInvalidCoordinate, lat, lon)
	}

	nearest, dist, ok := facility.FindNearest(datastructure.NewCoordinate(lat, lon), n.campus.Parking)
	if !ok {
		n.logger.Info("campus has no parking lots")
		return Parking{}, nil
	}
	return Parking{
		Name:     nearest.GetName(),
		Lat:      nearest.Lat(),
		Lon:      nearest.Lon(),
		Distance: dist,
		Found:    true,
	}, nil
}

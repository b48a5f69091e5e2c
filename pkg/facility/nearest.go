package facility

import (
	"math"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"github.com/lintang-b-s/campus-navigator/pkg/geo"
)

// Facility is a named point of interest that is not part of the routing graph, e.g. a parking lot.
type Facility struct {
	name  string
	coord datastructure.Coordinate
}

func NewFacility(name string, lat, lon float64) Facility {
	return Facility{
		name:  name,
		coord: datastructure.NewCoordinate(lat, lon),
	}
}

func (f Facility) GetName() string {
	return f.name
}

func (f Facility) GetCoordinate() datastructure.Coordinate {
	return f.coord
}

func (f Facility) Lat() float64 {
	return f.coord.Lat()
}

func (f Facility) Lon() float64 {
	return f.coord.Lon()
}

// FindNearest scans candidates in order and returns the closest one to query with its distance in km.
// the first candidate wins on exact ties. false means candidates is empty.
func FindNearest(query datastructure.Coordinate, candidates []Facility) (Facility, float64, bool) {
	nearestIndex := -1
	minDistance := math.Inf(1)

	for i, c := range candidates {
		dist := geo.HaversineDistance(query.Lat(), query.Lon(), c.Lat(), c.Lon())
		if nearestIndex == -1 || dist < minDistance {
			minDistance = dist
			nearestIndex = i
		}
	}

	if nearestIndex == -1 {
		return Facility{}, 0, false
	}
	return candidates[nearestIndex], minDistance, true
}

package geo

import (
	"github.com/twpayne/go-polyline"
)

type LatLon interface {
	Lat() float64
	Lon() float64
}

// PolylineFromCoords encodes a path with the google polyline algorithm (precision 5).
func PolylineFromCoords[T LatLon](path []T) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

// CoordsFromPolyline decodes an encoded polyline into [lat, lon] pairs.
func CoordsFromPolyline(s string) ([][]float64, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	return coords, nil
}

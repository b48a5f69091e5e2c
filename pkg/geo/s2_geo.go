package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/campus-navigator/pkg"
)

// IsValidCoordinate reports whether lat is in [-90,90] and lon in [-180,180].
func IsValidCoordinate(lat, lon float64) bool {
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}

// S2Distance is the spherical angle between two points scaled by the earth radius, in km.
// it agrees with HaversineDistance and is used to cross check it.
func S2Distance(latOne, longOne, latTwo, longTwo float64) float64 {
	angle := s2.LatLngFromDegrees(latOne, longOne).Distance(s2.LatLngFromDegrees(latTwo, longTwo))
	return angle.Radians() * pkg.EARTH_RADIUS_KM
}

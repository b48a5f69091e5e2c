package geo

import (
	"math"

	"github.com/lintang-b-s/campus-navigator/pkg"
)

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// HaversineDistance returns the great-circle distance in km between two points given in degrees.
// inputs are not validated: out of range or NaN coordinates give a meaningless result.
func HaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	dLat := degreeToRadians(latTwo - latOne)
	dLon := degreeToRadians(longTwo - longOne)

	latOne = degreeToRadians(latOne)
	latTwo = degreeToRadians(latTwo)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(latOne)*math.Cos(latTwo)*sinLon*sinLon
	c := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return pkg.EARTH_RADIUS_KM * c
}

// GetDestinationPoint returns the point reached after travelling dist km from (lat, lon) along the
// initial bearing, in degrees clockwise from north. the longitude is normalised to [-180, 180).
func GetDestinationPoint(lat, lon, bearing, dist float64) (float64, float64) {
	delta := dist / pkg.EARTH_RADIUS_KM
	theta := degreeToRadians(bearing)
	phi := degreeToRadians(lat)

	sinPhi2 := math.Sin(phi)*math.Cos(delta) + math.Cos(phi)*math.Sin(delta)*math.Cos(theta)
	dLambda := math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(phi), math.Cos(delta)-math.Sin(phi)*sinPhi2)

	return radiansToDegree(math.Asin(sinPhi2)), normalizeLongitude(lon + radiansToDegree(dLambda))
}

func normalizeLongitude(lon float64) float64 {
	return math.Mod(lon+540, 360) - 180
}

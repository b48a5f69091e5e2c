package navigator

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RouteGeoJSON exports the route as a LineString feature plus one Point feature per place on it.
// every found parking answer is appended as a Point feature with kind "parking".
// an unfound route contributes no features.
func RouteGeoJSON(r Route, parking ...Parking) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	if r.Found {
		line := make(orb.LineString, 0, len(r.Coordinates))
		for i, c := range r.Coordinates {
			pt := orb.Point{c.Lon(), c.Lat()}
			line = append(line, pt)

			place := geojson.NewFeature(pt)
			place.Properties["kind"] = "place"
			place.Properties["id"] = r.Vertices[i]
			place.Properties["name"] = r.Names[i]
			fc.Append(place)
		}

		route := geojson.NewFeature(line)
		route.Properties["kind"] = "route"
		route.Properties["from"] = r.From.Name
		route.Properties["to"] = r.To.Name
		route.Properties["distance_km"] = r.Distance
		route.Properties["polyline"] = r.Polyline()
		fc.Append(route)
	}

	for _, p := range parking {
		if !p.Found {
			continue
		}
		f := geojson.NewFeature(orb.Point{p.Lon, p.Lat})
		f.Properties["kind"] = "parking"
		f.Properties["name"] = p.Name
		f.Properties["distance_km"] = p.Distance
		fc.Append(f)
	}

	return fc.MarshalJSON()
}

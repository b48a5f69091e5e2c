package campusdata

type Format string

const (
	FORMAT_AUTO  Format = "auto"
	FORMAT_YAML  Format = "yaml"
	FORMAT_OSM   Format = "osm"
	FORMAT_PBF   Format = "pbf"
	FORMAT_GRAPH Format = "graph"
)

var (
	// https://wiki.openstreetmap.org/wiki/Key:highway
	// campus routing is on foot, so pedestrian ways are accepted besides the service roads.
	acceptedHighway = map[string]struct{}{
		"footway":       {},
		"path":          {},
		"pedestrian":    {},
		"steps":         {},
		"corridor":      {},
		"service":       {},
		"residential":   {},
		"living_street": {},
		"unclassified":  {},
		"tertiary":      {},
		"secondary":     {},
		"track":         {},
	}
)

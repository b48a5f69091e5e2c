package pkg

const (
	// MAX_NODES bounds every campus graph. edge capacity is derived from it.
	MAX_NODES = 50

	EARTH_RADIUS_KM = 6371.0

	ROUTE_SEPARATOR = " -> "
)

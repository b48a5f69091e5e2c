package navigator

import (
	"fmt"
	"io"
)

func WritePlaces(w io.Writer, places []Place) {
	for _, p := range places {
		fmt.Fprintf(w, "%d. %s\n", p.ID, p.Name)
	}
}

func WriteRoute(w io.Writer, r Route) {
	if !r.Found {
		fmt.Fprintf(w, "No path found from %s to %s.\n", r.From.Name, r.To.Name)
		return
	}
	fmt.Fprintf(w, "Shortest distance from %s to %s: %.2f km\n", r.From.Name, r.To.Name, r.Distance)
	fmt.Fprintf(w, "Shortest path: %s\n", r.String())
}

func WriteParking(w io.Writer, p Parking) {
	if !p.Found {
		fmt.Fprintln(w, "No nearby parking found.")
		return
	}
	fmt.Fprintf(w, "Nearest parking: %s (%.6f, %.6f)\n", p.Name, p.Lat, p.Lon)
	fmt.Fprintf(w, "Distance: %.2f km\n", p.Distance)
}

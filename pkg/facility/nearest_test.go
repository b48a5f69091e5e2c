package facility

import (
	"testing"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"github.com/lintang-b-s/campus-navigator/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNearestEmpty(t *testing.T) {
	_, _, ok := FindNearest(datastructure.NewCoordinate(21, 105), nil)
	assert.False(t, ok)
	_, _, ok = FindNearest(datastructure.NewCoordinate(21, 105), []Facility{})
	assert.False(t, ok)
}

func TestFindNearestSingleCandidate(t *testing.T) {
	far := NewFacility("far away", -45, -75)
	got, dist, ok := FindNearest(datastructure.NewCoordinate(21, 105), []Facility{far})
	require.True(t, ok)
	assert.Equal(t, far, got)
	assert.Equal(t, geo.HaversineDistance(21, 105, -45, -75), dist)
}

func TestFindNearest(t *testing.T) {
	candidates := []Facility{
		NewFacility("D9", 21.003996375531514, 105.84420690851762),
		NewFacility("D4-D6", 21.00592815917098, 105.84437201582207),
		NewFacility("D35", 21.004784453889897, 105.845458027659),
		NewFacility("C7", 21.005314469858547, 105.8453203972225),
	}

	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"on top of D9", 21.003996375531514, 105.84420690851762, "D9"},
		{"near C5", 21.00581311319953, 105.84414968187284, "D4-D6"},
		{"near D5", 21.004455960549485, 105.84501335316558, "D35"},
		{"near the Tran Dai Nghia gate", 21.005192129743122, 105.84530303172086, "C7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dist, ok := FindNearest(datastructure.NewCoordinate(tt.lat, tt.lon), candidates)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.GetName())
			for _, c := range candidates {
				assert.LessOrEqual(t, dist, geo.HaversineDistance(tt.lat, tt.lon, c.Lat(), c.Lon()))
			}
		})
	}
}

func TestFindNearestKnownDistances(t *testing.T) {
	query := datastructure.NewCoordinate(21.0045, 105.8440)
	at := func(name string, bearing, dist float64) Facility {
		lat, lon := geo.GetDestinationPoint(query.Lat(), query.Lon(), bearing, dist)
		return NewFacility(name, lat, lon)
	}

	candidates := []Facility{
		at("north", 0, 0.3),
		at("east", 90, 0.12),
		at("south west", 225, 0.05),
		at("west", 270, 0.2),
	}
	got, dist, ok := FindNearest(query, candidates)
	require.True(t, ok)
	assert.Equal(t, "south west", got.GetName())
	assert.InDelta(t, 0.05, dist, 1e-9)
}

func TestFindNearestTieFirstWins(t *testing.T) {
	query := datastructure.NewCoordinate(21.0045, 105.8440)
	lat, lon := geo.GetDestinationPoint(query.Lat(), query.Lon(), 45, 0.1)

	candidates := []Facility{
		NewFacility("farther", 21.0100, 105.8500),
		NewFacility("first", lat, lon),
		NewFacility("second", lat, lon),
	}
	got, dist, ok := FindNearest(query, candidates)
	require.True(t, ok)
	assert.Equal(t, "first", got.GetName())
	assert.InDelta(t, 0.1, dist, 1e-9)

	candidates = []Facility{
		NewFacility("north", 1, 0),
		NewFacility("south", -1, 0),
		NewFacility("north again", 1, 0),
	}
	got, _, ok = FindNearest(datastructure.NewCoordinate(0, 0), candidates)
	require.True(t, ok)
	assert.Equal(t, "north", got.GetName())
	assert.Equal(t, datastructure.NewCoordinate(1, 0), got.GetCoordinate())
}

package campusdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func TestDefaultDataset(t *testing.T) {
	campus, err := LoadDefault(zap.NewNop())
	require.NoError(t, err)

	g := campus.Graph
	assert.Equal(t, "HUST", campus.Name)
	assert.Equal(t, 26, g.NumberOfVertices())
	assert.Len(t, g.GetVerticeIds(), 25)
	assert.False(t, g.HasVertex(7))
	assert.Equal(t, 72, g.NumberOfEdges())
	assert.Equal(t, "Cổng Parabol", g.GetVertex(15).GetName())
	require.Len(t, campus.Parking, 4)
	assert.Equal(t, "Nhà để xe D9", campus.Parking[0].GetName())
	assert.InDelta(t, 21.0039963, campus.Parking[0].Lat(), 1e-6)
}

func TestParseYAML(t *testing.T) {
	input := `
name: tiny
num_nodes: 3
nodes:
  - {id: 0, lat: 0, lon: 0, name: A}
  - {id: 2, lat: 0, lon: 1, name: C}
edges:
  - [0, 2]
parking:
  - {name: P, lat: 0, lon: 0.5}
`
	ds, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "tiny", ds.Name)
	assert.Equal(t, 3, ds.NumNodes)
	assert.Equal(t, []Node{{ID: 0, Name: "A"}, {ID: 2, Lon: 1, Name: "C"}}, ds.Nodes)
	assert.Equal(t, [][2]uint32{{0, 2}}, ds.Edges)

	campus, err := ds.Build(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, campus.Graph.NumberOfEdges())
	assert.False(t, campus.Graph.HasVertex(1))

	var buf bytes.Buffer
	require.NoError(t, ds.EncodeYAML(&buf))
	again, err := ParseYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, ds, again)
}

func TestParseYAMLUnknownField(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("num_nodes: 2\nvertices: []\n"))
	assert.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	ds := &Dataset{
		NumNodes: 2,
		Nodes: []Node{
			{ID: 0, Lat: 0, Lon: 0, Name: "ok"},
			{ID: 2, Lat: 0, Lon: 0, Name: "out of range"},
			{ID: 1, Lat: 221.0039, Lon: 105.84, Name: "typo"},
		},
		Edges:   [][2]uint32{{0, 5}},
		Parking: []Parking{{Name: "bad", Lat: 0, Lon: 200}},
	}

	err := ds.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	assert.ErrorIs(t, err, datastructure.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, datastructure.ErrInvalidCoordinate)
	assert.ErrorIs(t, err, datastructure.ErrVertexNotSet)

	_, err = ds.Build(zap.NewNop())
	assert.Error(t, err)
}

func TestValidateCapacity(t *testing.T) {
	assert.ErrorIs(t, (&Dataset{NumNodes: 0}).Validate(), datastructure.ErrInvalidCapacity)
	assert.ErrorIs(t, (&Dataset{NumNodes: 51}).Validate(), datastructure.ErrInvalidCapacity)

	ds := &Dataset{
		NumNodes: 2,
		Nodes:    []Node{{ID: 0}, {ID: 1, Lon: 1}},
		Edges:    [][2]uint32{{0, 1}, {1, 0}},
	}
	assert.ErrorIs(t, ds.Validate(), datastructure.ErrEdgeCapacityExceeded)
}

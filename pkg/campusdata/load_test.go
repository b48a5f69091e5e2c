package campusdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"campus.yaml":          FORMAT_YAML,
		"campus.YML":           FORMAT_YAML,
		"campus.osm":           FORMAT_OSM,
		"hanoi.osm.pbf":        FORMAT_PBF,
		"campus.graph.bz2":     FORMAT_GRAPH,
		"dir/campus.graph.bz2": FORMAT_GRAPH,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := DetectFormat("campus.csv")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	dir := t.TempDir()

	builtin, err := Load(ctx, "", FORMAT_AUTO, logger)
	require.NoError(t, err)
	assert.Equal(t, "HUST", builtin.Name)

	yamlPath := filepath.Join(dir, "campus.yaml")
	require.NoError(t, os.WriteFile(yamlPath, hustYAML, 0644))
	fromYAML, err := Load(ctx, yamlPath, FORMAT_AUTO, logger)
	require.NoError(t, err)
	assert.Equal(t, builtin.Graph.GetEdges(), fromYAML.Graph.GetEdges())
	assert.Equal(t, builtin.Parking, fromYAML.Parking)

	osmPath := filepath.Join(dir, "campus.xml")
	require.NoError(t, os.WriteFile(osmPath, []byte(campusOSM), 0644))
	fromOSM, err := Load(ctx, osmPath, FORMAT_OSM, logger)
	require.NoError(t, err)
	assert.Equal(t, "campus.xml", fromOSM.Name)
	assert.Len(t, fromOSM.Parking, 2)

	graphPath := filepath.Join(dir, "campus.graph.bz2")
	require.NoError(t, builtin.Graph.WriteGraph(graphPath))
	fromGraph, err := Load(ctx, graphPath, "", logger)
	require.NoError(t, err)
	assert.Equal(t, builtin.Graph.GetEdges(), fromGraph.Graph.GetEdges())
	assert.Empty(t, fromGraph.Parking)

	_, err = Load(ctx, filepath.Join(dir, "missing.yaml"), FORMAT_AUTO, logger)
	assert.Error(t, err)
	_, err = Load(ctx, yamlPath, Format("csv"), logger)
	assert.Error(t, err)
}

package campusdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"go.uber.org/zap"
)

// DetectFormat guesses the dataset format from the file name.
func DetectFormat(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".osm.pbf"), strings.HasSuffix(lower, ".pbf"):
		return FORMAT_PBF, nil
	case strings.HasSuffix(lower, ".osm"):
		return FORMAT_OSM, nil
	case strings.HasSuffix(lower, ".graph.bz2"), strings.HasSuffix(lower, ".bz2"):
		return FORMAT_GRAPH, nil
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FORMAT_YAML, nil
	}
	return "", fmt.Errorf("cannot detect dataset format of %s", filepath.Base(path))
}

// Load reads a campus from path. an empty path loads the built-in campus. graph files carry no
// parking lots.
func Load(ctx context.Context, path string, format Format, logger *zap.Logger) (*Campus, error) {
	if path == "" {
		logger.Info("no dataset given, using the built-in campus")
		return LoadDefault(logger)
	}

	if format == "" || format == FORMAT_AUTO {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	logger.Info("loading campus dataset", zap.String("path", path), zap.String("format", string(format)))

	if format == FORMAT_GRAPH {
		g, err := datastructure.ReadGraph(path)
		if err != nil {
			return nil, fmt.Errorf("read graph %s: %w", path, err)
		}
		return &Campus{Name: filepath.Base(path), Graph: g}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ds *Dataset
	switch format {
	case FORMAT_YAML:
		ds, err = ParseYAML(f)
	case FORMAT_OSM:
		ds, err = NewOSMParser(logger).ParseXML(ctx, f)
	case FORMAT_PBF:
		ds, err = NewOSMParser(logger).ParsePBF(ctx, f)
	default:
		return nil, fmt.Errorf("unknown dataset format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if ds.Name == "" {
		ds.Name = filepath.Base(path)
	}
	return ds.Build(logger)
}

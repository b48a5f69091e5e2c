package campusdata

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/campus-navigator/pkg"
	"github.com/lintang-b-s/campus-navigator/pkg/datastructure"
	"github.com/lintang-b-s/campus-navigator/pkg/facility"
	"github.com/lintang-b-s/campus-navigator/pkg/geo"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Node struct {
	ID   uint32  `yaml:"id"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Name string  `yaml:"name"`
}

type Parking struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Dataset is the static description of a campus: graph slots, the paths between them and the
// parking lots used for nearest facility queries.
type Dataset struct {
	Name     string      `yaml:"name,omitempty"`
	NumNodes int         `yaml:"num_nodes"`
	Nodes    []Node      `yaml:"nodes"`
	Edges    [][2]uint32 `yaml:"edges"`
	Parking  []Parking   `yaml:"parking,omitempty"`
}

// Campus is a loaded dataset: the read-only graph plus the facility list.
type Campus struct {
	Name    string
	Graph   *datastructure.Graph
	Parking []facility.Facility
}

// ParseYAML decodes a dataset from YAML.
func ParseYAML(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode campus dataset: %w", err)
	}
	return &ds, nil
}

// EncodeYAML writes the dataset in the form ParseYAML reads.
func (ds *Dataset) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports every problem of the dataset at once.
func (ds *Dataset) Validate() error {
	var err error
	if ds.NumNodes <= 0 || ds.NumNodes > pkg.MAX_NODES {
		err = multierr.Append(err, fmt.Errorf("%w: num_nodes %d", datastructure.ErrInvalidCapacity, ds.NumNodes))
	}

	set := make(map[uint32]struct{}, len(ds.Nodes))
	for _, n := range ds.Nodes {
		if int(n.ID) >= ds.NumNodes {
			err = multierr.Append(err, fmt.Errorf("%w: node %d (%s)", datastructure.ErrIndexOutOfRange, n.ID, n.Name))
		}
		if !geo.IsValidCoordinate(n.Lat, n.Lon) {
			err = multierr.Append(err, fmt.Errorf("%w: node %d (%s)", datastructure.ErrInvalidCoordinate, n.ID, n.Name))
		}
		set[n.ID] = struct{}{}
	}

	for _, e := range ds.Edges {
		for _, id := range e {
			if _, ok := set[id]; !ok {
				err = multierr.Append(err, fmt.Errorf("%w: edge %d-%d references %d", datastructure.ErrVertexNotSet, e[0], e[1], id))
			}
		}
	}
	if maxEdges := ds.NumNodes * (ds.NumNodes - 1); 2*len(ds.Edges) > maxEdges && ds.NumNodes > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d edges for %d nodes", datastructure.ErrEdgeCapacityExceeded, len(ds.Edges), ds.NumNodes))
	}

	for _, p := range ds.Parking {
		if !geo.IsValidCoordinate(p.Lat, p.Lon) {
			err = multierr.Append(err, fmt.Errorf("%w: parking %s", datastructure.ErrInvalidCoordinate, p.Name))
		}
	}
	return err
}

// Build validates the dataset and constructs the campus graph in dataset order.
func (ds *Dataset) Build(logger *zap.Logger) (*Campus, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	g, err := datastructure.NewGraph(ds.NumNodes)
	if err != nil {
		return nil, err
	}
	for _, n := range ds.Nodes {
		if err := g.AddVertex(datastructure.Index(n.ID), n.Lat, n.Lon, n.Name); err != nil {
			return nil, err
		}
	}
	for _, e := range ds.Edges {
		if err := g.AddEdge(datastructure.Index(e[0]), datastructure.Index(e[1])); err != nil {
			return nil, err
		}
	}

	parking := make([]facility.Facility, 0, len(ds.Parking))
	for _, p := range ds.Parking {
		parking = append(parking, facility.NewFacility(p.Name, p.Lat, p.Lon))
	}

	logger.Info("campus graph built",
		zap.String("campus", ds.Name),
		zap.Int("slots", g.NumberOfVertices()),
		zap.Int("vertices", len(g.GetVerticeIds())),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("parking", len(parking)))

	return &Campus{
		Name:    ds.Name,
		Graph:   g,
		Parking: parking,
	}, nil
}

package campusdata

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

type osmWay struct {
	id    osm.WayID
	nodes []osm.NodeID
}

// OsmParser turns an OpenStreetMap extract of a campus into a Dataset. every node of an accepted way
// becomes a graph slot, consecutive way nodes become edges and amenity=parking features become
// parking lots.
type OsmParser struct {
	nodes        map[osm.NodeID]*osm.Node
	ways         []osmWay
	parkingWays  []*osm.Way
	parkingNodes []*osm.Node
	nodeIDMap    map[osm.NodeID]uint32
	nodeToOsmId  []osm.NodeID
	logger       *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		nodes:     make(map[osm.NodeID]*osm.Node),
		nodeIDMap: make(map[osm.NodeID]uint32),
		logger:    logger,
	}
}

// ParseXML reads an .osm XML extract.
func (p *OsmParser) ParseXML(ctx context.Context, r io.Reader) (*Dataset, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()
	return p.parse(scanner)
}

// ParsePBF reads an .osm.pbf extract.
func (p *OsmParser) ParsePBF(ctx context.Context, r io.Reader) (*Dataset, error) {
	scanner := osmpbf.New(ctx, r, 1)
	defer scanner.Close()
	return p.parse(scanner)
}

func (p *OsmParser) parse(scanner osm.Scanner) (*Dataset, error) {
	countWays := 0
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p.nodes[o.ID] = o
			if o.Tags.Find("amenity") == "parking" {
				p.parkingNodes = append(p.parkingNodes, o)
			}
		case *osm.Way:
			if o.Tags.Find("amenity") == "parking" {
				p.parkingWays = append(p.parkingWays, o)
				continue
			}
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			countWays++
			p.ways = append(p.ways, osmWay{id: o.ID, nodes: o.Nodes.NodeIDs()})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan openstreetmap data: %w", err)
	}
	p.logger.Sugar().Infof("scanned openstreetmap data: %d nodes, %d accepted ways", len(p.nodes), countWays)

	return p.buildDataset()
}

func (p *OsmParser) buildDataset() (*Dataset, error) {
	ds := &Dataset{}
	type pair struct{ u, v uint32 }
	edgeSet := make(map[pair]struct{})

	for _, way := range p.ways {
		var prev uint32
		for i, nodeID := range way.nodes {
			node, ok := p.nodes[nodeID]
			if !ok {
				return nil, fmt.Errorf("way %d references missing node %d", way.id, nodeID)
			}
			id := p.vertexID(node, ds)
			if i > 0 && prev != id {
				key := pair{min(prev, id), max(prev, id)}
				if _, dup := edgeSet[key]; !dup {
					edgeSet[key] = struct{}{}
					ds.Edges = append(ds.Edges, [2]uint32{prev, id})
				}
			}
			prev = id
		}
	}
	ds.NumNodes = len(p.nodeToOsmId)

	for _, node := range p.parkingNodes {
		ds.Parking = append(ds.Parking, Parking{Name: featureName(node.Tags, fmt.Sprintf("parking %d", node.ID)), Lat: node.Lat, Lon: node.Lon})
	}
	for _, way := range p.parkingWays {
		lat, lon, ok := p.wayCenter(way)
		if !ok {
			p.logger.Warn("skipping parking way without resolvable nodes", zap.Int64("way", int64(way.ID)))
			continue
		}
		ds.Parking = append(ds.Parking, Parking{Name: featureName(way.Tags, fmt.Sprintf("parking %d", way.ID)), Lat: lat, Lon: lon})
	}

	return ds, nil
}

func (p *OsmParser) vertexID(node *osm.Node, ds *Dataset) uint32 {
	if id, ok := p.nodeIDMap[node.ID]; ok {
		return id
	}
	id := uint32(len(p.nodeToOsmId))
	p.nodeIDMap[node.ID] = id
	p.nodeToOsmId = append(p.nodeToOsmId, node.ID)
	ds.Nodes = append(ds.Nodes, Node{
		ID:   id,
		Lat:  node.Lat,
		Lon:  node.Lon,
		Name: featureName(node.Tags, fmt.Sprintf("node %d", node.ID)),
	})
	return id
}

// GetOsmID maps a dataset node id back to the openstreetmap node id.
func (p *OsmParser) GetOsmID(id uint32) (osm.NodeID, bool) {
	if int(id) >= len(p.nodeToOsmId) {
		return 0, false
	}
	return p.nodeToOsmId[id], true
}

// wayCenter averages the coordinates of a closed way, the closing node is counted once.
func (p *OsmParser) wayCenter(way *osm.Way) (float64, float64, bool) {
	nodeIDs := way.Nodes.NodeIDs()
	if len(nodeIDs) > 1 && nodeIDs[0] == nodeIDs[len(nodeIDs)-1] {
		nodeIDs = nodeIDs[:len(nodeIDs)-1]
	}
	var lat, lon float64
	count := 0
	for _, id := range nodeIDs {
		node, ok := p.nodes[id]
		if !ok {
			continue
		}
		lat += node.Lat
		lon += node.Lon
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return lat / float64(count), lon / float64(count), true
}

func featureName(tags osm.Tags, fallback string) string {
	if name := tags.Find("name"); name != "" {
		return name
	}
	if ref := tags.Find("ref"); ref != "" {
		return ref
	}
	return fallback
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	if _, ok := acceptedHighway[highway]; !ok {
		return false
	}
	return way.Tags.Find("access") != "no"
}

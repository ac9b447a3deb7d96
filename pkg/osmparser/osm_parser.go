package osmparser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("osmparser: unsupported map file format")

// RoadNetwork is a road graph turned Max-Cut instance: vertices are way nodes, edges join
// consecutive nodes of accepted ways and weigh their distance in metres.
type RoadNetwork struct {
	Graph       *datastructure.Graph
	Coordinates []datastructure.Coordinate
	OsmIDs      []int64
}

type OsmParser struct {
	// wayNodes restricts which node coordinates are kept; nil keeps every node
	wayNodes    map[int64]struct{}
	coords      map[int64]datastructure.Coordinate
	nodeIDMap   map[int64]datastructure.Index
	nodeToOsmID []int64
	edgeSet     map[[2]datastructure.Index]struct{}
	edges       []datastructure.Edge
	skipped     int
	logger      *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OsmParser{
		coords:    make(map[int64]datastructure.Coordinate),
		nodeIDMap: make(map[int64]datastructure.Index),
		edgeSet:   make(map[[2]datastructure.Index]struct{}),
		logger:    logger,
	}
}

// Parse reads nodes and ways from scanner, which must deliver nodes before the ways that use
// them (the order of .osm and .pbf files). Vertex ids are assigned in the order nodes first
// appear in accepted ways. Repeated node pairs produce one edge, and pairs with a node of
// unknown position are skipped.
func (p *OsmParser) Parse(scanner osm.Scanner) (RoadNetwork, error) {
	countWays := 0
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			if p.wayNodes != nil {
				if _, ok := p.wayNodes[int64(o.ID)]; !ok {
					continue
				}
			}
			p.coords[int64(o.ID)] = datastructure.NewCoordinate(o.Lat, o.Lon)
		case *osm.Way:
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			if (countWays+1)%LOG_EVERY == 0 {
				p.logger.Sugar().Infof("processing openstreetmap ways: %d...", countWays+1)
			}
			countWays++
			p.processWay(o)
		}
	}
	if err := scanner.Err(); err != nil {
		return RoadNetwork{}, fmt.Errorf("osmparser: scan: %w", err)
	}

	return p.buildNetwork()
}

// ParseFile reads a .osm or .osm.pbf file in two passes: the first collects the nodes used by
// accepted ways so the second keeps only their coordinates.
func (p *OsmParser) ParseFile(ctx context.Context, mapFile string) (RoadNetwork, error) {
	open := func() (*os.File, osm.Scanner, error) {
		f, err := os.Open(mapFile)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case strings.HasSuffix(mapFile, ".pbf"):
			return f, osmpbf.New(ctx, f, 1), nil
		case strings.HasSuffix(mapFile, ".osm"):
			return f, osmxml.New(ctx, f), nil
		}
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mapFile)
	}

	f, scanner, err := open()
	if err != nil {
		return RoadNetwork{}, err
	}
	wayNodes := make(map[int64]struct{})
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		for _, n := range way.Nodes {
			wayNodes[int64(n.ID)] = struct{}{}
		}
	}
	err = scanner.Err()
	scanner.Close()
	f.Close()
	if err != nil {
		return RoadNetwork{}, fmt.Errorf("osmparser: scan %s: %w", mapFile, err)
	}
	p.logger.Sugar().Infof("%s: %d way nodes", mapFile, len(wayNodes))

	f, scanner, err = open()
	if err != nil {
		return RoadNetwork{}, err
	}
	defer f.Close()
	defer scanner.Close()

	p.wayNodes = wayNodes
	return p.Parse(scanner)
}

func (p *OsmParser) vertex(osmID int64) datastructure.Index {
	if id, ok := p.nodeIDMap[osmID]; ok {
		return id
	}
	id := datastructure.Index(len(p.nodeToOsmID))
	p.nodeIDMap[osmID] = id
	p.nodeToOsmID = append(p.nodeToOsmID, osmID)
	return id
}

func (p *OsmParser) processWay(way *osm.Way) {
	for i := 0; i+1 < len(way.Nodes); i++ {
		a, b := int64(way.Nodes[i].ID), int64(way.Nodes[i+1].ID)
		if a == b {
			continue
		}
		ca, okA := p.coords[a]
		cb, okB := p.coords[b]
		if !okA || !okB {
			p.skipped++
			continue
		}

		u, v := p.vertex(a), p.vertex(b)
		key := [2]datastructure.Index{min(u, v), max(u, v)}
		if _, ok := p.edgeSet[key]; ok {
			continue
		}
		p.edgeSet[key] = struct{}{}
		p.edges = append(p.edges, datastructure.NewEdge(u, v, geo.EdgeWeightMeters(ca, cb)))
	}
}

func (p *OsmParser) buildNetwork() (RoadNetwork, error) {
	if p.skipped > 0 {
		p.logger.Sugar().Warnf("skipped %d way segments with unknown node positions", p.skipped)
	}
	g, err := datastructure.NewGraphFromEdges(len(p.nodeToOsmID), p.edges)
	if err != nil {
		return RoadNetwork{}, err
	}

	coords := make([]datastructure.Coordinate, len(p.nodeToOsmID))
	for i, osmID := range p.nodeToOsmID {
		coords[i] = p.coords[osmID]
	}
	osmIDs := make([]int64, len(p.nodeToOsmID))
	copy(osmIDs, p.nodeToOsmID)

	p.logger.Sugar().Infof("road network: %d vertices, %d edges", g.NumberOfVertices(), g.NumberOfEdges())
	return RoadNetwork{Graph: g, Coordinates: coords, OsmIDs: osmIDs}, nil
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}

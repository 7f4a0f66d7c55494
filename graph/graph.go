// Package graph models an ontology network as point masses and springs.
//
// Entities ("things") become nodes with a position and velocity, and
// relationships ("connections") become weighted edges between them. The
// package only builds and holds the model; simulation advances it and
// netsvg renders it.
package graph

import (
	"math/rand"
	"time"

	"oss.ontoplane.com/netgraph/lib/geo"
)

const (
	// DEFAULT_RADIUS is the visual radius of every node. The boundary
	// clamp keeps node centers at least this far from each canvas edge.
	DEFAULT_RADIUS = 20.

	// INITIAL_SCATTER bounds the random offset from the canvas center
	// used for initial node placement, per axis.
	INITIAL_SCATTER = 100.

	// DEFAULT_STRENGTH is used for relationships that don't specify one.
	DEFAULT_STRENGTH = 0.5
)

// Entity is one "thing" of the source ontology.
type Entity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Relationship is a weighted connection between two entities. Strength
// is normalized to [0, 1] and scales both the spring force and the
// rendered line opacity.
type Relationship struct {
	SourceID string   `json:"source"`
	TargetID string   `json:"target"`
	Strength *float64 `json:"strength,omitempty"`
}

type Node struct {
	ID     string
	Entity Entity

	Pos    *geo.Point
	VX, VY float64
	Radius float64
}

func (n *Node) Center() *geo.Point {
	return n.Pos
}

// Contains reports whether p falls within the node's visual radius.
func (n *Node) Contains(p *geo.Point) bool {
	return n.Pos.DistanceTo(p) <= n.Radius
}

// Edge references its endpoints by node index so the node arena stays
// the single owner of node state.
type Edge struct {
	Src int
	Dst int

	Strength float64
	Rel      Relationship
}

type Graph struct {
	Nodes []*Node
	Edges []*Edge

	Canvas *geo.Box

	// Dropped counts relationships excluded because an endpoint did not
	// resolve to a known entity. Dropping never raises an error; the
	// count exists for diagnostics only.
	Dropped int

	byID map[string]int
}

func (g *Graph) NodeIndex(id string) (int, bool) {
	i, ok := g.byID[id]
	return i, ok
}

func (g *Graph) NodeByID(id string) *Node {
	if i, ok := g.byID[id]; ok {
		return g.Nodes[i]
	}
	return nil
}

type BuildOptions struct {
	// Rand seeds initial node placement. Nil uses a time-seeded source,
	// so layouts differ across runs unless the caller pins a seed.
	Rand *rand.Rand

	// Radius overrides DEFAULT_RADIUS when positive.
	Radius float64
}

// Build converts entities and relationships into a simulatable graph.
// Entities with duplicate ids collapse into one node (node identity is
// keyed by id). Relationships referencing unknown entities produce no
// edge and increment Dropped. Build never fails: malformed input
// degrades to fewer nodes and edges.
func Build(entities []Entity, relationships []Relationship, canvas *geo.Box, opts *BuildOptions) *Graph {
	if opts == nil {
		opts = &BuildOptions{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	radius := opts.Radius
	if radius <= 0 {
		radius = DEFAULT_RADIUS
	}

	g := &Graph{
		Canvas: canvas,
		byID:   make(map[string]int, len(entities)),
	}

	center := canvas.Center()
	for _, e := range entities {
		if _, ok := g.byID[e.ID]; ok {
			continue
		}
		n := &Node{
			ID:     e.ID,
			Entity: e,
			Pos: geo.NewPoint(
				center.X+(rng.Float64()*2-1)*INITIAL_SCATTER,
				center.Y+(rng.Float64()*2-1)*INITIAL_SCATTER,
			),
			Radius: radius,
		}
		g.byID[e.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, n)
	}

	for _, rel := range relationships {
		src, ok := g.byID[rel.SourceID]
		if !ok {
			g.Dropped++
			continue
		}
		dst, ok := g.byID[rel.TargetID]
		if !ok {
			g.Dropped++
			continue
		}

		strength := DEFAULT_STRENGTH
		if rel.Strength != nil {
			strength = geo.Clamp(*rel.Strength, 0, 1)
		}
		g.Edges = append(g.Edges, &Edge{
			Src:      src,
			Dst:      dst,
			Strength: strength,
			Rel:      rel,
		})
	}

	return g
}

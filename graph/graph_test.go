package graph_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/xrand"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/geo"
)

func strengthOf(v float64) *float64 {
	return &v
}

func TestBuild(t *testing.T) {
	entities := []graph.Entity{
		{ID: "a", Name: "Alpha", Category: "person"},
		{ID: "b", Name: "Beta", Category: "place"},
		{ID: "c", Name: "Gamma"},
	}
	relationships := []graph.Relationship{
		{SourceID: "a", TargetID: "b", Strength: strengthOf(0.8)},
		{SourceID: "b", TargetID: "c"},
	}

	canvas := geo.NewBox(geo.NewPoint(0, 0), 800, 600)
	g := graph.Build(entities, relationships, canvas, nil)

	assert.Equal(t, 3, len(g.Nodes))
	assert.Equal(t, 2, len(g.Edges))
	assert.Equal(t, 0, g.Dropped)

	assert.Equal(t, 0.8, g.Edges[0].Strength)
	// Missing strength falls back to the default.
	assert.Equal(t, graph.DEFAULT_STRENGTH, g.Edges[1].Strength)

	i, ok := g.NodeIndex("b")
	assert.True(t, ok)
	assert.Equal(t, g.Nodes[i], g.NodeByID("b"))
	assert.Nil(t, g.NodeByID("nope"))
}

func TestBuildInitialPlacement(t *testing.T) {
	var entities []graph.Entity
	for i := 0; i < 50; i++ {
		entities = append(entities, graph.Entity{
			ID:   fmt.Sprintf("n%d", i),
			Name: xrand.String(8, nil),
		})
	}

	canvas := geo.NewBox(geo.NewPoint(0, 0), 800, 600)
	g := graph.Build(entities, nil, canvas, nil)

	center := canvas.Center()
	for _, n := range g.Nodes {
		if math.Abs(n.Pos.X-center.X) > graph.INITIAL_SCATTER {
			t.Fatalf("node %q placed at x=%v, more than %v from center", n.ID, n.Pos.X, graph.INITIAL_SCATTER)
		}
		if math.Abs(n.Pos.Y-center.Y) > graph.INITIAL_SCATTER {
			t.Fatalf("node %q placed at y=%v, more than %v from center", n.ID, n.Pos.Y, graph.INITIAL_SCATTER)
		}
	}
}

func TestBuildSeededPlacementIsDeterministic(t *testing.T) {
	entities := []graph.Entity{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	canvas := geo.NewBox(geo.NewPoint(0, 0), 800, 600)

	g1 := graph.Build(entities, nil, canvas, &graph.BuildOptions{Rand: rand.New(rand.NewSource(42))})
	g2 := graph.Build(entities, nil, canvas, &graph.BuildOptions{Rand: rand.New(rand.NewSource(42))})

	for i := range g1.Nodes {
		assert.True(t, g1.Nodes[i].Pos.Equals(g2.Nodes[i].Pos))
	}
}

func TestBuildCollapsesDuplicateIDs(t *testing.T) {
	entities := []graph.Entity{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
		{ID: "b"},
	}
	relationships := []graph.Relationship{
		{SourceID: "a", TargetID: "b"},
	}

	g := graph.Build(entities, relationships, geo.NewBox(geo.NewPoint(0, 0), 800, 600), nil)

	assert.Equal(t, 2, len(g.Nodes))
	// First occurrence wins.
	assert.Equal(t, "first", g.NodeByID("a").Entity.Name)
	assert.Equal(t, 1, len(g.Edges))
}

func TestBuildDropsUnresolvableRelationships(t *testing.T) {
	entities := []graph.Entity{{ID: "a"}, {ID: "b"}}
	relationships := []graph.Relationship{
		{SourceID: "a", TargetID: "b"},
		{SourceID: "a", TargetID: "ghost"},
		{SourceID: "ghost", TargetID: "b"},
		{SourceID: "ghost", TargetID: "phantom"},
	}

	g := graph.Build(entities, relationships, geo.NewBox(geo.NewPoint(0, 0), 800, 600), nil)

	assert.Equal(t, 1, len(g.Edges))
	assert.Equal(t, 3, g.Dropped)
}

func TestBuildClampsStrength(t *testing.T) {
	entities := []graph.Entity{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	relationships := []graph.Relationship{
		{SourceID: "a", TargetID: "b", Strength: strengthOf(7)},
		{SourceID: "b", TargetID: "c", Strength: strengthOf(-1)},
	}

	g := graph.Build(entities, relationships, geo.NewBox(geo.NewPoint(0, 0), 800, 600), nil)

	assert.Equal(t, 1.0, g.Edges[0].Strength)
	assert.Equal(t, 0.0, g.Edges[1].Strength)
}

func TestDecodeDocument(t *testing.T) {
	input := []byte(`{
  "things": [
    {"id": "ada", "name": "Ada Lovelace", "category": "person"},
    {"id": "analytical-engine", "name": "Analytical Engine", "category": "machine"}
  ],
  "connections": [
    {"source": "ada", "target": "analytical-engine", "strength": 0.9}
  ]
}`)

	doc, err := graph.DecodeDocument(input)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(doc.Things))
	assert.Equal(t, 1, len(doc.Connections))
	assert.Equal(t, "ada", doc.Connections[0].SourceID)
	assert.Equal(t, 0.9, *doc.Connections[0].Strength)

	_, err = graph.DecodeDocument([]byte("{"))
	assert.NotNil(t, err)
}

func TestSnapshot(t *testing.T) {
	entities := []graph.Entity{{ID: "a"}, {ID: "b"}}
	relationships := []graph.Relationship{
		{SourceID: "a", TargetID: "missing"},
	}
	g := graph.Build(entities, relationships, geo.NewBox(geo.NewPoint(0, 0), 640, 480), nil)

	s := g.Snapshot()
	assert.Equal(t, 640., s.Width)
	assert.Equal(t, 480., s.Height)
	assert.Equal(t, 1, s.Dropped)
	assert.Equal(t, 2, len(s.Positions))
	assert.True(t, s.Positions["a"].Equals(g.NodeByID("a").Pos))

	// Snapshot positions are copies, not aliases into the live graph.
	s.Positions["a"].X += 10
	assert.False(t, s.Positions["a"].Equals(g.NodeByID("a").Pos))

	b, err := s.Encode()
	assert.Nil(t, err)
	assert.Contains(t, string(b), `"droppedConnections": 1`)
}

package netgraph_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.ontoplane.com/netgraph"
	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/log"
)

const testDoc = `{
  "things": [
    {"id": "ada", "name": "Ada Lovelace", "category": "person"},
    {"id": "babbage", "name": "Charles Babbage", "category": "person"},
    {"id": "engine", "name": "Analytical Engine", "category": "machine"}
  ],
  "connections": [
    {"source": "ada", "target": "engine", "strength": 0.9},
    {"source": "babbage", "target": "engine"},
    {"source": "ada", "target": "babbage", "strength": 0.3}
  ]
}`

func TestCompile(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)

	svg, err := netgraph.Compile(ctx, []byte(testDoc), nil)
	assert.Nil(t, err)

	s := string(svg)
	assert.True(t, strings.HasPrefix(s, "<svg"))
	assert.Equal(t, 3, strings.Count(s, "<circle"))
	assert.Equal(t, 3, strings.Count(s, "<line"))
	assert.Contains(t, s, "Ada Lovelace")
}

func TestCompileBadInput(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)

	_, err := netgraph.Compile(ctx, []byte("not json"), nil)
	assert.NotNil(t, err)
}

func TestLayoutDeterministicWithSeed(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)

	doc, err := graph.DecodeDocument([]byte(testDoc))
	assert.Nil(t, err)

	layout := func() *graph.Graph {
		g, err := netgraph.Layout(ctx, doc, &netgraph.CompileOptions{
			Rand:  rand.New(rand.NewSource(7)),
			Steps: 100,
		})
		assert.Nil(t, err)
		return g
	}

	g1 := layout()
	g2 := layout()
	for i := range g1.Nodes {
		assert.True(t, g1.Nodes[i].Pos.Equals(g2.Nodes[i].Pos))
	}
}

func TestLayoutCancelled(t *testing.T) {
	doc, err := graph.DecodeDocument([]byte(testDoc))
	assert.Nil(t, err)

	ctx, cancel := context.WithCancel(log.WithTB(context.Background(), t))
	cancel()
	_, err = netgraph.Layout(ctx, doc, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

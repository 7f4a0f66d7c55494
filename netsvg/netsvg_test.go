package netsvg_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/diff"
	"oss.ontoplane.com/netgraph/lib/env"
	"oss.ontoplane.com/netgraph/lib/geo"
	"oss.ontoplane.com/netgraph/netsvg"
	"oss.ontoplane.com/netgraph/viewport"
)

// fixture builds a two node graph with hand-placed integer positions so
// the serialized output is stable.
func fixture(t *testing.T) *graph.Graph {
	t.Helper()
	entities := []graph.Entity{
		{ID: "ada", Name: "Ada Lovelace"},
		{ID: "engine", Name: "Analytical Engine"},
	}
	relationships := []graph.Relationship{
		{SourceID: "ada", TargetID: "engine"},
	}
	g := graph.Build(entities, relationships, geo.NewBox(geo.NewPoint(0, 0), 800, 600), nil)
	g.Nodes[0].Pos = geo.NewPoint(200, 300)
	g.Nodes[1].Pos = geo.NewPoint(500, 300)
	return g
}

func TestRender(t *testing.T) {
	if env.SkipGoldenTests() {
		t.Skip("$SKIP_GOLDEN_TESTS set")
	}
	got, err := netsvg.Render(fixture(t), nil, nil)
	assert.Nil(t, err)

	err = diff.Testdata(filepath.Join("testdata", t.Name()), ".svg", got)
	assert.Nil(t, err)
}

func TestRenderTransformed(t *testing.T) {
	if env.SkipGoldenTests() {
		t.Skip("$SKIP_GOLDEN_TESTS set")
	}
	vp := viewport.New()
	vp.SetScale(1.5)
	vp.PanBy(30, -10)

	got, err := netsvg.Render(fixture(t), vp, &netsvg.RenderOpts{NoLabels: true})
	assert.Nil(t, err)

	err = diff.Testdata(filepath.Join("testdata", t.Name()), ".svg", got)
	assert.Nil(t, err)
}

func TestRenderEscapesLabels(t *testing.T) {
	g := fixture(t)
	g.Nodes[0].Entity.Name = `<script>&"`

	got, err := netsvg.Render(g, nil, nil)
	assert.Nil(t, err)

	s := string(got)
	assert.NotContains(t, s, "<script>")
	assert.Contains(t, s, "&lt;script&gt;&amp;&#34;")
}

func TestRenderSelected(t *testing.T) {
	g := fixture(t)

	got, err := netsvg.Render(g, nil, &netsvg.RenderOpts{Selected: "ada"})
	assert.Nil(t, err)

	// One circle per node plus the highlight ring.
	assert.Equal(t, 3, strings.Count(string(got), "<circle"))

	got, err = netsvg.Render(g, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, strings.Count(string(got), "<circle"))
}

func TestRenderEdgeOpacityTracksStrength(t *testing.T) {
	g := fixture(t)
	g.Edges[0].Strength = 0.9

	got, err := netsvg.Render(g, nil, nil)
	assert.Nil(t, err)
	assert.Contains(t, string(got), `stroke-opacity="0.9"`)
}

// Package netgraph lays out ontology networks with a force-directed
// simulation and renders them to SVG.
//
// The subpackages expose each stage separately: graph builds the model,
// simulation settles it, viewport and interaction drive an interactive
// view of it, and netsvg serializes it. This package ties the common
// path together for callers that just want a picture.
package netgraph

import (
	"context"
	"math/rand"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/geo"
	"oss.ontoplane.com/netgraph/netsvg"
	"oss.ontoplane.com/netgraph/simulation"
	"oss.ontoplane.com/netgraph/viewport"
)

const DEFAULT_STEPS = 300

type CompileOptions struct {
	// Width and Height set the canvas size. Zero values default to
	// 800x600.
	Width  float64
	Height float64

	// Steps is how many simulation steps to run. Zero means
	// DEFAULT_STEPS.
	Steps int

	// Rand seeds initial node placement. Nil uses a time-based seed.
	Rand *rand.Rand

	// SimConfig overrides the default force constants.
	SimConfig *simulation.Config

	RenderOpts *netsvg.RenderOpts
}

// Compile decodes a network document, settles its layout and renders it
// to SVG.
func Compile(ctx context.Context, input []byte, opts *CompileOptions) ([]byte, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}

	doc, err := graph.DecodeDocument(input)
	if err != nil {
		return nil, err
	}

	g, err := Layout(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	return netsvg.Render(g, viewport.New(), opts.RenderOpts)
}

// Layout builds the graph for doc and runs the simulation to
// completion.
func Layout(ctx context.Context, doc *graph.Document, opts *CompileOptions) (*graph.Graph, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}
	width := opts.Width
	if width <= 0 {
		width = 800
	}
	height := opts.Height
	if height <= 0 {
		height = 600
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = DEFAULT_STEPS
	}

	canvas := geo.NewBox(geo.NewPoint(0, 0), width, height)
	g := graph.Build(doc.Things, doc.Connections, canvas, &graph.BuildOptions{
		Rand: opts.Rand,
	})

	sim := simulation.New(g, opts.SimConfig)
	err := sim.Run(ctx, steps)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// netsvg implements an SVG renderer for laid-out ontology networks.
// The input is the graph package's model plus a viewport transform.
package netsvg

import (
	"bytes"
	"fmt"
	"html"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/color"
	"oss.ontoplane.com/netgraph/viewport"
)

const (
	LABEL_FONT_SIZE = 12
	LABEL_OFFSET    = 6

	SELECT_RING_PAD   = 4
	SELECT_RING_WIDTH = 2
)

type RenderOpts struct {
	// Background fills the canvas. Defaults to color.Background.
	Background string

	// Selected draws a highlight ring around the node with this entity
	// id, if present.
	Selected string

	// NoLabels skips node name labels.
	NoLabels bool
}

// Render serializes the graph's current positions to SVG. The viewport
// transform is applied to rendered geometry only; vp may be nil for the
// identity transform.
func Render(g *graph.Graph, vp *viewport.Viewport, opts *RenderOpts) ([]byte, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	if vp == nil {
		vp = viewport.New()
	}
	bg := opts.Background
	if bg == "" {
		bg = color.Background
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v" viewBox="0 0 %v %v">`,
		g.Canvas.Width, g.Canvas.Height, g.Canvas.Width, g.Canvas.Height)
	buf.WriteByte('\n')
	fmt.Fprintf(buf, `<rect width="%v" height="%v" fill="%s" />`, g.Canvas.Width, g.Canvas.Height, bg)
	buf.WriteByte('\n')
	fmt.Fprintf(buf, `<g transform="translate(%v %v) scale(%v)">`, vp.Pan[0], vp.Pan[1], vp.Scale)
	buf.WriteByte('\n')

	// Edges first so nodes draw on top.
	for _, e := range g.Edges {
		src := g.Nodes[e.Src]
		dst := g.Nodes[e.Dst]
		fmt.Fprintf(buf, `<line x1="%v" y1="%v" x2="%v" y2="%v" stroke="%s" stroke-opacity="%v" />`,
			src.Pos.X, src.Pos.Y, dst.Pos.X, dst.Pos.Y, color.EdgeStroke, e.Strength)
		buf.WriteByte('\n')
	}

	for _, n := range g.Nodes {
		fill := color.ForCategory(n.Entity.Category)
		if opts.Selected == n.ID {
			ring, err := color.Darken(fill)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(buf, `<circle cx="%v" cy="%v" r="%v" fill="none" stroke="%s" stroke-width="%v" />`,
				n.Pos.X, n.Pos.Y, n.Radius+SELECT_RING_PAD, ring, SELECT_RING_WIDTH)
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, `<circle cx="%v" cy="%v" r="%v" fill="%s" />`,
			n.Pos.X, n.Pos.Y, n.Radius, fill)
		buf.WriteByte('\n')
		if !opts.NoLabels && n.Entity.Name != "" {
			fmt.Fprintf(buf, `<text x="%v" y="%v" font-size="%v" font-family="sans-serif" fill="%s">%s</text>`,
				n.Pos.X+n.Radius+LABEL_OFFSET, n.Pos.Y+LABEL_FONT_SIZE/2, LABEL_FONT_SIZE, color.Label, html.EscapeString(n.Entity.Name))
			buf.WriteByte('\n')
		}
	}

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes(), nil
}

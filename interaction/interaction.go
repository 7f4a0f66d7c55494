// Package interaction translates pointer events into simulation and
// viewport updates: hover hit-testing, node dragging (which pins the
// node for the duration of the drag) and click-vs-drag selection.
package interaction

import (
	"oss.ontoplane.com/netgraph/lib/geo"
	"oss.ontoplane.com/netgraph/simulation"
	"oss.ontoplane.com/netgraph/viewport"
)

// DRAG_THRESHOLD is how far (in screen pixels) the pointer must travel
// after press before the gesture stops counting as a click.
const DRAG_THRESHOLD = 3.

type Callbacks struct {
	// OnSelect fires on press+release over a node with no intervening
	// drag, carrying the node's source entity id.
	OnSelect func(entityID string)
	// OnHover fires when the hovered node changes; empty id means the
	// pointer left all nodes.
	OnHover func(entityID string)
}

type Controller struct {
	sim *simulation.Simulation
	vp  *viewport.Viewport
	cb  Callbacks

	down    bool
	panning bool
	moved   bool
	downAt  *geo.Point
	last    *geo.Point
	hovered string
}

func NewController(sim *simulation.Simulation, vp *viewport.Viewport, cb Callbacks) *Controller {
	return &Controller{
		sim: sim,
		vp:  vp,
		cb:  cb,
	}
}

// HitTest returns the index of the node under the given screen
// coordinates, or -1. When node radii overlap, the first match in
// insertion order wins; the order is documented, not load-bearing.
func (c *Controller) HitTest(screenX, screenY float64) int {
	world := c.vp.ToWorld(geo.NewPoint(screenX, screenY))
	for i, n := range c.sim.Graph().Nodes {
		if n.Contains(world) {
			return i
		}
	}
	return -1
}

// Hovered returns the entity id of the node currently under the
// pointer, or "".
func (c *Controller) Hovered() string {
	return c.hovered
}

// Dragging reports whether a node drag is in progress.
func (c *Controller) Dragging() bool {
	return c.down && c.sim.Pinned() >= 0 && c.moved
}

func (c *Controller) PointerDown(screenX, screenY float64) {
	c.down = true
	c.moved = false
	c.downAt = geo.NewPoint(screenX, screenY)
	c.last = c.downAt.Copy()

	if i := c.HitTest(screenX, screenY); i >= 0 {
		c.sim.Pin(i)
	} else {
		c.panning = true
	}
}

func (c *Controller) PointerMove(screenX, screenY float64) {
	p := geo.NewPoint(screenX, screenY)
	c.updateHover(p)

	if !c.down {
		c.last = p
		return
	}

	if !c.moved && c.downAt.DistanceTo(p) > DRAG_THRESHOLD {
		c.moved = true
	}

	if c.sim.Pinned() >= 0 {
		c.sim.MovePinned(c.vp.ToWorld(p))
	} else if c.panning {
		c.vp.PanBy(p.X-c.last.X, p.Y-c.last.Y)
	}
	c.last = p
}

func (c *Controller) PointerUp() {
	if i := c.sim.Pinned(); i >= 0 && !c.moved {
		if c.cb.OnSelect != nil {
			c.cb.OnSelect(c.sim.Graph().Nodes[i].ID)
		}
	}
	c.sim.Unpin()
	c.down = false
	c.panning = false
	c.moved = false
}

func (c *Controller) updateHover(screen *geo.Point) {
	id := ""
	if i := c.HitTest(screen.X, screen.Y); i >= 0 {
		id = c.sim.Graph().Nodes[i].ID
	}
	if id != c.hovered {
		c.hovered = id
		if c.cb.OnHover != nil {
			c.cb.OnHover(id)
		}
	}
}

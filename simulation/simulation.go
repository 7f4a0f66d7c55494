// Package simulation advances a graph one force step at a time.
//
// Each step applies damping, a centering pull, inverse-square pairwise
// repulsion and Hooke springs along edges, then integrates velocity into
// position and clamps to the canvas. The step is a unit step: it is not
// time-delta-corrected and is designed to be driven at frame rate by a
// caller-owned loop.
package simulation

import (
	"context"
	"time"

	"oss.ontoplane.com/netgraph/graph"
	"oss.ontoplane.com/netgraph/lib/geo"
)

type Config struct {
	Damping        float64
	Centering      float64
	Repulsion      float64
	Cutoff         float64
	SpringLength   float64
	SpringConstant float64
}

func DefaultConfig() Config {
	return Config{
		Damping:        DAMPING,
		Centering:      CENTERING_FORCE,
		Repulsion:      REPULSION_FORCE,
		Cutoff:         REPULSION_CUTOFF,
		SpringLength:   SPRING_LENGTH,
		SpringConstant: SPRING_CONSTANT,
	}
}

type Simulation struct {
	g   *graph.Graph
	cfg Config

	// index of the pinned (dragged) node, or -1. A pinned node's
	// position is driven externally; it still exerts forces on others.
	pinned int
}

func New(g *graph.Graph, cfg *Config) *Simulation {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &Simulation{
		g:      g,
		cfg:    c,
		pinned: -1,
	}
}

func (s *Simulation) Graph() *graph.Graph {
	return s.g
}

// Pin marks the node at index i as externally driven. Only one node can
// be pinned at a time; pinning replaces any previous pin.
func (s *Simulation) Pin(i int) {
	if i < 0 || i >= len(s.g.Nodes) {
		return
	}
	s.pinned = i
	n := s.g.Nodes[i]
	n.VX = 0
	n.VY = 0
}

func (s *Simulation) Unpin() {
	s.pinned = -1
}

// Pinned returns the pinned node index, or -1.
func (s *Simulation) Pinned() int {
	return s.pinned
}

// MovePinned places the pinned node at p, clamped to the canvas, and
// zeroes its velocity so it doesn't fly off on release.
func (s *Simulation) MovePinned(p *geo.Point) {
	if s.pinned < 0 {
		return
	}
	n := s.g.Nodes[s.pinned]
	clamped := s.g.Canvas.ClampPoint(p, n.Radius)
	n.Pos.X = clamped.X
	n.Pos.Y = clamped.Y
	n.VX = 0
	n.VY = 0
}

// Step advances the simulation by one unit step.
func (s *Simulation) Step() {
	nodes := s.g.Nodes
	center := s.g.Canvas.Center()

	for i, n := range nodes {
		if i == s.pinned {
			continue
		}

		n.VX *= s.cfg.Damping
		n.VY *= s.cfg.Damping

		n.VX += (center.X - n.Pos.X) * s.cfg.Centering
		n.VY += (center.Y - n.Pos.Y) * s.cfg.Centering

		// The pinned node is visited here as "other": it repels the
		// rest of the graph even while dragged.
		for j, o := range nodes {
			if i == j {
				continue
			}
			dx := n.Pos.X - o.Pos.X
			dy := n.Pos.Y - o.Pos.Y
			dist := geo.EuclideanDistance(n.Pos.X, n.Pos.Y, o.Pos.X, o.Pos.Y)
			// Coincident nodes exert nothing on each other; initial
			// random placement separates them probabilistically.
			if dist == 0 || dist >= s.cfg.Cutoff {
				continue
			}
			f := s.cfg.Repulsion / (dist * dist)
			n.VX += dx / dist * f
			n.VY += dy / dist * f
		}
	}

	for _, e := range s.g.Edges {
		src := nodes[e.Src]
		dst := nodes[e.Dst]
		dx := dst.Pos.X - src.Pos.X
		dy := dst.Pos.Y - src.Pos.Y
		dist := geo.EuclideanDistance(src.Pos.X, src.Pos.Y, dst.Pos.X, dst.Pos.Y)
		if dist == 0 {
			continue
		}

		f := (dist - s.cfg.SpringLength) * s.cfg.SpringConstant * e.Strength
		fx := dx / dist * f
		fy := dy / dist * f

		if e.Src != s.pinned {
			src.VX += fx
			src.VY += fy
		}
		if e.Dst != s.pinned {
			dst.VX -= fx
			dst.VY -= fy
		}
	}

	for i, n := range nodes {
		if i == s.pinned {
			n.VX = 0
			n.VY = 0
			continue
		}
		n.Pos.X += n.VX
		n.Pos.Y += n.VY

		clamped := s.g.Canvas.ClampPoint(n.Pos, n.Radius)
		n.Pos.X = clamped.X
		n.Pos.Y = clamped.Y
	}
}

// TotalEnergy is the sum of squared velocities over all nodes. With no
// external perturbation it trends toward zero under damping.
func (s *Simulation) TotalEnergy() float64 {
	var e float64
	for _, n := range s.g.Nodes {
		e += n.VX*n.VX + n.VY*n.VY
	}
	return e
}

// Run advances the simulation a fixed number of steps, checking ctx
// between steps so long runs cancel promptly.
func (s *Simulation) Run(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Step()
	}
	return nil
}

// Loop steps the simulation at the given interval until ctx is
// cancelled. The simulation never schedules itself: the loop is owned
// by the caller's goroutine and stops without further mutation once ctx
// is done.
func (s *Simulation) Loop(ctx context.Context, interval time.Duration, onStep func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
			if onStep != nil {
				onStep()
			}
		}
	}
}

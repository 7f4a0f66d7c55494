// Package viewport maintains the zoom/pan transform between simulation
// ("world") coordinates and rendered/pointer ("screen") coordinates.
// The transform never touches simulation state.
package viewport

import (
	"oss.ontoplane.com/netgraph/lib/geo"
)

const (
	ZOOM_STEP = 1.2
	MIN_ZOOM  = 0.5
	MAX_ZOOM  = 3.0
)

type Viewport struct {
	Scale float64
	Pan   geo.Vector
}

func New() *Viewport {
	return &Viewport{
		Scale: 1.0,
		Pan:   geo.NewVector(0, 0),
	}
}

func (v *Viewport) ZoomIn() {
	v.SetScale(v.Scale * ZOOM_STEP)
}

func (v *Viewport) ZoomOut() {
	v.SetScale(v.Scale / ZOOM_STEP)
}

func (v *Viewport) SetScale(scale float64) {
	v.Scale = geo.Clamp(scale, MIN_ZOOM, MAX_ZOOM)
}

func (v *Viewport) PanBy(dx, dy float64) {
	v.Pan = v.Pan.Add(geo.NewVector(dx, dy))
}

func (v *Viewport) Reset() {
	v.Scale = 1.0
	v.Pan = geo.NewVector(0, 0)
}

// ToWorld maps a screen point (e.g. pointer coordinates) into
// simulation space by inverting the pan/zoom transform.
func (v *Viewport) ToWorld(p *geo.Point) *geo.Point {
	return geo.NewPoint(
		(p.X-v.Pan[0])/v.Scale,
		(p.Y-v.Pan[1])/v.Scale,
	)
}

// ToScreen maps a simulation-space point into screen space.
func (v *Viewport) ToScreen(p *geo.Point) *geo.Point {
	return geo.NewPoint(
		p.X*v.Scale+v.Pan[0],
		p.Y*v.Scale+v.Pan[1],
	)
}

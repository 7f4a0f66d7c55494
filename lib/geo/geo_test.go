package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.ontoplane.com/netgraph/lib/geo"
)

func TestPoint(t *testing.T) {
	a := geo.NewPoint(0, 0)
	b := geo.NewPoint(3, 4)

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.True(t, b.Equals(b.Copy()))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	mid := a.Interpolate(b, 0.5)
	assert.True(t, mid.Equals(geo.NewPoint(1.5, 2)))

	moved := a.AddVector(geo.NewVector(3, 4))
	assert.True(t, moved.Equals(b))
	assert.Equal(t, 5.0, a.VectorTo(b).Length())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, geo.Clamp(5, 0, 10))
	assert.Equal(t, 0.0, geo.Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, geo.Clamp(11, 0, 10))
	// Degenerate bounds collapse to lo.
	assert.Equal(t, 10.0, geo.Clamp(5, 10, 0))
}

func TestBoxClampPoint(t *testing.T) {
	b := geo.NewBox(geo.NewPoint(0, 0), 800, 600)

	inside := geo.NewPoint(400, 300)
	assert.True(t, b.ClampPoint(inside, 20).Equals(inside))

	clamped := b.ClampPoint(geo.NewPoint(-50, 700), 20)
	assert.True(t, clamped.Equals(geo.NewPoint(20, 580)))

	assert.True(t, b.Contains(inside))
	assert.False(t, b.Contains(geo.NewPoint(801, 300)))
}

func TestPrecisionCompare(t *testing.T) {
	assert.Equal(t, 0, geo.PrecisionCompare(1.0001, 1.0002, 0.001))
	assert.Equal(t, -1, geo.PrecisionCompare(1, 2, 0.001))
	assert.Equal(t, 1, geo.PrecisionCompare(2, 1, 0.001))
}

package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.ontoplane.com/netgraph/lib/color"
)

func TestForCategory(t *testing.T) {
	assert.Equal(t, color.Palette[0], color.ForCategory(""))

	c := color.ForCategory("person")
	assert.Equal(t, c, color.ForCategory("person"))
	assert.Contains(t, color.Palette, c)
}

func TestDarken(t *testing.T) {
	d, err := color.Darken("#4A6FF3")
	assert.Nil(t, err)
	assert.NotEqual(t, "#4A6FF3", d)

	ld, err := color.Luminance(d)
	assert.Nil(t, err)
	lo, err := color.Luminance("#4A6FF3")
	assert.Nil(t, err)
	assert.Less(t, ld, lo)

	_, err = color.Darken("not a color")
	assert.NotNil(t, err)
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, color.Label, color.LabelFor("#FFFFFF"))
	assert.Equal(t, "#FFFFFF", color.LabelFor("#000000"))
}

package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"oss.ontoplane.com/netgraph/lib/go2"
)

// Palette assigned to entity categories. Categories hash to a stable
// palette slot so the same category renders the same color across runs.
var Palette = []string{
	"#4A6FF3", // blue
	"#673AB6", // purple
	"#0F9B8E", // teal
	"#D32F2F", // red
	"#E57F00", // orange
	"#2E7D32", // green
	"#C2185B", // pink
	"#5C6BC0", // indigo
}

const (
	Background = "#FFFFFF"
	Label      = "#0A0F25"
	EdgeStroke = "#676C7E"
)

func ForCategory(category string) string {
	if category == "" {
		return Palette[0]
	}
	i := go2.StringToIntHash(category) % len(Palette)
	return Palette[i]
}

func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// LabelFor returns a readable label color against the given fill.
func LabelFor(fill string) string {
	l, err := Luminance(fill)
	if err != nil {
		return Label
	}
	if l < .55 {
		return "#FFFFFF"
	}
	return Label
}

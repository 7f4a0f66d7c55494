package graph

import (
	"encoding/json"

	"oss.terrastruct.com/xdefer"

	"oss.ontoplane.com/netgraph/lib/geo"
)

// Document is the JSON input format: the ontology platform's vocabulary
// of things and connections.
type Document struct {
	Things      []Entity       `json:"things"`
	Connections []Relationship `json:"connections"`
}

func DecodeDocument(b []byte) (_ *Document, err error) {
	defer xdefer.Errorf(&err, "failed to decode network document")

	var doc Document
	err = json.Unmarshal(b, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Snapshot is the persistable result of a layout: final positions keyed
// by entity id. Persistence itself is a caller concern.
type Snapshot struct {
	Width     float64               `json:"width"`
	Height    float64               `json:"height"`
	Positions map[string]*geo.Point `json:"positions"`
	Dropped   int                   `json:"droppedConnections,omitempty"`
}

func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:     g.Canvas.Width,
		Height:    g.Canvas.Height,
		Positions: make(map[string]*geo.Point, len(g.Nodes)),
		Dropped:   g.Dropped,
	}
	for _, n := range g.Nodes {
		s.Positions[n.ID] = n.Pos.Copy()
	}
	return s
}

func (s *Snapshot) Encode() (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to encode layout snapshot")
	return json.MarshalIndent(s, "", "  ")
}

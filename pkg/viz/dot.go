// Package viz renders the street network as Graphviz drawings. Node
// positions come from the surveyed coordinates, so the drawing preserves
// the city's actual geometry instead of a synthetic layout.
package viz

import (
	"bytes"
	"fmt"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// Options configures the network drawing.
type Options struct {
	// NodeScores colors nodes along a white-to-red gradient; nil leaves
	// every node white.
	NodeScores map[uint64]float64
	// EdgeScores widens and darkens edges by score; nil draws uniform edges.
	EdgeScores map[graph.EdgeKey]float64
	// Highlight draws the listed edges in red regardless of score, used
	// for bridges.
	Highlight []graph.EdgeKey
	// Scale divides the surveyed coordinates down to Graphviz points.
	// Defaults to 100 when zero.
	Scale float64
}

// ToDOT converts the network to Graphviz DOT. Coordinates are pinned with
// pos="x,y!" so neato keeps the surveyed layout.
func ToDOT(g *graph.Graph, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = 100
	}

	highlighted := make(map[graph.EdgeKey]bool, len(opts.Highlight))
	for _, e := range opts.Highlight {
		highlighted[e] = true
	}

	maxNode := maxScore(opts.NodeScores)
	maxEdge := maxEdgeScore(opts.EdgeScores)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, width=0.15, fixedsize=true, label=\"\"];\n")
	buf.WriteString("\n")

	for _, node := range g.Nodes() {
		attrs := ""
		if coord, ok := g.Coordinate(node); ok {
			attrs = fmt.Sprintf("pos=\"%.2f,%.2f!\"", coord.X/scale, coord.Y/scale)
		}
		if opts.NodeScores != nil && maxNode > 0 {
			color := gradient(opts.NodeScores[node] / maxNode)
			if attrs != "" {
				attrs += ", "
			}
			attrs += fmt.Sprintf("fillcolor=%q", color)
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", node, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		switch {
		case highlighted[e.Key]:
			fmt.Fprintf(&buf, "  %d -- %d [color=red, penwidth=3];\n", e.Key.U, e.Key.V)
		case opts.EdgeScores != nil && maxEdge > 0:
			rel := opts.EdgeScores[e.Key] / maxEdge
			fmt.Fprintf(&buf, "  %d -- %d [color=%q, penwidth=%.2f];\n",
				e.Key.U, e.Key.V, gradient(rel), 0.5+3*rel)
		default:
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.Key.U, e.Key.V)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// gradient maps a relative score in [0,1] to a white-to-red RGB hex color.
func gradient(rel float64) string {
	if rel < 0 {
		rel = 0
	}
	if rel > 1 {
		rel = 1
	}
	level := uint8(255 - rel*255)
	return fmt.Sprintf("#ff%02x%02x", level, level)
}

func maxScore(scores map[uint64]float64) float64 {
	var m float64
	for _, s := range scores {
		if s > m {
			m = s
		}
	}
	return m
}

func maxEdgeScore(scores map[graph.EdgeKey]float64) float64 {
	var m float64
	for _, s := range scores {
		if s > m {
			m = s
		}
	}
	return m
}

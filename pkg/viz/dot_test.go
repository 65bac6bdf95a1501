package viz

import (
	"strings"
	"testing"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

func testNetwork(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddEdge(1, 2, 100)
	g.AddEdge(2, 3, 150)
	g.SetCoordinate(1, graph.Coordinate{X: 187000, Y: 8250000})
	g.SetCoordinate(2, graph.Coordinate{X: 187100, Y: 8250100})
	g.SetCoordinate(3, graph.Coordinate{X: 187200, Y: 8250200})
	return g
}

// TestToDOT_PinsCoordinates tests the undirected header and position pins.
func TestToDOT_PinsCoordinates(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("expected an undirected graph, got: %s", dot[:20])
	}
	if !strings.Contains(dot, "layout=neato") {
		t.Error("expected the neato layout for pinned positions")
	}
	if !strings.Contains(dot, `pos="1870.00,82500.00!"`) {
		t.Errorf("expected node 1 pinned at its scaled coordinates:\n%s", dot)
	}
	if !strings.Contains(dot, "1 -- 2;") {
		t.Errorf("expected plain undirected edges:\n%s", dot)
	}
}

// TestToDOT_HighlightsBridges tests the bridge styling.
func TestToDOT_HighlightsBridges(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{
		Highlight: []graph.EdgeKey{graph.NewEdgeKey(2, 3)},
	})

	if !strings.Contains(dot, "2 -- 3 [color=red, penwidth=3];") {
		t.Errorf("expected the highlighted edge in red:\n%s", dot)
	}
	if !strings.Contains(dot, "1 -- 2;") {
		t.Errorf("expected the other edge unstyled:\n%s", dot)
	}
}

// TestToDOT_NodeGradient tests score-driven node coloring.
func TestToDOT_NodeGradient(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{
		NodeScores: map[uint64]float64{1: 0, 2: 1.0, 3: 0.5},
	})

	// The top-scoring node is pure red, a zero-score node pure white.
	if !strings.Contains(dot, `fillcolor="#ff0000"`) {
		t.Errorf("expected a pure red node:\n%s", dot)
	}
	if !strings.Contains(dot, `fillcolor="#ffffff"`) {
		t.Errorf("expected a white node:\n%s", dot)
	}
}

// TestToDOT_EdgeScores tests score-driven edge width.
func TestToDOT_EdgeScores(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{
		EdgeScores: map[graph.EdgeKey]float64{
			graph.NewEdgeKey(1, 2): 1.0,
			graph.NewEdgeKey(2, 3): 0.0,
		},
	})

	if !strings.Contains(dot, "penwidth=3.50") {
		t.Errorf("expected the top edge at full width:\n%s", dot)
	}
	if !strings.Contains(dot, "penwidth=0.50") {
		t.Errorf("expected the zero edge at minimum width:\n%s", dot)
	}
}

// TestGradient_Clamped tests out-of-range inputs.
func TestGradient_Clamped(t *testing.T) {
	if gradient(-0.5) != "#ffffff" {
		t.Errorf("expected white below range, got %s", gradient(-0.5))
	}
	if gradient(1.5) != "#ff0000" {
		t.Errorf("expected red above range, got %s", gradient(1.5))
	}
}

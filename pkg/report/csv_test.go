package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/traffic"
)

func testNetwork(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddEdge(1, 2, 100.0)
	g.AddEdge(2, 3, 150.0)
	g.SetCoordinate(1, graph.Coordinate{X: 10, Y: 20})
	g.SetCoordinate(2, graph.Coordinate{X: 30, Y: 40})
	g.SetCoordinate(3, graph.Coordinate{X: 50, Y: 60})
	return g
}

// TestWriteNodeMetricsCSV tests the semicolon layout and row order.
func TestWriteNodeMetricsCSV(t *testing.T) {
	g := testNetwork(t)
	res := algorithms.ComputeAllCentrality(g, 3)
	path := filepath.Join(t.TempDir(), "nodes.csv")

	if err := WriteNodeMetricsCSV(path, g, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Node;Degree;Degree_Centrality;Betweenness_Centrality;Closeness_Centrality;X_Coord;Y_Coord" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1;1;") {
		t.Errorf("expected node 1 first, got %s", lines[1])
	}
	if !strings.Contains(lines[1], ";10;20") {
		t.Errorf("expected coordinates in the row, got %s", lines[1])
	}
}

// TestWriteEdgeMetricsCSV tests the edge table layout.
func TestWriteEdgeMetricsCSV(t *testing.T) {
	g := testNetwork(t)
	ebc := algorithms.EdgeBetweennessCentrality(g)
	path := filepath.Join(t.TempDir(), "edges.csv")

	if err := WriteEdgeMetricsCSV(path, g, ebc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Node1;Node2;Distance;Edge_Betweenness_Centrality" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1;2;100;") {
		t.Errorf("expected edge 1-2 with its length, got %s", lines[1])
	}
}

// TestWriteTrafficCSV tests the comma-delimited load table.
func TestWriteTrafficCSV(t *testing.T) {
	loads := []traffic.EdgeLoad{
		{Edge: graph.NewEdgeKey(2, 1), Load: 1234.567, Saturation: 0.8231},
		{Edge: graph.NewEdgeKey(2, 3), Load: 0, Saturation: 0},
	}
	path := filepath.Join(t.TempDir(), "traffic.csv")

	if err := WriteTrafficCSV(path, loads); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "Node1,Node2,Carga,Saturacao" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "1,2,1234.57,0.823" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

// TestWriteSummaryText tests the exploratory report rendering.
func TestWriteSummaryText(t *testing.T) {
	g := testNetwork(t)
	var buf bytes.Buffer

	if err := WriteSummaryText(&buf, Summarize(g)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Nodes:", "Edges:", "Density:", "Degree distribution:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

// TestWriteImpactText tests the impact report rendering.
func TestWriteImpactText(t *testing.T) {
	g := testNetwork(t)
	res, err := algorithms.SimulateEdgeRemoval(g, 1, 2, algorithms.ImpactOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteImpactText(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "IMPACT OF REMOVING SEGMENT 1 - 2") {
		t.Errorf("impact report missing the edge header: %s", out)
	}
	if !strings.Contains(out, "Components:        1 -> 2") {
		t.Errorf("impact report missing the component change: %s", out)
	}
}

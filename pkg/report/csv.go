package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/traffic"
)

// WriteNodeMetricsCSV writes the per-node centrality table, one row per
// node in ascending ID order, semicolon delimited:
//
//	Node;Degree;Degree_Centrality;Betweenness_Centrality;Closeness_Centrality;X_Coord;Y_Coord
func WriteNodeMetricsCSV(path string, g *graph.Graph, res *algorithms.CentralityResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create node metrics csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := []string{
		"Node", "Degree", "Degree_Centrality", "Betweenness_Centrality",
		"Closeness_Centrality", "X_Coord", "Y_Coord",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, node := range g.Nodes() {
		coord, _ := g.Coordinate(node)
		row := []string{
			fmt.Sprintf("%d", node),
			fmt.Sprintf("%d", g.Degree(node)),
			formatScore(res.Degree[node]),
			formatScore(res.Betweenness[node]),
			formatScore(res.Closeness[node]),
			fmt.Sprintf("%g", coord.X),
			fmt.Sprintf("%g", coord.Y),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteEdgeMetricsCSV writes the per-edge betweenness table, one row per
// edge ordered by endpoints, semicolon delimited:
//
//	Node1;Node2;Distance;Edge_Betweenness_Centrality
func WriteEdgeMetricsCSV(path string, g *graph.Graph, edgeBetweenness map[graph.EdgeKey]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create edge metrics csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write([]string{"Node1", "Node2", "Distance", "Edge_Betweenness_Centrality"}); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		row := []string{
			fmt.Sprintf("%d", e.Key.U),
			fmt.Sprintf("%d", e.Key.V),
			fmt.Sprintf("%g", e.Weight),
			formatScore(edgeBetweenness[e.Key]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteTrafficCSV writes the simulated loads, comma delimited:
//
//	Node1,Node2,Carga,Saturacao
func WriteTrafficCSV(path string, loads []traffic.EdgeLoad) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create traffic csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"Node1", "Node2", "Carga", "Saturacao"}); err != nil {
		return err
	}

	for _, l := range loads {
		row := []string{
			fmt.Sprintf("%d", l.Edge.U),
			fmt.Sprintf("%d", l.Edge.V),
			fmt.Sprintf("%.2f", l.Load),
			fmt.Sprintf("%.3f", l.Saturation),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.10g", v)
}

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

const rule = "======================================================================"

// WriteSummaryText writes the exploratory stage report.
func WriteSummaryText(w io.Writer, s NetworkSummary) error {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "EXPLORATORY ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Nodes:                 %d\n", s.Nodes)
	fmt.Fprintf(w, "Edges:                 %d\n", s.Edges)
	fmt.Fprintf(w, "Density:               %.4f\n", s.Density)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mean degree:           %.2f\n", s.Degree.Mean)
	fmt.Fprintf(w, "Median degree:         %.0f\n", s.Degree.Median)
	fmt.Fprintf(w, "Degree range:          %d .. %d\n", int(s.Degree.Min), int(s.Degree.Max))
	fmt.Fprintf(w, "Highest degree node:   %d\n", s.MaxDegreeNode)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mean segment length:   %.2f m\n", s.Length.Mean)
	fmt.Fprintf(w, "Median segment length: %.2f m\n", s.Length.Median)
	fmt.Fprintf(w, "Length range:          %.2f .. %.2f m\n", s.Length.Min, s.Length.Max)
	fmt.Fprintf(w, "Total street length:   %.2f m\n", s.TotalLength)
	if s.ZeroLengthEdges > 0 {
		fmt.Fprintf(w, "Unmeasured segments:   %d\n", s.ZeroLengthEdges)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Connected:             %v\n", s.Connected)
	fmt.Fprintf(w, "Components:            %d\n", s.Components)
	fmt.Fprintf(w, "Largest component:     %d nodes\n", s.LargestComp)

	degrees := make([]int, 0, len(s.DegreeDistribution))
	for d := range s.DegreeDistribution {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Degree distribution:")
	for _, d := range degrees {
		fmt.Fprintf(w, "  degree %2d: %4d nodes\n", d, s.DegreeDistribution[d])
	}
	return nil
}

// WriteCriticalPointsText writes the structural vulnerability report.
func WriteCriticalPointsText(w io.Writer, g *graph.Graph, cp *algorithms.CriticalPoints) error {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "STRUCTURAL ANALYSIS: BRIDGES AND ARTICULATION POINTS")
	fmt.Fprintln(w, rule)

	nodes, edges := g.NodeCount(), g.EdgeCount()
	fmt.Fprintf(w, "Bridges:             %d of %d segments (%.1f%%)\n",
		len(cp.Bridges), edges, percent(len(cp.Bridges), edges))
	fmt.Fprintf(w, "Articulation points: %d of %d intersections (%.1f%%)\n",
		len(cp.ArticulationPoints), nodes, percent(len(cp.ArticulationPoints), nodes))

	if len(cp.Bridges) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Bridge segments (removal disconnects the network):")
		for _, b := range cp.Bridges {
			weight, _ := g.EdgeWeight(b.U, b.V)
			fmt.Fprintf(w, "  %6d - %-6d  %.2f m\n", b.U, b.V, weight)
		}
	}
	if len(cp.ArticulationPoints) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Articulation intersections:")
		for _, ap := range cp.ArticulationPoints {
			fmt.Fprintf(w, "  %6d  (degree %d)\n", ap, g.Degree(ap))
		}
	}
	return nil
}

// WriteCentralityText writes the top-ranked nodes and edges.
func WriteCentralityText(w io.Writer, res *algorithms.CentralityResult, corr CentralityCorrelations) error {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CENTRALITY ANALYSIS")
	fmt.Fprintln(w, rule)

	writeNodeRanking(w, "Top nodes by degree centrality", res.TopByDegree)
	writeNodeRanking(w, "Top nodes by betweenness centrality", res.TopByBetweenness)
	writeNodeRanking(w, "Top nodes by closeness centrality", res.TopByCloseness)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top edges by betweenness centrality:")
	for i, e := range res.TopByEdgeBetweenness {
		fmt.Fprintf(w, "  %2d. %6d - %-6d  %.6f\n", i+1, e.Edge.U, e.Edge.V, e.Score)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Correlations between measures (Pearson):")
	fmt.Fprintf(w, "  degree vs betweenness:      %+.4f\n", corr.DegreeBetweenness)
	fmt.Fprintf(w, "  degree vs closeness:        %+.4f\n", corr.DegreeCloseness)
	fmt.Fprintf(w, "  betweenness vs closeness:   %+.4f\n", corr.BetweennessCloseness)
	return nil
}

// WriteImpactText writes one edge removal simulation report.
func WriteImpactText(w io.Writer, res *algorithms.ImpactResult) error {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "IMPACT OF REMOVING SEGMENT %d - %d (%.2f m)\n",
		res.Edge.U, res.Edge.V, res.Weight)
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Components:        %d -> %d\n", res.ComponentsBefore, res.ComponentsAfter)
	fmt.Fprintf(w, "Still connected:   %v\n", res.ConnectedAfter)
	if len(res.IsolatedNodes) > 0 {
		fmt.Fprintf(w, "Isolated nodes:    %v\n", res.IsolatedNodes)
		fmt.Fprintf(w, "Component sizes:   %v\n", res.ComponentSizesAfter)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sampled pairs compared:   %d\n", res.PairsCompared)
	fmt.Fprintf(w, "Pairs disconnected:       %d\n", res.DisconnectedPairs)
	fmt.Fprintf(w, "Pairs with longer route:  %d\n", len(res.Increases))
	if len(res.Increases) > 0 {
		fmt.Fprintf(w, "Mean detour increase:     %.1f%%\n", Mean(res.Increases))
		fmt.Fprintf(w, "Worst detour increase:    %.1f%%\n", Max(res.Increases))
	}
	return nil
}

func writeNodeRanking(w io.Writer, title string, ranking []algorithms.RankedNode) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	for i, r := range ranking {
		fmt.Fprintf(w, "  %2d. node %6d  %.6f\n", i+1, r.NodeID, r.Score)
	}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

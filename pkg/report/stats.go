// Package report computes descriptive statistics over the network and
// writes the CSV and text outputs of each analysis stage.
package report

import (
	"math"
	"sort"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Median returns the middle value, averaging the two central elements for
// even lengths. 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Min returns the smallest value, 0 for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum returns the total of the values.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// Pearson returns the Pearson correlation coefficient of two equal-length
// samples, or 0 when either sample has no variance or the lengths differ.
func Pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0
	}

	meanX, meanY := Mean(xs), Mean(ys)
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// DistributionStats summarizes one sample.
type DistributionStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

func describe(values []float64) DistributionStats {
	return DistributionStats{
		Mean:   Mean(values),
		Median: Median(values),
		Min:    Min(values),
		Max:    Max(values),
	}
}

// NetworkSummary is the exploratory stage's descriptive picture of the
// street network.
type NetworkSummary struct {
	Nodes int
	Edges int
	// Density is 2m / n(n-1), the realized fraction of possible streets.
	Density float64

	Degree DistributionStats
	// DegreeDistribution maps degree to the number of nodes holding it.
	DegreeDistribution map[int]int
	MaxDegreeNode      uint64

	// Length covers segment lengths in meters. Zero-length segments come
	// from pair-file edges with no survey record and are excluded here,
	// though they stay in the graph for routing and centrality.
	Length          DistributionStats
	TotalLength     float64
	ZeroLengthEdges int

	Connected      bool
	Components     int
	LargestComp    int
}

// Summarize computes the exploratory statistics for the network.
func Summarize(g *graph.Graph) NetworkSummary {
	nodes := g.Nodes()
	n := len(nodes)

	summary := NetworkSummary{
		Nodes:              n,
		Edges:              g.EdgeCount(),
		DegreeDistribution: make(map[int]int),
	}

	degrees := make([]float64, 0, n)
	maxDegree := -1
	for _, node := range nodes {
		d := g.Degree(node)
		degrees = append(degrees, float64(d))
		summary.DegreeDistribution[d]++
		if d > maxDegree {
			maxDegree = d
			summary.MaxDegreeNode = node
		}
	}
	summary.Degree = describe(degrees)

	if n > 1 {
		summary.Density = 2 * float64(summary.Edges) / (float64(n) * float64(n-1))
	}

	var lengths []float64
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			summary.ZeroLengthEdges++
			continue
		}
		lengths = append(lengths, e.Weight)
	}
	summary.Length = describe(lengths)
	summary.TotalLength = Sum(lengths)

	components := g.ConnectedComponents()
	summary.Components = len(components)
	summary.Connected = len(components) <= 1
	for _, comp := range components {
		if len(comp) > summary.LargestComp {
			summary.LargestComp = len(comp)
		}
	}

	return summary
}

// CentralityCorrelations reports Pearson coefficients between the node
// measures; the original study used these to argue degree is a poor proxy
// for betweenness on a grid.
type CentralityCorrelations struct {
	DegreeBetweenness    float64
	DegreeCloseness      float64
	BetweennessCloseness float64
}

// Correlate computes pairwise correlations over the shared node set.
func Correlate(g *graph.Graph, degree, betweenness, closeness map[uint64]float64) CentralityCorrelations {
	nodes := g.Nodes()
	deg := make([]float64, len(nodes))
	btw := make([]float64, len(nodes))
	cls := make([]float64, len(nodes))
	for i, n := range nodes {
		deg[i] = degree[n]
		btw[i] = betweenness[n]
		cls[i] = closeness[n]
	}
	return CentralityCorrelations{
		DegreeBetweenness:    Pearson(deg, btw),
		DegreeCloseness:      Pearson(deg, cls),
		BetweennessCloseness: Pearson(btw, cls),
	}
}

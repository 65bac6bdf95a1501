package e2e

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/ingest"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/report"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/traffic"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/viz"
)

// syntheticNetwork is a small street grid with one bridge: a 5-node
// quarter (two stacked squares) linked by a single segment to a 3-node
// cul-de-sac triangle.
const syntheticNetwork = `# id n1 x1 y1 n2 x2 y2 length
1 1 0 0 2 100 0 100.0
2 2 100 0 3 100 100 100.0
3 3 100 100 4 0 100 100.0
4 4 0 100 1 0 0 100.0
5 3 100 100 5 200 100 100.0
6 5 200 100 2 100 0 141.4
7 5 200 100 6 300 100 100.0
8 6 300 100 7 400 100 100.0
9 7 400 100 8 400 0 100.0
10 8 400 0 6 300 100 141.4
`

// TestFullPipeline walks a synthetic network through every analysis
// stage and checks the stages agree with each other.
func TestFullPipeline(t *testing.T) {
	t.Log("=== E2E Test: Full Analysis Pipeline ===")

	dir := t.TempDir()
	edgePath := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(edgePath, []byte(syntheticNetwork), 0o644))

	// Stage 0: ingest.
	t.Log("Step 1: Loading the network...")
	g, stats, err := ingest.LoadNetwork(edgePath, "")
	require.NoError(t, err)
	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.Equal(t, 0, stats.Skipped)

	// Stage 1: exploratory.
	t.Log("Step 2: Exploratory statistics...")
	summary := report.Summarize(g)
	assert.True(t, summary.Connected)
	assert.Equal(t, 1, summary.Components)
	assert.InDelta(t, 2.5, summary.Degree.Mean, 1e-9)

	// Stage 2: structural. Segment 5-6 is the only bridge.
	t.Log("Step 3: Bridges and articulation points...")
	cp := algorithms.FindCriticalPoints(g)
	require.Len(t, cp.Bridges, 1)
	assert.Equal(t, graph.NewEdgeKey(5, 6), cp.Bridges[0])
	assert.Equal(t, []uint64{5, 6}, cp.ArticulationPoints)

	// Stage 3: centrality, parallel against serial.
	t.Log("Step 4: Centrality measures...")
	res, err := algorithms.ComputeAllCentralityParallel(context.Background(), g, 4, 3)
	require.NoError(t, err)
	serial := algorithms.ComputeAllCentrality(g, 3)
	for node, want := range serial.Betweenness {
		assert.InDelta(t, want, res.Betweenness[node], 1e-9, "node %d", node)
	}
	// The bridge must carry the highest edge betweenness: every path
	// between the two sides crosses it.
	require.NotEmpty(t, res.TopByEdgeBetweenness)
	assert.Equal(t, cp.Bridges[0], res.TopByEdgeBetweenness[0].Edge)

	// Stage 4: impact of cutting the bridge.
	t.Log("Step 5: Edge removal impact...")
	impact, err := algorithms.SimulateEdgeRemoval(g, 5, 6, algorithms.ImpactOptions{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, impact.ComponentsBefore)
	assert.Equal(t, 2, impact.ComponentsAfter)
	assert.Len(t, impact.IsolatedNodes, 3)
	assert.Greater(t, impact.DisconnectedPairs, 0)

	// Stage 5: traffic simulation.
	t.Log("Step 6: Traffic simulation...")
	traffRes, err := traffic.Simulate(context.Background(), g, traffic.Params{
		DailyFlow:        24000,
		VehiclesPerAgent: 100,
		HourlyCapacity:   500,
		MaxAgents:        20,
		Hours:            24,
		Seed:             1,
	})
	require.NoError(t, err)
	assert.Greater(t, traffRes.AgentsRouted, 0)
	assert.Len(t, traffRes.Loads, g.EdgeCount())

	// Outputs: CSV exports and the DOT drawing.
	t.Log("Step 7: Writing reports...")
	nodeCSV := filepath.Join(dir, "nodes.csv")
	require.NoError(t, report.WriteNodeMetricsCSV(nodeCSV, g, res))
	data, err := os.ReadFile(nodeCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, g.NodeCount()+1)

	edgeCSV := filepath.Join(dir, "edges.csv")
	require.NoError(t, report.WriteEdgeMetricsCSV(edgeCSV, g, res.EdgeBetweenness))

	dot := viz.ToDOT(g, viz.Options{
		NodeScores: res.Betweenness,
		EdgeScores: res.EdgeBetweenness,
		Highlight:  cp.Bridges,
	})
	assert.Contains(t, dot, "graph G {")
	assert.Contains(t, dot, "5 -- 6 [color=red")

	t.Log("✓ Pipeline complete")
}

// TestPipeline_RecomputationStable tests that two full passes over the
// same input produce byte-identical CSV exports.
func TestPipeline_RecomputationStable(t *testing.T) {
	dir := t.TempDir()
	edgePath := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(edgePath, []byte(syntheticNetwork), 0o644))

	var exports [2][]byte
	for i := 0; i < 2; i++ {
		g, _, err := ingest.LoadNetwork(edgePath, "")
		require.NoError(t, err)

		res := algorithms.ComputeAllCentrality(g, 5)
		path := filepath.Join(dir, "nodes.csv")
		require.NoError(t, report.WriteNodeMetricsCSV(path, g, res))
		exports[i], err = os.ReadFile(path)
		require.NoError(t, err)
	}

	assert.Equal(t, exports[0], exports[1], "recomputation must be bit-identical")
}

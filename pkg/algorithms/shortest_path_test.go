package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// pathGraph builds the line 1-2-3-4 with unit weights.
func pathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range [][2]uint64{{1, 2}, {2, 3}, {3, 4}} {
		if err := g.AddEdge(e[0], e[1], 1.0); err != nil {
			t.Fatalf("failed to add edge %v: %v", e, err)
		}
	}
	return g
}

// TestShortestPath_Line tests the path and distance along a simple line.
func TestShortestPath_Line(t *testing.T) {
	g := pathGraph(t)

	path, dist, err := ShortestPath(g, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist != 3.0 {
		t.Errorf("expected distance 3, got %v", dist)
	}
	want := []uint64{1, 2, 3, 4}
	if len(path) != len(want) {
		t.Fatalf("expected path %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}

// TestShortestPath_SameNode tests the trivial path from a node to itself.
func TestShortestPath_SameNode(t *testing.T) {
	g := pathGraph(t)

	path, dist, err := ShortestPath(g, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist != 0 {
		t.Errorf("expected distance 0, got %v", dist)
	}
	if len(path) != 1 || path[0] != 2 {
		t.Errorf("expected path [2], got %v", path)
	}
}

// TestShortestPath_NoPath tests ErrNoPath for disconnected endpoints.
func TestShortestPath_NoPath(t *testing.T) {
	g := graph.New()
	if err := g.AddEdge(1, 2, 1.0); err != nil {
		t.Fatalf("failed to add edge: %v", err)
	}
	g.AddNode(3)

	_, _, err := ShortestPath(g, 1, 3)
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

// TestShortestPath_UnknownNode tests missing endpoints.
func TestShortestPath_UnknownNode(t *testing.T) {
	g := pathGraph(t)

	if _, _, err := ShortestPath(g, 1, 99); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath for unknown target, got %v", err)
	}
	if _, _, err := ShortestPath(g, 99, 1); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath for unknown source, got %v", err)
	}
}

// TestShortestPath_WeightedDetour tests that weights, not hop count, decide.
func TestShortestPath_WeightedDetour(t *testing.T) {
	g := graph.New()
	// Direct edge is expensive; the detour through 2 and 3 is cheaper.
	g.AddEdge(1, 4, 10.0)
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(2, 3, 1.0)
	g.AddEdge(3, 4, 1.0)

	path, dist, err := ShortestPath(g, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist != 3.0 {
		t.Errorf("expected distance 3, got %v", dist)
	}
	if len(path) != 4 {
		t.Errorf("expected the 4-node detour, got %v", path)
	}
}

// TestSingleSourceDistances_OmitsUnreachable tests that unreachable nodes
// are absent from the result rather than set to infinity.
func TestSingleSourceDistances_OmitsUnreachable(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2, 2.5)
	g.AddNode(7)

	dists := SingleSourceDistances(g, 1)
	if len(dists) != 2 {
		t.Fatalf("expected 2 reachable nodes, got %d", len(dists))
	}
	if dists[1] != 0 {
		t.Errorf("expected distance 0 to source, got %v", dists[1])
	}
	if dists[2] != 2.5 {
		t.Errorf("expected distance 2.5, got %v", dists[2])
	}
	if _, ok := dists[7]; ok {
		t.Error("unreachable node must be absent from the distance map")
	}
}

// TestShortestPathDAG_CountsPaths tests sigma on a square with two
// equal-length routes between opposite corners.
func TestShortestPathDAG_CountsPaths(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(2, 4, 1.0)
	g.AddEdge(1, 3, 1.0)
	g.AddEdge(3, 4, 1.0)

	dag := shortestPathDAG(g, 1)
	if dag.sigma[4] != 2 {
		t.Errorf("expected 2 shortest paths to the opposite corner, got %v", dag.sigma[4])
	}
	if dag.dist[4] != 2.0 {
		t.Errorf("expected distance 2, got %v", dag.dist[4])
	}
	if len(dag.preds[4]) != 2 {
		t.Errorf("expected 2 predecessors, got %v", dag.preds[4])
	}
}

// TestShortestPathDAG_SettleOrder tests that nodes settle in distance order.
func TestShortestPathDAG_SettleOrder(t *testing.T) {
	g := pathGraph(t)

	dag := shortestPathDAG(g, 1)
	prev := math.Inf(-1)
	for _, n := range dag.order {
		if dag.dist[n] < prev {
			t.Fatalf("settle order violates distance monotonicity at node %d", n)
		}
		prev = dag.dist[n]
	}
}

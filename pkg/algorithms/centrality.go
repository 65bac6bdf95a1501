package algorithms

import (
	"container/heap"
	"sort"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// brandesCentrality runs one weighted Brandes pass from every source and
// returns raw (unnormalised) node and edge betweenness, accumulated over
// both directions of every pair. The callers apply the appropriate
// normalisation so BetweennessCentrality and EdgeBetweennessCentrality can
// share a single O(V·(E + V log V)) traversal.
func brandesCentrality(g *graph.Graph) (nodeBetweenness map[uint64]float64, edgeBetweenness map[graph.EdgeKey]float64) {
	nodes := g.Nodes()

	nodeBetweenness = make(map[uint64]float64, len(nodes))
	edgeBetweenness = make(map[graph.EdgeKey]float64, g.EdgeCount())
	for _, n := range nodes {
		nodeBetweenness[n] = 0
	}
	for _, e := range g.Edges() {
		edgeBetweenness[e.Key] = 0
	}

	for _, source := range nodes {
		accumulateBrandes(g, source, nodeBetweenness, edgeBetweenness)
	}

	return nodeBetweenness, edgeBetweenness
}

// accumulateBrandes adds one source's dependency contributions into the
// given accumulators. Flow between equal-length shortest paths is split
// proportionally to sigma, the closed-form Brandes recurrence.
func accumulateBrandes(g *graph.Graph, source uint64, nodeAcc map[uint64]float64, edgeAcc map[graph.EdgeKey]float64) {
	dag := shortestPathDAG(g, source)

	delta := make(map[uint64]float64, len(dag.order))

	// Back-propagation in reverse distance order, crediting both the
	// intermediate node and the tree edge carrying the flow.
	for i := len(dag.order) - 1; i >= 0; i-- {
		w := dag.order[i]
		coefficient := (1 + delta[w]) / dag.sigma[w]
		for _, v := range dag.preds[w] {
			contribution := dag.sigma[v] * coefficient
			delta[v] += contribution
			edgeAcc[graph.NewEdgeKey(v, w)] += contribution
		}
		if w != source {
			nodeAcc[w] += delta[w]
		}
	}
}

// normalizeNodeBetweenness rescales a raw both-direction accumulation by
// (n-1)(n-2), the undirected normalisation with each unordered pair counted
// once. Graphs with fewer than 3 nodes stay all-zero.
func normalizeNodeBetweenness(raw map[uint64]float64, n int) {
	if n <= 2 {
		for id := range raw {
			raw[id] = 0
		}
		return
	}
	factor := 1.0 / float64((n-1)*(n-2))
	for id := range raw {
		raw[id] *= factor
	}
}

// normalizeEdgeBetweenness halves the both-direction accumulation and
// divides by n(n-1)/2, the number of unordered node pairs.
func normalizeEdgeBetweenness(raw map[graph.EdgeKey]float64, n int) {
	if n <= 1 {
		for k := range raw {
			raw[k] = 0
		}
		return
	}
	factor := 1.0 / float64(n*(n-1))
	for k := range raw {
		raw[k] *= factor
	}
}

// BetweennessCentrality computes weighted, normalised betweenness for all
// nodes: the fraction of all shortest paths passing through each node.
// Unreachable pairs contribute zero.
func BetweennessCentrality(g *graph.Graph) map[uint64]float64 {
	nodeBetweenness, _ := brandesCentrality(g)
	normalizeNodeBetweenness(nodeBetweenness, g.NodeCount())
	return nodeBetweenness
}

// EdgeBetweennessCentrality computes weighted, normalised betweenness for
// all edges. Every edge of the graph appears in the result, including those
// carrying no shortest-path flow.
func EdgeBetweennessCentrality(g *graph.Graph) map[graph.EdgeKey]float64 {
	_, edgeBetweenness := brandesCentrality(g)
	normalizeEdgeBetweenness(edgeBetweenness, g.NodeCount())
	return edgeBetweenness
}

// ClosenessCentrality computes weighted closeness with the reachable-subset
// normalisation (reachable-1)/sum(distances), which tolerates disconnected
// graphs by normalising per component. Isolated nodes score 0. A zero
// distance sum with reachable nodes (all-zero-weight component) also yields
// 0; that case is mathematically degenerate for a distance-based measure.
func ClosenessCentrality(g *graph.Graph) map[uint64]float64 {
	closeness := make(map[uint64]float64, g.NodeCount())

	for _, source := range g.Nodes() {
		dist := SingleSourceDistances(g, source)

		total := 0.0
		reachable := 0
		for node, d := range dist {
			if node == source {
				continue
			}
			total += d
			reachable++
		}

		if total > 0 {
			closeness[source] = float64(reachable) / total
		} else {
			closeness[source] = 0
		}
	}

	return closeness
}

// DegreeCentrality computes degree/(n-1) for every node. Degenerate graphs
// with fewer than 2 nodes score 0 everywhere.
func DegreeCentrality(g *graph.Graph) map[uint64]float64 {
	nodes := g.Nodes()
	degree := make(map[uint64]float64, len(nodes))

	n := len(nodes)
	for _, id := range nodes {
		if n > 1 {
			degree[id] = float64(g.Degree(id)) / float64(n-1)
		} else {
			degree[id] = 0
		}
	}

	return degree
}

// RankedNode holds a node with its centrality score.
type RankedNode struct {
	NodeID uint64  `json:"node_id"`
	Score  float64 `json:"score"`
}

// RankedEdge holds an edge with its betweenness score.
type RankedEdge struct {
	Edge  graph.EdgeKey `json:"edge"`
	Score float64       `json:"score"`
}

// CentralityResult bundles every centrality measure over one graph
// snapshot, plus top-K rankings for the reports. Produced fresh per
// invocation; values go stale if the graph mutates.
type CentralityResult struct {
	Degree          map[uint64]float64
	Closeness       map[uint64]float64
	Betweenness     map[uint64]float64
	EdgeBetweenness map[graph.EdgeKey]float64

	TopByDegree          []RankedNode
	TopByBetweenness     []RankedNode
	TopByCloseness       []RankedNode
	TopByEdgeBetweenness []RankedEdge
}

// ComputeAllCentrality computes all measures, sharing a single Brandes pass
// between node and edge betweenness so both consumers of the result (the
// centrality report and the impact stage) see consistent normalisation.
func ComputeAllCentrality(g *graph.Graph, topN int) *CentralityResult {
	nodeBetweenness, edgeBetweenness := brandesCentrality(g)
	n := g.NodeCount()
	normalizeNodeBetweenness(nodeBetweenness, n)
	normalizeEdgeBetweenness(edgeBetweenness, n)

	degree := DegreeCentrality(g)
	closeness := ClosenessCentrality(g)

	return &CentralityResult{
		Degree:               degree,
		Closeness:            closeness,
		Betweenness:          nodeBetweenness,
		EdgeBetweenness:      edgeBetweenness,
		TopByDegree:          findTopNodes(degree, topN),
		TopByBetweenness:     findTopNodes(nodeBetweenness, topN),
		TopByCloseness:       findTopNodes(closeness, topN),
		TopByEdgeBetweenness: findTopEdges(edgeBetweenness, topN),
	}
}

// rankedNodeHeap implements a min-heap for RankedNode by score.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int           { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h rankedNodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// findTopNodes returns the top n nodes by score using a min-heap.
func findTopNodes(scores map[uint64]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for nodeID, score := range scores {
		rn := RankedNode{NodeID: nodeID, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	// Stable order: score descending, then node ID ascending.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].NodeID < result[j].NodeID
	})

	return result
}

// rankedEdgeHeap implements a min-heap for RankedEdge by score.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int           { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h rankedEdgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// findTopEdges returns the top n edges by score using a min-heap.
func findTopEdges(scores map[graph.EdgeKey]float64, n int) []RankedEdge {
	if n <= 0 {
		return nil
	}

	h := make(rankedEdgeHeap, 0, n)
	heap.Init(&h)

	for key, score := range scores {
		re := RankedEdge{Edge: key, Score: score}
		if h.Len() < n {
			heap.Push(&h, re)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, re)
		}
	}

	result := make([]RankedEdge, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedEdge)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if result[i].Edge.U != result[j].Edge.U {
			return result[i].Edge.U < result[j].Edge.U
		}
		return result[i].Edge.V < result[j].Edge.V
	})

	return result
}

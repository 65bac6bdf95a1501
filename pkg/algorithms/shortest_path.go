// Package algorithms implements the road-network analysis engine: weighted
// shortest paths (Dijkstra), degree/closeness/betweenness centrality
// (Brandes), bridge and articulation-point detection (Tarjan), and
// edge-removal impact simulation. All functions treat the graph as
// read-only except SimulateEdgeRemoval, which works on a private clone.
package algorithms

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// ErrNoPath is returned by point-to-point queries when the destination is
// unreachable. Aggregate computations treat unreachable pairs as zero
// contribution instead of failing.
var ErrNoPath = errors.New("no path between nodes")

// pqItem is an entry in the Dijkstra priority queue.
type pqItem struct {
	node uint64
	dist float64
	seq  uint64 // insertion sequence, breaks equal-distance ties deterministically
}

// distHeap is a binary min-heap keyed by tentative distance.
type distHeap []pqItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) {
	*h = append(*h, x.(pqItem))
}

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SingleSourceDistances runs Dijkstra from source over non-negative weights
// and returns the shortest distance to every reachable node. Unreachable
// nodes are absent from the map; this convention is shared by closeness
// centrality and the impact sampler.
func SingleSourceDistances(g *graph.Graph, source uint64) map[uint64]float64 {
	dist := make(map[uint64]float64)
	if !g.HasNode(source) {
		return dist
	}

	var seq uint64
	pq := &distHeap{{node: source, dist: 0, seq: seq}}
	seen := map[uint64]float64{source: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		if _, settled := dist[current.node]; settled {
			continue
		}
		dist[current.node] = current.dist

		for _, next := range g.Neighbors(current.node) {
			if _, settled := dist[next]; settled {
				continue
			}
			weight, _ := g.EdgeWeight(current.node, next)
			candidate := current.dist + weight
			if best, ok := seen[next]; !ok || candidate < best {
				seen[next] = candidate
				seq++
				heap.Push(pq, pqItem{node: next, dist: candidate, seq: seq})
			}
		}
	}

	return dist
}

// ShortestPath returns one weighted shortest path between two nodes plus its
// total length. Among equal-length paths any valid one may be returned.
// Returns ErrNoPath when the destination is unreachable.
func ShortestPath(g *graph.Graph, from, to uint64) ([]uint64, float64, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, 0, fmt.Errorf("path %d-%d: %w", from, to, ErrNoPath)
	}
	if from == to {
		return []uint64{from}, 0, nil
	}

	dist := make(map[uint64]float64)
	parent := make(map[uint64]uint64)
	seen := map[uint64]float64{from: 0}

	var seq uint64
	pq := &distHeap{{node: from, dist: 0, seq: seq}}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		if _, settled := dist[current.node]; settled {
			continue
		}
		dist[current.node] = current.dist

		if current.node == to {
			break
		}

		for _, next := range g.Neighbors(current.node) {
			if _, settled := dist[next]; settled {
				continue
			}
			weight, _ := g.EdgeWeight(current.node, next)
			candidate := current.dist + weight
			if best, ok := seen[next]; !ok || candidate < best {
				seen[next] = candidate
				parent[next] = current.node
				seq++
				heap.Push(pq, pqItem{node: next, dist: candidate, seq: seq})
			}
		}
	}

	total, reached := dist[to]
	if !reached {
		return nil, 0, fmt.Errorf("path %d-%d: %w", from, to, ErrNoPath)
	}

	// Reconstruct from parent pointers.
	path := []uint64{to}
	for node := to; node != from; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}

// pathDAG is the Brandes-form shortest-path structure for one source:
// distances, shortest-path counts (sigma), immediate predecessor sets, and
// the settled nodes in non-decreasing distance order.
type pathDAG struct {
	order []uint64
	dist  map[uint64]float64
	sigma map[uint64]float64
	preds map[uint64][]uint64
}

// shortestPathDAG runs the path-counting Dijkstra needed by betweenness.
// On each relaxation sigma is accumulated through predecessor updates: a
// strictly shorter route replaces the predecessor set, an equal-length
// route extends it. Equality is exact floating-point comparison. Neighbor
// iteration is sorted and heap ties break by insertion order, so repeated
// runs produce bit-identical results.
func shortestPathDAG(g *graph.Graph, source uint64) *pathDAG {
	d := &pathDAG{
		order: make([]uint64, 0, g.NodeCount()),
		dist:  make(map[uint64]float64),
		sigma: map[uint64]float64{source: 1},
		preds: make(map[uint64][]uint64),
	}

	var seq uint64
	pq := &distHeap{{node: source, dist: 0, seq: seq}}
	seen := map[uint64]float64{source: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		v := current.node
		if _, settled := d.dist[v]; settled {
			continue
		}
		d.dist[v] = current.dist
		d.order = append(d.order, v)

		for _, w := range g.Neighbors(v) {
			if _, settled := d.dist[w]; settled {
				continue
			}
			weight, _ := g.EdgeWeight(v, w)
			candidate := current.dist + weight

			best, known := seen[w]
			switch {
			case !known || candidate < best:
				seen[w] = candidate
				d.sigma[w] = d.sigma[v]
				d.preds[w] = []uint64{v}
				seq++
				heap.Push(pq, pqItem{node: w, dist: candidate, seq: seq})
			case candidate == best:
				d.sigma[w] += d.sigma[v]
				d.preds[w] = append(d.preds[w], v)
			}
		}
	}

	return d
}

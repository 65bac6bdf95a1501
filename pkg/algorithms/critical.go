package algorithms

import (
	"sort"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
)

// CriticalPoints holds the structural vulnerabilities of one graph
// snapshot: bridges (edges whose removal splits a component) and
// articulation points (nodes whose removal splits a component).
type CriticalPoints struct {
	Bridges            []graph.EdgeKey
	ArticulationPoints []uint64
}

// FindCriticalPoints detects bridges and articulation points in a single
// DFS traversal with discovery/low-link bookkeeping (Tarjan, 1972).
// Runs in O(V + E), restarts from every unvisited node so disconnected
// graphs are handled, and skips the tree edge back to the parent exactly
// once (the model disallows multi-edges, so one skip suffices). Results are
// sorted for stable reports.
func FindCriticalPoints(g *graph.Graph) *CriticalPoints {
	disc := make(map[uint64]int, g.NodeCount())
	low := make(map[uint64]int, g.NodeCount())
	isArticulation := make(map[uint64]bool)
	bridges := make([]graph.EdgeKey, 0)
	timer := 0

	type frame struct {
		node          uint64
		parent        uint64
		hasParent     bool
		neighbors     []uint64
		next          int
		parentSkipped bool
	}

	for _, root := range g.Nodes() {
		if _, visited := disc[root]; visited {
			continue
		}

		disc[root] = timer
		low[root] = timer
		timer++
		rootChildren := 0

		// Iterative DFS keeps large street grids from overflowing the
		// goroutine stack.
		stack := []frame{{node: root, neighbors: g.Neighbors(root)}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			if f.next < len(f.neighbors) {
				w := f.neighbors[f.next]
				f.next++

				if f.hasParent && w == f.parent && !f.parentSkipped {
					f.parentSkipped = true
					continue
				}

				if d, visited := disc[w]; visited {
					// Back-edge: reachable discovery time bounds low-link.
					if d < low[f.node] {
						low[f.node] = d
					}
					continue
				}

				disc[w] = timer
				low[w] = timer
				timer++
				if len(stack) == 1 {
					rootChildren++
				}
				stack = append(stack, frame{
					node:      w,
					parent:    f.node,
					hasParent: true,
					neighbors: g.Neighbors(w),
				})
				continue
			}

			// All neighbors explored: pop and propagate low-link upward.
			child := *f
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}

			p := &stack[len(stack)-1]
			if low[child.node] < low[p.node] {
				low[p.node] = low[child.node]
			}
			if low[child.node] > disc[p.node] {
				bridges = append(bridges, graph.NewEdgeKey(p.node, child.node))
			}
			// Root articulation is decided by child count, not low-link.
			if len(stack) > 1 && low[child.node] >= disc[p.node] {
				isArticulation[p.node] = true
			}
		}

		if rootChildren > 1 {
			isArticulation[root] = true
		}
	}

	points := make([]uint64, 0, len(isArticulation))
	for n := range isArticulation {
		points = append(points, n)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	sort.Slice(bridges, func(i, j int) bool {
		if bridges[i].U != bridges[j].U {
			return bridges[i].U < bridges[j].U
		}
		return bridges[i].V < bridges[j].V
	})

	return &CriticalPoints{Bridges: bridges, ArticulationPoints: points}
}

// Bridges returns only the bridge set.
func Bridges(g *graph.Graph) []graph.EdgeKey {
	return FindCriticalPoints(g).Bridges
}

// ArticulationPoints returns only the articulation-point set.
func ArticulationPoints(g *graph.Graph) []uint64 {
	return FindCriticalPoints(g).ArticulationPoints
}

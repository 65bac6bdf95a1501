package graph

import "sort"

// IsConnected reports whether a single connected component spans all nodes.
// Empty and single-node graphs are considered connected.
func (g *Graph) IsConnected() bool {
	if len(g.adjacency) <= 1 {
		return true
	}

	var start uint64
	for id := range g.adjacency {
		start = id
		break
	}

	visited := make(map[uint64]bool, len(g.adjacency))
	queue := []uint64{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range g.adjacency[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(g.adjacency)
}

// ConnectedComponents partitions all nodes into disjoint reachability sets.
// Every node belongs to exactly one component and the component sizes sum to
// NodeCount. Components are ordered by their smallest member and each
// component slice is sorted ascending.
func (g *Graph) ConnectedComponents() [][]uint64 {
	visited := make(map[uint64]bool, len(g.adjacency))
	components := make([][]uint64, 0)

	// Iterating roots in ascending order makes the partition deterministic.
	for _, root := range g.Nodes() {
		if visited[root] {
			continue
		}

		component := make([]uint64, 0)
		queue := []uint64{root}
		visited[root] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)

			for _, next := range g.Neighbors(current) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}

	return components
}

// Package graph provides the weighted undirected graph model for the road
// network: intersections are nodes, road segments are edges weighted by
// physical length. Coordinates are carried as metadata for the reporting and
// visualization layers and are never consulted by the algorithms.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNegativeWeight is returned when an edge is inserted with weight < 0.
	ErrNegativeWeight = errors.New("edge weight must be non-negative")

	// ErrSelfLoop is returned when an edge connects a node to itself.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrEdgeNotFound is returned when an operation references a missing edge.
	ErrEdgeNotFound = errors.New("edge not found")
)

// EdgeKey identifies an undirected edge. U is always the smaller endpoint,
// so {u,v} and {v,u} map to the same key and callers never sort pairs.
type EdgeKey struct {
	U uint64
	V uint64
}

// NewEdgeKey builds an order-normalized key for the pair {u, v}.
func NewEdgeKey(u, v uint64) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{U: u, V: v}
}

// String formats the key as "u-v" for reports and error messages.
func (k EdgeKey) String() string {
	return fmt.Sprintf("%d-%d", k.U, k.V)
}

// Edge is an undirected edge together with its weight.
type Edge struct {
	Key    EdgeKey
	Weight float64
}

// Coordinate is a planar position for a node. Metadata only.
type Coordinate struct {
	X float64
	Y float64
}

// Graph is a weighted undirected simple graph backed by adjacency maps.
// Multi-edges are not modeled: re-adding an existing pair overwrites the
// weight (last write wins). The zero value is not usable; call New.
type Graph struct {
	adjacency map[uint64]map[uint64]float64
	coords    map[uint64]Coordinate
	edgeCount int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[uint64]map[uint64]float64),
		coords:    make(map[uint64]Coordinate),
	}
}

// AddNode ensures the node exists, with no incident edges. Adding an
// existing node is a no-op.
func (g *Graph) AddNode(id uint64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[uint64]float64)
	}
}

// AddEdge inserts the undirected edge {u, v} with the given weight,
// overwriting any previous weight for the pair. Endpoints are created
// implicitly. Negative weights and self-loops are rejected.
func (g *Graph) AddEdge(u, v uint64, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("edge %d-%d: %w (got %g)", u, v, ErrNegativeWeight, weight)
	}
	if u == v {
		return fmt.Errorf("edge %d-%d: %w", u, v, ErrSelfLoop)
	}

	g.AddNode(u)
	g.AddNode(v)

	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	return nil
}

// RemoveEdge deletes the undirected edge {u, v}. The endpoints remain.
func (g *Graph) RemoveEdge(u, v uint64) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("edge %d-%d: %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--
	return nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id uint64) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
func (g *Graph) HasEdge(u, v uint64) bool {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = neighbors[v]
	return ok
}

// EdgeWeight returns the weight of edge {u, v} and whether it exists.
func (g *Graph) EdgeWeight(u, v uint64) (float64, bool) {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	w, ok := neighbors[v]
	return w, ok
}

// SetCoordinate records the planar position of a node, creating the node if
// it does not exist yet.
func (g *Graph) SetCoordinate(id uint64, c Coordinate) {
	g.AddNode(id)
	g.coords[id] = c
}

// Coordinate returns the recorded position of a node, if any.
func (g *Graph) Coordinate(id uint64) (Coordinate, bool) {
	c, ok := g.coords[id]
	return c, ok
}

// Neighbors returns the nodes adjacent to id in ascending order. An unknown
// node yields an empty slice, not an error. The sorted order keeps every
// traversal in the analysis engine deterministic.
func (g *Graph) Neighbors(id uint64) []uint64 {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]uint64, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Degree returns the number of edges incident to the node (0 if unknown).
func (g *Graph) Degree(id uint64) int {
	return len(g.adjacency[id])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns all node identifiers in ascending order.
func (g *Graph) Nodes() []uint64 {
	out := make([]uint64, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns all edges sorted by key. Each undirected edge appears once.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, neighbors := range g.adjacency {
		for v, w := range neighbors {
			if u < v {
				out = append(out, Edge{Key: EdgeKey{U: u, V: v}, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.U != out[j].Key.U {
			return out[i].Key.U < out[j].Key.U
		}
		return out[i].Key.V < out[j].Key.V
	})
	return out
}

// Clone returns a deep copy. The impact simulator mutates the clone so the
// original stays valid for concurrent read-only computations.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adjacency: make(map[uint64]map[uint64]float64, len(g.adjacency)),
		coords:    make(map[uint64]Coordinate, len(g.coords)),
		edgeCount: g.edgeCount,
	}
	for u, neighbors := range g.adjacency {
		adj := make(map[uint64]float64, len(neighbors))
		for v, w := range neighbors {
			adj[v] = w
		}
		clone.adjacency[u] = adj
	}
	for id, c := range g.coords {
		clone.coords[id] = c
	}
	return clone
}

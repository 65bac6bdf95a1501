package algorithms

import (
	"context"
	"sync"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/parallel"
)

// brandesCentralityParallel distributes per-source Brandes accumulations
// across a worker pool and merges the partial sums elementwise. Sources are
// independent, so the reduction needs no ordering; the result is identical
// to the serial pass. Cancellation is checked before each source.
func brandesCentralityParallel(ctx context.Context, g *graph.Graph, workers int) (map[uint64]float64, map[graph.EdgeKey]float64, error) {
	nodes := g.Nodes()
	edges := g.Edges()

	nodeBetweenness := make(map[uint64]float64, len(nodes))
	edgeBetweenness := make(map[graph.EdgeKey]float64, len(edges))
	for _, n := range nodes {
		nodeBetweenness[n] = 0
	}
	for _, e := range edges {
		edgeBetweenness[e.Key] = 0
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	// Chunk sources so each task amortizes its local accumulators.
	chunkSize := (len(nodes) + pool.Workers() - 1) / pool.Workers()
	if chunkSize < 1 {
		chunkSize = 1
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for start := 0; start < len(nodes); start += chunkSize {
		end := start + chunkSize
		if end > len(nodes) {
			end = len(nodes)
		}
		chunk := nodes[start:end]

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()

			localNodes := make(map[uint64]float64)
			localEdges := make(map[graph.EdgeKey]float64)

			for _, source := range chunk {
				// The per-source loop is the cancellation point: one
				// source is the smallest unit of wasted work.
				if ctx.Err() != nil {
					return
				}
				accumulateBrandes(g, source, localNodes, localEdges)
			}

			mu.Lock()
			for id, v := range localNodes {
				nodeBetweenness[id] += v
			}
			for k, v := range localEdges {
				edgeBetweenness[k] += v
			}
			mu.Unlock()
		})
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return nodeBetweenness, edgeBetweenness, nil
}

// BetweennessCentralityParallel is BetweennessCentrality with the
// per-source accumulations spread over the given number of workers.
func BetweennessCentralityParallel(ctx context.Context, g *graph.Graph, workers int) (map[uint64]float64, error) {
	nodeBetweenness, _, err := brandesCentralityParallel(ctx, g, workers)
	if err != nil {
		return nil, err
	}
	normalizeNodeBetweenness(nodeBetweenness, g.NodeCount())
	return nodeBetweenness, nil
}

// ComputeAllCentralityParallel mirrors ComputeAllCentrality with the
// Brandes pass parallelized. Closeness and degree stay serial; their cost
// is dominated by the betweenness pass.
func ComputeAllCentralityParallel(ctx context.Context, g *graph.Graph, workers, topN int) (*CentralityResult, error) {
	nodeBetweenness, edgeBetweenness, err := brandesCentralityParallel(ctx, g, workers)
	if err != nil {
		return nil, err
	}

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
	}, nil
}

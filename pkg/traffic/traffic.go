// Package traffic runs an agent-based load simulation over the street
// network. A day's observed vehicle flow is split into hourly batches of
// agents; each agent picks a random origin and destination and drives the
// shortest weighted path, depositing its share of vehicles on every
// segment it crosses. Segment saturation is deposited load over hourly
// capacity.
package traffic

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/logging"
)

// ErrNoNodes is returned when the network has fewer than two nodes.
var ErrNoNodes = errors.New("traffic: network too small to route agents")

// Params configures one simulation run.
type Params struct {
	// DailyFlow is the total vehicle count observed for the simulated day.
	DailyFlow float64
	// VehiclesPerAgent sets how many vehicles one routed agent stands for.
	VehiclesPerAgent int
	// HourlyCapacity is the per-segment vehicle capacity per hour.
	HourlyCapacity float64
	// MaxAgents caps the agents routed per hour.
	MaxAgents int
	// Hours is the number of hourly batches, normally 24.
	Hours int
	// Seed feeds the origin/destination RNG.
	Seed int64
}

// EdgeLoad is the accumulated result for one segment.
type EdgeLoad struct {
	Edge       graph.EdgeKey
	Load       float64
	Saturation float64
}

// Result summarizes a simulation run.
type Result struct {
	// Loads covers every segment, sorted by descending saturation with
	// edge key as tiebreaker.
	Loads         []EdgeLoad
	AgentsRouted  int
	AgentsDropped int
	MaxSaturation float64
}

// Simulate runs the hourly agent batches. The context is checked between
// hours so long runs can be cancelled.
func Simulate(ctx context.Context, g *graph.Graph, p Params) (*Result, error) {
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return nil, ErrNoNodes
	}
	if p.VehiclesPerAgent <= 0 {
		p.VehiclesPerAgent = 1
	}
	if p.Hours <= 0 {
		p.Hours = 24
	}
	if p.HourlyCapacity <= 0 {
		p.HourlyCapacity = 1
	}

	hourlyFlow := p.DailyFlow / float64(p.Hours)
	rng := rand.New(rand.NewSource(p.Seed))

	load := make(map[graph.EdgeKey]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		load[e.Key] = 0
	}

	result := &Result{}
	for hour := 0; hour < p.Hours; hour++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		agents := int(hourlyFlow) / p.VehiclesPerAgent
		if p.MaxAgents > 0 && agents > p.MaxAgents {
			agents = p.MaxAgents
		}
		if agents == 0 {
			continue
		}
		// Each routed agent carries the hour's flow split evenly, so the
		// deposited total stays the observed flow even when MaxAgents
		// clips the batch.
		vehiclesPerAgent := hourlyFlow / float64(agents)

		for i := 0; i < agents; i++ {
			origin := nodes[rng.Intn(len(nodes))]
			dest := nodes[rng.Intn(len(nodes))]
			if origin == dest {
				result.AgentsDropped++
				continue
			}

			path, _, err := algorithms.ShortestPath(g, origin, dest)
			if err != nil {
				result.AgentsDropped++
				continue
			}
			result.AgentsRouted++

			for j := 0; j+1 < len(path); j++ {
				load[graph.NewEdgeKey(path[j], path[j+1])] += vehiclesPerAgent
			}
		}
	}

	result.Loads = make([]EdgeLoad, 0, len(load))
	for key, l := range load {
		sat := l / p.HourlyCapacity
		if sat > result.MaxSaturation {
			result.MaxSaturation = sat
		}
		result.Loads = append(result.Loads, EdgeLoad{Edge: key, Load: l, Saturation: sat})
	}
	sort.Slice(result.Loads, func(i, j int) bool {
		a, b := result.Loads[i], result.Loads[j]
		if a.Saturation != b.Saturation {
			return a.Saturation > b.Saturation
		}
		if a.Edge.U != b.Edge.U {
			return a.Edge.U < b.Edge.U
		}
		return a.Edge.V < b.Edge.V
	})

	logging.Info("traffic simulation finished",
		logging.Component("traffic"),
		logging.Int("agents_routed", result.AgentsRouted),
		logging.Int("agents_dropped", result.AgentsDropped),
		logging.Float64("max_saturation", result.MaxSaturation))

	return result, nil
}

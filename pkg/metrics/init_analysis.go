package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadnet_graph_nodes_total",
			Help: "Number of intersections in the loaded network",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadnet_graph_edges_total",
			Help: "Number of street segments in the loaded network",
		},
	)
}

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadnet_analysis_runs_total",
			Help: "Total number of analysis stage executions",
		},
		[]string{"stage", "status"},
	)

	r.AnalysisStageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadnet_analysis_stage_duration_seconds",
			Help:    "Analysis stage duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 5.0, 30.0, 60.0, 300.0},
		},
		[]string{"stage"},
	)

	r.BridgesFound = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadnet_bridges_found",
			Help: "Bridges detected in the last structural analysis",
		},
	)

	r.ArticulationPoints = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadnet_articulation_points_found",
			Help: "Articulation points detected in the last structural analysis",
		},
	)
}

func (r *Registry) initQueryMetrics() {
	r.ShortestPathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadnet_shortest_path_queries_total",
			Help: "Total number of shortest path computations",
		},
		[]string{"status"},
	)

	r.ImpactSimulationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "roadnet_impact_simulations_total",
			Help: "Total number of edge removal simulations",
		},
	)
}

func (r *Registry) initTrafficMetrics() {
	r.TrafficAgentsRouted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "roadnet_traffic_agents_routed_total",
			Help: "Total number of simulated traffic agents routed",
		},
	)

	r.TrafficSaturatedEdge = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadnet_traffic_max_saturation",
			Help: "Highest edge saturation seen in the last traffic run",
		},
	)
}

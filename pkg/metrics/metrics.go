package metrics

import (
	"time"
)

// SetGraphSize records the loaded network's dimensions
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// RecordStage records one analysis stage execution with its duration
func (r *Registry) RecordStage(stage, status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(stage, status).Inc()
	r.AnalysisStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordCriticalPoints records the structural analysis findings
func (r *Registry) RecordCriticalPoints(bridges, articulationPoints int) {
	r.BridgesFound.Set(float64(bridges))
	r.ArticulationPoints.Set(float64(articulationPoints))
}

// RecordShortestPathQuery records a shortest path computation
func (r *Registry) RecordShortestPathQuery(status string) {
	r.ShortestPathQueriesTotal.WithLabelValues(status).Inc()
}

// RecordImpactSimulation records one edge removal simulation
func (r *Registry) RecordImpactSimulation() {
	r.ImpactSimulationsTotal.Inc()
}

// RecordTrafficRun records a traffic simulation outcome
func (r *Registry) RecordTrafficRun(agentsRouted int, maxSaturation float64) {
	r.TrafficAgentsRouted.Add(float64(agentsRouted))
	r.TrafficSaturatedEdge.Set(maxSaturation)
}

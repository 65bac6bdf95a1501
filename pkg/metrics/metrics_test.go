package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.GraphNodesTotal == nil {
		t.Error("GraphNodesTotal not initialized")
	}
	if r.AnalysisRunsTotal == nil {
		t.Error("AnalysisRunsTotal not initialized")
	}
	if r.ShortestPathQueriesTotal == nil {
		t.Error("ShortestPathQueriesTotal not initialized")
	}
	if r.TrafficAgentsRouted == nil {
		t.Error("TrafficAgentsRouted not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordStage(t *testing.T) {
	r := NewRegistry()

	r.RecordStage("centrality", "success", 2*time.Second)
	r.RecordStage("centrality", "success", 3*time.Second)
	r.RecordStage("structural", "error", 100*time.Millisecond)

	counter, err := r.AnalysisRunsTotal.GetMetricWithLabelValues("centrality", "success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.GetCounter().GetValue() != 2 {
		t.Errorf("Expected 2 centrality runs, got %v", metric.GetCounter().GetValue())
	}
}

func TestSetGraphSize(t *testing.T) {
	r := NewRegistry()

	r.SetGraphSize(1000, 1500)

	var metric dto.Metric
	if err := r.GraphNodesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.GetGauge().GetValue() != 1000 {
		t.Errorf("Expected 1000 nodes, got %v", metric.GetGauge().GetValue())
	}
	if err := r.GraphEdgesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.GetGauge().GetValue() != 1500 {
		t.Errorf("Expected 1500 edges, got %v", metric.GetGauge().GetValue())
	}
}

func TestRecordShortestPathQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordShortestPathQuery("success")
	r.RecordShortestPathQuery("success")
	r.RecordShortestPathQuery("no_path")

	counter, err := r.ShortestPathQueriesTotal.GetMetricWithLabelValues("no_path")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.GetCounter().GetValue() != 1 {
		t.Errorf("Expected 1 no_path query, got %v", metric.GetCounter().GetValue())
	}
}

func TestRecordTrafficRun(t *testing.T) {
	r := NewRegistry()

	r.RecordTrafficRun(500, 1.25)

	var metric dto.Metric
	if err := r.TrafficSaturatedEdge.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.GetGauge().GetValue() != 1.25 {
		t.Errorf("Expected max saturation 1.25, got %v", metric.GetGauge().GetValue())
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roadnet.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoad_OverridesDefaults tests that YAML values win over defaults and
// omitted sections keep them.
func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
network:
  edge_info: data/edges.txt
analysis:
  workers: 8
output:
  dir: results
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Network.EdgeInfo != "data/edges.txt" {
		t.Errorf("expected edge_info from file, got %q", cfg.Network.EdgeInfo)
	}
	if cfg.Analysis.Workers != 8 {
		t.Errorf("expected workers 8, got %d", cfg.Analysis.Workers)
	}
	if cfg.Analysis.TopN != 10 {
		t.Errorf("expected default top_n 10, got %d", cfg.Analysis.TopN)
	}
	if cfg.Analysis.Impact.SampleNodes != 20 {
		t.Errorf("expected default sample_nodes 20, got %d", cfg.Analysis.Impact.SampleNodes)
	}
	if cfg.Output.Dir != "results" {
		t.Errorf("expected output dir from file, got %q", cfg.Output.Dir)
	}
}

// TestLoad_MissingEdgeInfo tests the required-field validation.
func TestLoad_MissingEdgeInfo(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: out
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "EdgeInfo") {
		t.Errorf("expected the error to name EdgeInfo, got %v", err)
	}
}

// TestLoad_InvalidSampleNodes tests the min=2 constraint.
func TestLoad_InvalidSampleNodes(t *testing.T) {
	path := writeConfig(t, `
network:
  edge_info: data/edges.txt
analysis:
  impact:
    sample_nodes: 1
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error for sample_nodes=1")
	}
}

// TestValidate_TrafficNeedsFlowFile tests the cross-field constraint.
func TestValidate_TrafficNeedsFlowFile(t *testing.T) {
	cfg := Default()
	cfg.Network.EdgeInfo = "edges.txt"
	cfg.Traffic.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for enabled traffic without a flow file")
	}
	cfg.Traffic.FlowFile = "flow.csv"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with flow file set: %v", err)
	}
}

// TestLoad_MalformedYAML tests the parse error path.
func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "network: [broken")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

// TestLoad_MissingFile tests the read error path.
func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/roadnet.yaml"); err == nil {
		t.Fatal("expected a read error")
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/algorithms"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/config"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/ingest"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/logging"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/metrics"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/report"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/traffic"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/viz"
)

func main() {
	configPath := flag.String("config", "roadnet.yaml", "Pipeline configuration file")
	stage := flag.String("stage", "all", "Stage to run: all, exploratory, structural, centrality, impact, traffic")
	workers := flag.Int("workers", 0, "Override analysis worker count")
	outDir := flag.String("out", "", "Override output directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	runID := uuid.New().String()
	logger := logging.DefaultLogger().With(logging.String("run_id", runID))

	fmt.Println("🛣️  Road Network Analysis - Starting...")
	fmt.Printf("   Run ID: %s\n", runID)

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	g, stats, err := ingest.LoadNetwork(cfg.Network.EdgeInfo, cfg.Network.NetFile)
	if err != nil {
		log.Fatalf("Failed to load network: %v", err)
	}
	metrics.DefaultRegistry().SetGraphSize(g.NodeCount(), g.EdgeCount())

	fmt.Printf("✅ Network loaded: %d intersections, %d segments (%d lines skipped)\n",
		g.NodeCount(), g.EdgeCount(), stats.Skipped)

	ctx := context.Background()
	run := &pipeline{ctx: ctx, cfg: cfg, g: g, logger: logger}

	stages := map[string]func() error{
		"exploratory": run.exploratory,
		"structural":  run.structural,
		"centrality":  run.centrality,
		"impact":      run.impact,
		"traffic":     run.traffic,
	}

	var order []string
	if *stage == "all" {
		order = []string{"exploratory", "structural", "centrality", "impact"}
		if cfg.Traffic.Enabled {
			order = append(order, "traffic")
		}
	} else {
		if _, ok := stages[*stage]; !ok {
			log.Fatalf("Unknown stage %q", *stage)
		}
		order = []string{*stage}
	}

	for _, name := range order {
		start := time.Now()
		err := stages[name]()
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.DefaultRegistry().RecordStage(name, status, time.Since(start))
		if err != nil {
			log.Fatalf("Stage %s failed: %v", name, err)
		}
	}

	fmt.Printf("\n🏁 Done. Results in %s\n", cfg.Output.Dir)
}

// pipeline carries the loaded network through the analysis stages. Stages
// that depend on an earlier one recompute what they need, so each can also
// run standalone.
type pipeline struct {
	ctx    context.Context
	cfg    *config.Config
	g      *graph.Graph
	logger logging.Logger
}

func (p *pipeline) outPath(name string) string {
	return filepath.Join(p.cfg.Output.Dir, name)
}

func (p *pipeline) exploratory() error {
	fmt.Println("\n📊 Stage 1: exploratory analysis...")
	timer := logging.StartTimer(p.logger, "exploratory stage", logging.Stage("exploratory"))

	summary := report.Summarize(p.g)
	report.WriteSummaryText(os.Stdout, summary)

	if p.cfg.Output.Text {
		f, err := os.Create(p.outPath("01_exploratory.txt"))
		if err != nil {
			timer.EndError(err)
			return err
		}
		defer f.Close()
		if err := report.WriteSummaryText(f, summary); err != nil {
			timer.EndError(err)
			return err
		}
	}

	if p.cfg.Output.Graphviz {
		dot := viz.ToDOT(p.g, viz.Options{})
		if err := viz.WriteSVG(p.ctx, dot, p.outPath("01_network.svg")); err != nil {
			timer.EndError(err)
			return err
		}
	}

	timer.End()
	return nil
}

func (p *pipeline) structural() error {
	fmt.Println("\n🌉 Stage 2: bridges and articulation points...")
	timer := logging.StartTimer(p.logger, "structural stage", logging.Stage("structural"))

	cp := algorithms.FindCriticalPoints(p.g)
	metrics.DefaultRegistry().RecordCriticalPoints(len(cp.Bridges), len(cp.ArticulationPoints))
	fmt.Printf("   Found %d bridges and %d articulation points\n",
		len(cp.Bridges), len(cp.ArticulationPoints))

	if p.cfg.Output.Text {
		f, err := os.Create(p.outPath("02_structural.txt"))
		if err != nil {
			timer.EndError(err)
			return err
		}
		defer f.Close()
		if err := report.WriteCriticalPointsText(f, p.g, cp); err != nil {
			timer.EndError(err)
			return err
		}
	}

	if p.cfg.Output.Graphviz {
		dot := viz.ToDOT(p.g, viz.Options{Highlight: cp.Bridges})
		if err := viz.WriteSVG(p.ctx, dot, p.outPath("02_bridges.svg")); err != nil {
			timer.EndError(err)
			return err
		}
	}

	timer.End()
	return nil
}

func (p *pipeline) centrality() error {
	fmt.Println("\n🎯 Stage 3: centrality measures...")
	timer := logging.StartTimer(p.logger, "centrality stage", logging.Stage("centrality"))

	res, err := algorithms.ComputeAllCentralityParallel(
		p.ctx, p.g, p.cfg.Analysis.Workers, p.cfg.Analysis.TopN)
	if err != nil {
		timer.EndError(err)
		return err
	}
	corr := report.Correlate(p.g, res.Degree, res.Betweenness, res.Closeness)

	report.WriteCentralityText(os.Stdout, res, corr)

	if p.cfg.Output.Text {
		f, err := os.Create(p.outPath("03_centrality.txt"))
		if err != nil {
			timer.EndError(err)
			return err
		}
		defer f.Close()
		if err := report.WriteCentralityText(f, res, corr); err != nil {
			timer.EndError(err)
			return err
		}
	}

	if p.cfg.Output.CSV {
		if err := report.WriteNodeMetricsCSV(p.outPath("03_metricas_nodes_centralidades.csv"), p.g, res); err != nil {
			timer.EndError(err)
			return err
		}
		if err := report.WriteEdgeMetricsCSV(p.outPath("04_metricas_edges_centralidades.csv"), p.g, res.EdgeBetweenness); err != nil {
			timer.EndError(err)
			return err
		}
	}

	if p.cfg.Output.Graphviz {
		dot := viz.ToDOT(p.g, viz.Options{
			NodeScores: res.Betweenness,
			EdgeScores: res.EdgeBetweenness,
		})
		if err := viz.WriteSVG(p.ctx, dot, p.outPath("03_centrality.svg")); err != nil {
			timer.EndError(err)
			return err
		}
	}

	timer.End()
	return nil
}

func (p *pipeline) impact() error {
	fmt.Println("\n💥 Stage 4: edge removal impact...")
	timer := logging.StartTimer(p.logger, "impact stage", logging.Stage("impact"))

	// Rank the bridges by edge betweenness and simulate cutting the
	// heaviest ones.
	cp := algorithms.FindCriticalPoints(p.g)
	if len(cp.Bridges) == 0 {
		fmt.Println("   No bridges: the network survives any single segment removal")
		timer.End()
		return nil
	}

	ebc := algorithms.EdgeBetweennessCentrality(p.g)
	victims := topBridges(cp.Bridges, ebc, p.cfg.Analysis.Impact.TopBridges)

	var out *os.File
	if p.cfg.Output.Text {
		f, err := os.Create(p.outPath("04_impact.txt"))
		if err != nil {
			timer.EndError(err)
			return err
		}
		defer f.Close()
		out = f
	}

	opts := algorithms.ImpactOptions{
		SampleNodes: p.cfg.Analysis.Impact.SampleNodes,
		Seed:        p.cfg.Analysis.Impact.Seed,
	}
	for _, b := range victims {
		res, err := algorithms.SimulateEdgeRemoval(p.g, b.U, b.V, opts)
		if err != nil {
			timer.EndError(err)
			return err
		}
		metrics.DefaultRegistry().RecordImpactSimulation()

		fmt.Printf("   Segment %d-%d: %d -> %d components, %d pairs disconnected\n",
			b.U, b.V, res.ComponentsBefore, res.ComponentsAfter, res.DisconnectedPairs)
		if out != nil {
			if err := report.WriteImpactText(out, res); err != nil {
				timer.EndError(err)
				return err
			}
			fmt.Fprintln(out)
		}
	}

	timer.End()
	return nil
}

func (p *pipeline) traffic() error {
	fmt.Println("\n🚗 Stage 5: traffic simulation...")
	timer := logging.StartTimer(p.logger, "traffic stage", logging.Stage("traffic"))

	flows, err := ingest.ReadDailyFlow(p.cfg.Traffic.FlowFile)
	if err != nil {
		timer.EndError(err)
		return err
	}
	dailyFlow, err := ingest.FlowForDay(flows, p.cfg.Traffic.Day)
	if err != nil {
		timer.EndError(err)
		return err
	}

	res, err := traffic.Simulate(p.ctx, p.g, traffic.Params{
		DailyFlow:        dailyFlow,
		VehiclesPerAgent: p.cfg.Traffic.VehiclesPerAgent,
		HourlyCapacity:   p.cfg.Traffic.HourlyCapacity,
		MaxAgents:        p.cfg.Traffic.MaxAgents,
		Hours:            p.cfg.Traffic.Hours,
		Seed:             p.cfg.Traffic.Seed,
	})
	if err != nil {
		timer.EndError(err)
		return err
	}
	metrics.DefaultRegistry().RecordTrafficRun(res.AgentsRouted, res.MaxSaturation)

	fmt.Printf("   Routed %d agents, max saturation %.3f\n",
		res.AgentsRouted, res.MaxSaturation)

	if p.cfg.Output.CSV {
		if err := report.WriteTrafficCSV(p.outPath("resultado_fluxo.csv"), res.Loads); err != nil {
			timer.EndError(err)
			return err
		}
	}

	timer.End()
	return nil
}

// topBridges orders the bridges by descending edge betweenness and keeps
// the first n.
func topBridges(bridges []graph.EdgeKey, ebc map[graph.EdgeKey]float64, n int) []graph.EdgeKey {
	ranked := append([]graph.EdgeKey(nil), bridges...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ebc[ranked[i]] > ebc[ranked[j]]
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

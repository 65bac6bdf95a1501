// Package ingest reads the street-network input files and builds the graph.
//
// The primary input is the segment file, one street segment per line:
//
//	id n1 x1 y1 n2 x2 y2 length
//
// where n1/n2 are intersection IDs, x/y their projected coordinates, and
// length the segment length in meters. Blank lines and lines starting with
// '#' are skipped. A companion ".net" file listing bare endpoint pairs can
// cross-check the segment file.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/graph"
	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/logging"
)

// ErrEmptyNetwork is returned when no usable segment survives parsing.
var ErrEmptyNetwork = errors.New("ingest: no valid segments found")

// Segment is one parsed line of the segment file.
type Segment struct {
	ID     uint64
	Node1  uint64
	Coord1 graph.Coordinate
	Node2  uint64
	Coord2 graph.Coordinate
	Length float64
}

// ParseStats counts what happened during a parse.
type ParseStats struct {
	Lines     int
	Segments  int
	Skipped   int
	SelfLoops int
}

// ReadSegments parses the segment file. Malformed lines are skipped and
// counted rather than failing the load; field surveys produce them.
func ReadSegments(path string) ([]Segment, ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("open segment file: %w", err)
	}
	defer f.Close()

	var segments []Segment
	var stats ParseStats

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Lines++

		seg, err := parseSegmentLine(line)
		if err != nil {
			stats.Skipped++
			logging.Debug("skipping malformed segment line",
				logging.Component("ingest"), logging.Error(err))
			continue
		}
		if seg.Node1 == seg.Node2 {
			stats.SelfLoops++
			continue
		}
		segments = append(segments, seg)
		stats.Segments++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read segment file: %w", err)
	}
	if len(segments) == 0 {
		return nil, stats, ErrEmptyNetwork
	}
	return segments, stats, nil
}

func parseSegmentLine(line string) (Segment, error) {
	fields := strings.Fields(line)
	if len(fields) != 8 {
		return Segment{}, fmt.Errorf("expected 8 fields, got %d", len(fields))
	}

	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Segment{}, fmt.Errorf("segment id %q: %w", fields[0], err)
	}
	n1, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Segment{}, fmt.Errorf("node1 %q: %w", fields[1], err)
	}
	x1, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Segment{}, fmt.Errorf("x1 %q: %w", fields[2], err)
	}
	y1, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Segment{}, fmt.Errorf("y1 %q: %w", fields[3], err)
	}
	n2, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return Segment{}, fmt.Errorf("node2 %q: %w", fields[4], err)
	}
	x2, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Segment{}, fmt.Errorf("x2 %q: %w", fields[5], err)
	}
	y2, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Segment{}, fmt.Errorf("y2 %q: %w", fields[6], err)
	}
	length, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return Segment{}, fmt.Errorf("length %q: %w", fields[7], err)
	}
	if length < 0 {
		return Segment{}, fmt.Errorf("negative length %v", length)
	}

	return Segment{
		ID:     id,
		Node1:  n1,
		Coord1: graph.Coordinate{X: x1, Y: y1},
		Node2:  n2,
		Coord2: graph.Coordinate{X: x2, Y: y2},
		Length: length,
	}, nil
}

// ReadPairs parses a ".net" endpoint pair file: two node IDs per line.
func ReadPairs(path string) ([][2]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pair file: %w", err)
	}
	defer f.Close()

	var pairs [][2]uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		a, err1 := strconv.ParseUint(fields[0], 10, 64)
		b, err2 := strconv.ParseUint(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pairs = append(pairs, [2]uint64{a, b})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pair file: %w", err)
	}
	return pairs, nil
}

// BuildGraph assembles the weighted graph from parsed segments. Duplicate
// segments between the same endpoints keep the last length seen.
func BuildGraph(segments []Segment) (*graph.Graph, error) {
	g := graph.New()
	for _, seg := range segments {
		if err := g.AddEdge(seg.Node1, seg.Node2, seg.Length); err != nil {
			return nil, fmt.Errorf("segment %d: %w", seg.ID, err)
		}
		g.SetCoordinate(seg.Node1, seg.Coord1)
		g.SetCoordinate(seg.Node2, seg.Coord2)
	}
	return g, nil
}

// LoadNetwork reads the segment file, builds the graph, and, when a pair
// file is given, warns about pairs the segment file does not cover.
func LoadNetwork(edgeInfoPath, netPath string) (*graph.Graph, ParseStats, error) {
	segments, stats, err := ReadSegments(edgeInfoPath)
	if err != nil {
		return nil, stats, err
	}

	g, err := BuildGraph(segments)
	if err != nil {
		return nil, stats, err
	}

	if netPath != "" {
		pairs, err := ReadPairs(netPath)
		if err != nil {
			return nil, stats, err
		}
		missing := 0
		for _, p := range pairs {
			if p[0] != p[1] && !g.HasEdge(p[0], p[1]) {
				missing++
			}
		}
		if missing > 0 {
			logging.Warn("pair file lists segments absent from the segment file",
				logging.Component("ingest"), logging.Count(missing))
		}
	}

	logging.Info("network loaded",
		logging.Component("ingest"),
		logging.Path(edgeInfoPath),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("skipped_lines", stats.Skipped))

	return g, stats, nil
}

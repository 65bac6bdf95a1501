package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DailyFlow is one row of the traffic count file: total vehicles observed
// on one day.
type DailyFlow struct {
	Day  int
	Flow float64
}

// ReadDailyFlow parses the daily vehicle count CSV. The file has a header
// row naming a day column and a flow column; both ',' and ';' delimited
// variants occur in the source data, so the delimiter is sniffed from the
// header line.
func ReadDailyFlow(path string) ([]DailyFlow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open flow file: %w", err)
	}

	comma := ','
	if idx := strings.IndexByte(string(data), '\n'); idx > 0 {
		if strings.Count(string(data[:idx]), ";") > strings.Count(string(data[:idx]), ",") {
			comma = ';'
		}
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = comma
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse flow file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("flow file has no data rows")
	}

	dayCol, flowCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "dia", "day":
			dayCol = i
		case "fluxo", "flow", "volume":
			flowCol = i
		}
	}
	if dayCol < 0 || flowCol < 0 {
		return nil, fmt.Errorf("flow file header must name day and flow columns, got %v", records[0])
	}

	var flows []DailyFlow
	for _, rec := range records[1:] {
		if len(rec) <= dayCol || len(rec) <= flowCol {
			continue
		}
		day, err := strconv.Atoi(strings.TrimSpace(rec[dayCol]))
		if err != nil {
			continue
		}
		flow, err := strconv.ParseFloat(strings.TrimSpace(rec[flowCol]), 64)
		if err != nil {
			continue
		}
		flows = append(flows, DailyFlow{Day: day, Flow: flow})
	}
	if len(flows) == 0 {
		return nil, fmt.Errorf("flow file has no parsable rows")
	}
	return flows, nil
}

// FlowForDay returns the flow recorded for the given day.
func FlowForDay(flows []DailyFlow, day int) (float64, error) {
	for _, f := range flows {
		if f.Day == day {
			return f.Flow, nil
		}
	}
	return 0, fmt.Errorf("no flow recorded for day %d", day)
}

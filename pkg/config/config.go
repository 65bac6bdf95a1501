// Package config loads and validates the pipeline configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// NetworkConfig names the input files describing the street network.
type NetworkConfig struct {
	// EdgeInfo is the whitespace-delimited segment file:
	// id n1 x1 y1 n2 x2 y2 length.
	EdgeInfo string `yaml:"edge_info" validate:"required"`
	// NetFile is an optional endpoint pair list used to cross-check the
	// segment file.
	NetFile string `yaml:"net_file"`
}

// ImpactConfig tunes the edge removal simulation.
type ImpactConfig struct {
	SampleNodes int   `yaml:"sample_nodes" validate:"omitempty,min=2"`
	Seed        int64 `yaml:"seed"`
	// TopBridges is how many of the highest-betweenness bridges get a
	// removal simulation each run.
	TopBridges int `yaml:"top_bridges" validate:"omitempty,min=1"`
}

// AnalysisConfig tunes the centrality and structural stages.
type AnalysisConfig struct {
	Workers int          `yaml:"workers" validate:"omitempty,min=1"`
	TopN    int          `yaml:"top_n" validate:"omitempty,min=1"`
	Impact  ImpactConfig `yaml:"impact"`
}

// TrafficConfig tunes the agent-based traffic simulation.
type TrafficConfig struct {
	Enabled bool `yaml:"enabled"`
	// FlowFile is a CSV of daily vehicle counts; Day selects the row.
	FlowFile         string  `yaml:"flow_file"`
	Day              int     `yaml:"day" validate:"omitempty,min=1"`
	VehiclesPerAgent int     `yaml:"vehicles_per_agent" validate:"omitempty,min=1"`
	HourlyCapacity   float64 `yaml:"hourly_capacity" validate:"omitempty,gt=0"`
	MaxAgents        int     `yaml:"max_agents" validate:"omitempty,min=1"`
	Hours            int     `yaml:"hours" validate:"omitempty,min=1,max=24"`
	Seed             int64   `yaml:"seed"`
}

// OutputConfig names where reports and visualizations land.
type OutputConfig struct {
	Dir       string `yaml:"dir" validate:"required"`
	CSV       bool   `yaml:"csv"`
	Text      bool   `yaml:"text"`
	Graphviz  bool   `yaml:"graphviz"`
	ImageSize int    `yaml:"image_size" validate:"omitempty,min=100"`
}

// Config is the full pipeline configuration.
type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Traffic  TrafficConfig  `yaml:"traffic"`
	Output   OutputConfig   `yaml:"output"`
}

// Default returns a configuration with working values for everything the
// YAML file may omit. Network.EdgeInfo has no sensible default and must be
// supplied.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers: 4,
			TopN:    10,
			Impact: ImpactConfig{
				SampleNodes: 20,
				Seed:        1,
				TopBridges:  5,
			},
		},
		Traffic: TrafficConfig{
			Day:              1,
			VehiclesPerAgent: 50,
			HourlyCapacity:   1800,
			MaxAgents:        5000,
			Hours:            24,
			Seed:             1,
		},
		Output: OutputConfig{
			Dir:       "out",
			CSV:       true,
			Text:      true,
			ImageSize: 2000,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and cross-field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Traffic.Enabled && c.Traffic.FlowFile == "" {
		return errors.New("Traffic.FlowFile: required when traffic is enabled")
	}
	return nil
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}

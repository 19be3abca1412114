package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tsawler/proxima"
)

// Config is the TOML configuration file accepted by --config. Every field is
// optional; unset fields keep the analyzer defaults.
type Config struct {
	ProximityThreshold  *float64 `toml:"proximity_threshold"`
	MinGroupSize        *int     `toml:"min_group_size"`
	RespectContainers   *bool    `toml:"respect_containers"`
	ResolveOverlaps     *bool    `toml:"resolve_overlaps"`
	ConfidenceThreshold *float64 `toml:"confidence_threshold"`
	Detectors           []string `toml:"detectors"`
	AtomicContainers    []string `toml:"atomic_containers"`
}

// loadConfig reads a TOML config file.
func loadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config: %w", err)
	}
	return config, nil
}

// apply layers the config's set fields onto an analyzer chain.
func (c Config) apply(a *proxima.Analyzer) *proxima.Analyzer {
	if c.ProximityThreshold != nil {
		a = a.ProximityThreshold(*c.ProximityThreshold)
	}
	if c.MinGroupSize != nil {
		a = a.MinGroupSize(*c.MinGroupSize)
	}
	if c.RespectContainers != nil {
		a = a.RespectContainerBoundaries(*c.RespectContainers)
	}
	if c.ResolveOverlaps != nil && *c.ResolveOverlaps {
		a = a.ResolveOverlaps()
	}
	if c.ConfidenceThreshold != nil {
		a = a.ConfidenceThreshold(*c.ConfidenceThreshold)
	}
	if len(c.Detectors) > 0 {
		a = a.Detectors(c.Detectors...)
	}
	if len(c.AtomicContainers) > 0 {
		a = a.AtomicContainers(c.AtomicContainers...)
	}
	return a
}

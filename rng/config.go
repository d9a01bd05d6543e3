package rng

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds provider settings, loadable from a YAML file.
// Zero values mean "use the documented default".
type ProviderConfig struct {
	InitialSeed            []uint64 `yaml:"initial_seed"`             // six words, or empty for the default seed
	DefaultStreamNumber    int      `yaml:"default_stream_number"`    // 1-based; 0 = stream 1
	StreamWarningThreshold int      `yaml:"stream_warning_threshold"` // 0 = DefaultStreamWarningThreshold
}

// LoadProviderConfig reads and parses a YAML provider configuration file.
func LoadProviderConfig(path string) (*ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading provider config: %w", err)
	}
	var cfg ProviderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing provider config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate applies the seed and stream-number rules before any
// provider state is built from the config.
func (c *ProviderConfig) Validate() error {
	if len(c.InitialSeed) != 0 {
		if len(c.InitialSeed) != 6 {
			return fmt.Errorf("initial_seed needs exactly 6 words, got %d", len(c.InitialSeed))
		}
		seed, _ := c.seed()
		if err := seed.Validate(); err != nil {
			return err
		}
	}
	if c.DefaultStreamNumber < 0 {
		return &InvalidStreamNumberError{Number: c.DefaultStreamNumber}
	}
	if c.StreamWarningThreshold < 0 {
		return fmt.Errorf("stream_warning_threshold must be non-negative, got %d", c.StreamWarningThreshold)
	}
	return nil
}

func (c *ProviderConfig) seed() (GeneratorState, bool) {
	if len(c.InitialSeed) != 6 {
		return defaultInitialSeed, false
	}
	var s GeneratorState
	copy(s[:], c.InitialSeed)
	return s, true
}

// NewStreamProviderFromConfig builds a provider from a validated
// configuration.
func NewStreamProviderFromConfig(cfg *ProviderConfig) (*StreamProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, _ := cfg.seed()
	p, err := NewStreamProviderWithSeed(seed)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultStreamNumber > 0 {
		p.defaultStream = cfg.DefaultStreamNumber
	}
	if cfg.StreamWarningThreshold > 0 {
		p.warningThreshold = cfg.StreamWarningThreshold
	}
	return p, nil
}

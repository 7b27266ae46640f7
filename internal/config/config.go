package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SourceRoot string   `toml:"source_root"`
	Extension  string   `toml:"extension"`
	Exclude    Exclude  `toml:"exclude"`
	Analysis   Analysis `toml:"analysis"`
	Output     Output   `toml:"output"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Analysis struct {
	Mode string `toml:"mode"` // namespace, class or system

	// Namespace assigned to units without a namespace declaration
	// (class/system modes only; namespace mode skips such units).
	DefaultNamespace string `toml:"default_namespace"`

	// Import prefixes treated as framework code, never as custom dependencies.
	FrameworkPrefixes []string `toml:"framework_prefixes"`

	// How many lines the extractor scans backward when deciding whether a
	// type declaration is nested inside another one.
	NestingLookback int `toml:"nesting_lookback"`

	// Name suffixes excluded from the system table (helper types that match
	// the system declaration patterns but are not systems).
	SystemSuffixes []string `toml:"system_suffixes"`
}

type Output struct {
	DOT      string `toml:"dot"`
	Terminal bool   `toml:"terminal"`
}

const (
	ModeNamespace = "namespace"
	ModeClass     = "class"
	ModeSystem    = "system"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = "Assets/Scripts"
	}
	if cfg.Extension == "" {
		cfg.Extension = ".cs"
	}
	if cfg.Analysis.Mode == "" {
		cfg.Analysis.Mode = ModeNamespace
	}
	if cfg.Analysis.DefaultNamespace == "" {
		cfg.Analysis.DefaultNamespace = "Global"
	}
	if len(cfg.Analysis.FrameworkPrefixes) == 0 {
		cfg.Analysis.FrameworkPrefixes = []string{"System", "Unity", "UnityEngine"}
	}
	if cfg.Analysis.NestingLookback == 0 {
		cfg.Analysis.NestingLookback = 50
	}
	if len(cfg.Analysis.SystemSuffixes) == 0 {
		cfg.Analysis.SystemSuffixes = []string{"Authoring", "Baker", "Data"}
	}
}

func (c *Config) Validate() error {
	switch c.Analysis.Mode {
	case ModeNamespace, ModeClass, ModeSystem:
	default:
		return fmt.Errorf("unknown analysis mode %q (want namespace, class or system)", c.Analysis.Mode)
	}
	return nil
}

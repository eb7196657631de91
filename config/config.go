package config

import (
	"os"

	"github.com/solace-health/crisis-detector/logger"
)

// Config is the full detector configuration.
type Config struct {
	Logging   logger.Config `yaml:"logging"`
	Lexicon   Lexicon       `yaml:"lexicon"`
	Responses Responses     `yaml:"responses"`
	Detection Detection     `yaml:"detection"`
}

// Lexicon configures where trigger phrases are read from.
// An empty path uses the embedded default lexicon.
type Lexicon struct {
	Path string `yaml:"path" env:"CRISIS_LEXICON_PATH"`
}

// Responses configures where response bundles are read from.
// An empty path uses the embedded defaults.
type Responses struct {
	Path string `yaml:"path" env:"CRISIS_RESPONSES_PATH"`
}

// Detection configures detector behavior.
type Detection struct {
	Version           string `yaml:"version" env:"CRISIS_DETECTOR_VERSION"`
	DisableNormalizer bool   `yaml:"disable_normalizer" env:"CRISIS_DISABLE_NORMALIZER"`
}

// SetDefaults fills in zero values with sensible defaults.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	if c.Detection.Version == "" {
		c.Detection.Version = "1.0.0"
	}
}

// LoadFile reads the detector configuration from path. An empty path
// returns a default configuration with only env overrides applied, so
// callers can run without a config file at all.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		if err := loadEnvFiles(); err != nil {
			return nil, err
		}
		cfg := &Config{}
		cfg.SetDefaults()
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	return LoadWithDefaults(path, (*Config).SetDefaults)
}

// GetConfigPath returns the config path from CONFIG_PATH or the default.
func GetConfigPath(defaultPath string) string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultPath
}

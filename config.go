// config.go
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML server configuration. Every field has a
// default; a missing file is not an error when no path was given.
type Config struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MaxUploadMB int64  `yaml:"maxUploadMB"`
	MaxRows     int    `yaml:"maxRows"`
	// ScaleBuckets overrides the built-in magnitude table used to seed
	// default scale factors. Bounds are inclusive lower bounds and must be
	// listed largest first.
	ScaleBuckets []ScaleBucketConfig `yaml:"scaleBuckets"`
}

type ScaleBucketConfig struct {
	AtLeast float64 `yaml:"atLeast"`
	Factor  float64 `yaml:"factor"`
}

func defaultConfig() Config {
	return Config{
		Host:        "localhost",
		Port:        8080,
		MaxUploadMB: 10,
		MaxRows:     10000,
	}
}

func (c Config) maxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.installScaleBuckets(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// installScaleBuckets validates the override table and makes it the active
// one. Factors must come from the enumerated scale set.
func (c *Config) installScaleBuckets() error {
	if len(c.ScaleBuckets) == 0 {
		return nil
	}
	buckets := make([]scaleBucket, len(c.ScaleBuckets))
	for i, b := range c.ScaleBuckets {
		f, err := scaleFactorOf(b.Factor)
		if err != nil {
			return fmt.Errorf("scaleBuckets[%d]: %w", i, err)
		}
		if b.AtLeast <= 0 {
			return fmt.Errorf("scaleBuckets[%d]: bound must be positive, got %g", i, b.AtLeast)
		}
		if i > 0 && b.AtLeast >= buckets[i-1].AtLeast {
			return fmt.Errorf("scaleBuckets[%d]: bounds must decrease, %g after %g", i, b.AtLeast, buckets[i-1].AtLeast)
		}
		buckets[i] = scaleBucket{AtLeast: b.AtLeast, Factor: f}
	}
	scaleBuckets = buckets
	return nil
}

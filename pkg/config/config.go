package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultStoragePath = "netkv.json"
)

// Config holds the server settings. MetricsAddr is optional; when empty the
// metrics endpoint is not started.
type Config struct {
	Addr        string `yaml:"addr"`
	StoragePath string `yaml:"storage"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load builds the Config from defaults, an optional YAML file named by
// NETKV_CONFIG, and NETKV_* environment variables, in increasing order of
// precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        DefaultAddr,
		StoragePath: DefaultStoragePath,
	}

	if path := os.Getenv("NETKV_CONFIG"); path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if addr := os.Getenv("NETKV_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if storage := os.Getenv("NETKV_STORAGE"); storage != "" {
		cfg.StoragePath = storage
	}
	if metricsAddr := os.Getenv("NETKV_METRICS_ADDR"); metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	return cfg, nil
}

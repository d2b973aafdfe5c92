package config

import (
	"os"

	"holdem-equity/internal/util"
	"holdem-equity/pkg/mcts"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the equity service
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Search struct {
		Iterations    int `yaml:"iterations" envconfig:"iterations"`
		MaxIterations int `yaml:"maxIterations" envconfig:"max_iterations"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is fine; defaults and EQUITY_* environment variables
// still apply.
func Load() error {
	config = Config{}
	config.Search.Iterations = mcts.DefaultIterations
	config.Search.MaxIterations = 100000

	configFile := util.Getenv("EQUITY_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("equity", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

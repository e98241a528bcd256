// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Plain environment variables (ENV, STORAGE_PATH, OUTPUT) with defaults
//
// Values from the environment always override the YAML file.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// StoragePath is where the run transcript is kept. ":memory:" keeps it
	// for the lifetime of the process only.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:":memory:" validate:"required"`

	// Output selects how the transcript is printed at the end of a run.
	Output string `yaml:"output" env:"OUTPUT" env-default:"text" validate:"oneof=text json"`
}

// Load reads the config from path, or from the environment alone when path
// is empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path from CONFIG_PATH or --config and loads
// it, exiting the process if anything is wrong. If this returns, the config
// is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the directories a run reads from and writes to.
type Config struct {
	InputDir  string `yaml:"input_dir" env:"INPUT_DIR"`
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
}

func defaultConfig() Config {
	return Config{
		InputDir:  "/pfs/videos",
		OutputDir: "/pfs/out",
		LogLevel:  "info",
	}
}

// loadConfig starts from the defaults, applies the YAML file at path when
// one is given, then the environment.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

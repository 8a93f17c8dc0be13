package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scheduler struct {
		Interval      time.Duration
		MatchDuration time.Duration
	}

	NATS struct {
		Enabled       bool
		URL           string
		SubjectPrefix string
	}
}

// rawConfig mirrors the YAML layout. Durations arrive as strings like
// "90m" and are parsed into Config.
type rawConfig struct {
	Scheduler struct {
		Interval      string `yaml:"interval"`
		MatchDuration string `yaml:"match_duration"`
	} `yaml:"scheduler"`

	NATS struct {
		Enabled       bool   `yaml:"enabled"`
		URL           string `yaml:"url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var config Config
	config.NATS.Enabled = raw.NATS.Enabled
	config.NATS.URL = raw.NATS.URL
	config.NATS.SubjectPrefix = raw.NATS.SubjectPrefix

	if raw.Scheduler.Interval != "" {
		config.Scheduler.Interval, err = time.ParseDuration(raw.Scheduler.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduler interval: %w", err)
		}
	}
	if raw.Scheduler.MatchDuration != "" {
		config.Scheduler.MatchDuration, err = time.ParseDuration(raw.Scheduler.MatchDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid match duration: %w", err)
		}
	}

	return &config, nil
}

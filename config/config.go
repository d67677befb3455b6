/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultQueueSize is applied to topics that do not set queue_size.
const DefaultQueueSize = 10

// Topic describes one topic to bridge.
type Topic struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// QueueSize is the endpoint queue depth. Unset means DefaultQueueSize;
	// an explicit 0 is kept as-is (the transport's own default).
	QueueSize *int `yaml:"queue_size"`
	Latch     bool `yaml:"latch"`
	// Remap renames the topic on the far side of the bridge.
	Remap string `yaml:"remap"`
}

// Queue returns the queue depth to use for this topic's endpoints,
// applying DefaultQueueSize when queue_size is unset.
func (t Topic) Queue() int {
	if t.QueueSize == nil {
		return DefaultQueueSize
	}
	return *t.QueueSize
}

// TargetName returns the topic name used on the far side: the remap if
// set, the original name otherwise.
func (t Topic) TargetName() string {
	if t.Remap != "" {
		return t.Remap
	}
	return t.Name
}

// Service describes one service to bridge.
type Service struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Config is a bridge configuration: which topics and services to bridge
// and how. It decides nothing about how types are supported; that is the
// factory's registry.
type Config struct {
	Node     string    `yaml:"node"`
	Topics   []Topic   `yaml:"topics"`
	Services []Service `yaml:"services"`
}

// Load reads and parses a YAML bridge configuration from path.
// Environment variables referenced as ${VAR} or $VAR are expanded before
// parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a YAML bridge configuration, applies defaults and
// validates it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Node == "" {
		cfg.Node = "bridge"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seenTopics := make(map[string]struct{}, len(c.Topics))
	for _, t := range c.Topics {
		if t.Name == "" {
			return fmt.Errorf("config: topic with empty name")
		}
		if t.Type == "" {
			return fmt.Errorf("config: topic %q has no type", t.Name)
		}
		if t.QueueSize != nil && *t.QueueSize < 0 {
			return fmt.Errorf("config: topic %q has negative queue_size", t.Name)
		}
		if _, dup := seenTopics[t.Name]; dup {
			return fmt.Errorf("config: duplicate topic %q", t.Name)
		}
		seenTopics[t.Name] = struct{}{}
	}

	seenServices := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.Name == "" {
			return fmt.Errorf("config: service with empty name")
		}
		if s.Type == "" {
			return fmt.Errorf("config: service %q has no type", s.Name)
		}
		if _, dup := seenServices[s.Name]; dup {
			return fmt.Errorf("config: duplicate service %q", s.Name)
		}
		seenServices[s.Name] = struct{}{}
	}
	return nil
}

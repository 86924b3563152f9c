package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NOTESCOUT_"

// config is the CLI configuration, merged from defaults, an optional
// YAML file, and NOTESCOUT_* environment variables, in that order.
type config struct {
	DB string `koanf:"db"`

	AI struct {
		Host    string        `koanf:"host"`
		Token   string        `koanf:"token"`
		Models  []string      `koanf:"models"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"ai"`

	Search struct {
		PublishSummary bool `koanf:"publish_summary"`
	} `koanf:"search"`
}

func defaultConfig() config {
	var cfg config
	cfg.DB = "notescout.db"
	cfg.AI.Host = "http://localhost:11434/v1"
	cfg.AI.Token = "none"
	cfg.AI.Models = []string{"qwen2.5:7b", "llama3.1:8b"}
	cfg.AI.Timeout = 30 * time.Second
	return cfg
}

// loadConfig merges the config sources. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		key = strings.TrimPrefix(key, envPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading environment config: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

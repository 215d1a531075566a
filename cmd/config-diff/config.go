package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// fileConfig is the optional --config FILE shape: a shared comparison
// profile a team can check in instead of repeating flags on every
// invocation. Explicit flags always override values loaded here.
type fileConfig struct {
	Dialect             string `yaml:"dialect"`
	OrderPolicy         string `yaml:"order_policy"`
	IgnoreComments      bool   `yaml:"ignore_comments"`
	IgnoreBlankLines    bool   `yaml:"ignore_blank_lines"`
	NormalizeWhitespace bool   `yaml:"normalize_whitespace"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

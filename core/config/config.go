package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhalstead/linkgraph/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Namespace           string   `yaml:"namespace"`
	Model               string   `yaml:"model"`
	SourceDir           string   `yaml:"source_dir"`
	OutputDir           string   `yaml:"output_dir"`
	ExcludeTargets      []string `yaml:"exclude_targets"`
	ExcludeDependencies []string `yaml:"exclude_dependencies"`
	FetchedDirs         []string `yaml:"fetched_dirs"`
	SkipRender          bool     `yaml:"skip_render"`
	RenderArgs          []string `yaml:"render_args"`
}

func Default() *Config {
	return &Config{
		Model:       "build-model.yaml",
		SourceDir:   ".",
		OutputDir:   "dep-graph",
		FetchedDirs: []string{"_deps"},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "linkgraph.yaml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (JAVACORPUS_*)
// 2. Config file (.javacorpus/config.yml or .javacorpus/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".javacorpus")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("JAVACORPUS")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g. JAVACORPUS_OUTPUT_FORMAT)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("filter.extension")
	v.BindEnv("output.format")
	v.BindEnv("output.stem")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults seeds viper with the Default() values.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("filter.extension", def.Filter.Extension)
	v.SetDefault("filter.exclude_dirs", def.Filter.ExcludeDirs)
	v.SetDefault("filter.exclude_files", def.Filter.ExcludeFiles)
	v.SetDefault("filter.ignore", def.Filter.Ignore)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.stem", def.Output.Stem)
}

package config

import "github.com/codemill/javacorpus/internal/output"

// Config is the complete javacorpus configuration. It can be loaded from
// .javacorpus/config.yml with environment variable overrides.
type Config struct {
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// FilterConfig controls which files the walker visits.
type FilterConfig struct {
	Extension    string   `yaml:"extension" mapstructure:"extension"`         // source file extension
	ExcludeDirs  []string `yaml:"exclude_dirs" mapstructure:"exclude_dirs"`   // directory names pruned from the walk
	ExcludeFiles []string `yaml:"exclude_files" mapstructure:"exclude_files"` // file names skipped
	Ignore       []string `yaml:"ignore" mapstructure:"ignore"`               // glob patterns matched against relative paths
}

// OutputConfig controls how the corpus is written.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "csv" or "excel"
	Stem   string `yaml:"stem" mapstructure:"stem"`     // output path without extension
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			Extension: ".java",
			ExcludeDirs: []string{
				"target",
				"test",
				".git",
				".idea",
				"resource",
			},
			ExcludeFiles: []string{
				"package-info.java",
			},
		},
		Output: OutputConfig{
			Format: output.FormatCSV,
			Stem:   "java-code",
		},
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/codemill/javacorpus/internal/output"
)

// Validate checks that a configuration is usable.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case output.FormatCSV, output.FormatExcel:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q",
			output.FormatCSV, output.FormatExcel, cfg.Output.Format)
	}

	if cfg.Output.Stem == "" {
		return fmt.Errorf("output.stem must not be empty")
	}

	if !strings.HasPrefix(cfg.Filter.Extension, ".") {
		return fmt.Errorf("filter.extension must start with '.', got %q", cfg.Filter.Extension)
	}

	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/config"
	"github.com/chartfmt/chartfmt/internal/domain"
)

// loadChart resolves a chart file argument and reads its text.
func loadChart(path string) (dir, name, text string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", "", fmt.Errorf("resolving path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", "", "", fmt.Errorf("reading chart: %w", err)
	}
	return filepath.Dir(abs), filepath.Base(abs), string(data), nil
}

// loadOptions loads directory config and applies an optional preset
// override from the command line.
func loadOptions(dir, preset string) (domain.FormattingOptions, error) {
	if preset != "" {
		if !domain.IsValidPreset(preset) {
			return domain.FormattingOptions{}, fmt.Errorf("unknown preset %q (valid: standard, minimal, aggressive)", preset)
		}
		return domain.OptionsForPreset(preset), nil
	}
	return config.New().Load(dir)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

const fileName = ".chartfmt.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .chartfmt.yaml from a
// chart collection directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// fileConfig is the on-disk shape: a preset name plus optional per-flag
// overrides. Pointer types distinguish "not specified" from false.
type fileConfig struct {
	Preset                string  `yaml:"preset"`
	TargetPattern         string  `yaml:"target_pattern"`
	RemoveExtraBlankLines *bool   `yaml:"remove_extra_blank_lines"`
	FixSpacing            *bool   `yaml:"fix_spacing"`
	AlignChords           *bool   `yaml:"align_chords"`
	StandardizeChords     *bool   `yaml:"standardize_chords"`
	AutoLabelSections     *bool   `yaml:"auto_label_sections"`
	ExtractMetadata       *bool   `yaml:"extract_metadata"`
}

// Load reads .chartfmt.yaml from dir. Returns the standard preset if the
// file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.FormattingOptions, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultOptions(), nil
		}
		return domain.FormattingOptions{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.FormattingOptions{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if fc.Preset != "" && !domain.IsValidPreset(fc.Preset) {
		return domain.FormattingOptions{}, fmt.Errorf("invalid %s: unknown preset %q (valid: standard, minimal, aggressive)", fileName, fc.Preset)
	}

	opts := domain.OptionsForPreset(fc.Preset)
	if fc.TargetPattern != "" {
		opts.TargetPattern = chart.TargetPattern(fc.TargetPattern)
	}
	applyFlag(&opts.RemoveExtraBlankLines, fc.RemoveExtraBlankLines)
	applyFlag(&opts.FixSpacing, fc.FixSpacing)
	applyFlag(&opts.AlignChords, fc.AlignChords)
	applyFlag(&opts.StandardizeChords, fc.StandardizeChords)
	applyFlag(&opts.AutoLabelSections, fc.AutoLabelSections)
	applyFlag(&opts.ExtractMetadata, fc.ExtractMetadata)

	if err := opts.Validate(); err != nil {
		return domain.FormattingOptions{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return opts, nil
}

func applyFlag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

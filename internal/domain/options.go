package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// FormattingOptions selects engine behavior. Each boolean gates one rule
// family across both detection and fixing; disabling every family is not an
// error, the engine simply reports nothing.
type FormattingOptions struct {
	TargetPattern         chart.TargetPattern `yaml:"target_pattern"           json:"target_pattern"`
	RemoveExtraBlankLines bool                `yaml:"remove_extra_blank_lines" json:"remove_extra_blank_lines"`
	FixSpacing            bool                `yaml:"fix_spacing"              json:"fix_spacing"`
	AlignChords           bool                `yaml:"align_chords"             json:"align_chords"`
	StandardizeChords     bool                `yaml:"standardize_chords"       json:"standardize_chords"`
	AutoLabelSections     bool                `yaml:"auto_label_sections"      json:"auto_label_sections"`
	ExtractMetadata       bool                `yaml:"extract_metadata"         json:"extract_metadata"`

	// AnalyzeOnly skips the fix pass entirely (score and detect only).
	AnalyzeOnly bool `yaml:"analyze_only" json:"analyze_only"`
}

// Preset names accepted by OptionsForPreset and the config file.
const (
	PresetStandard   = "standard"
	PresetMinimal    = "minimal"
	PresetAggressive = "aggressive"
)

// ValidPresets enumerates all named option presets.
var ValidPresets = []string{PresetStandard, PresetMinimal, PresetAggressive}

// DefaultOptions returns the standard preset.
func DefaultOptions() FormattingOptions {
	return OptionsForPreset(PresetStandard)
}

// OptionsForPreset returns the fixed option combination for a named preset.
// Unknown names fall back to the standard preset; callers that need strict
// checking validate the name first.
func OptionsForPreset(name string) FormattingOptions {
	switch name {
	case PresetMinimal:
		return FormattingOptions{
			TargetPattern:         chart.PatternStandard,
			RemoveExtraBlankLines: true,
			FixSpacing:            true,
		}
	case PresetAggressive:
		return FormattingOptions{
			TargetPattern:         chart.PatternSharps,
			RemoveExtraBlankLines: true,
			FixSpacing:            true,
			AlignChords:           true,
			StandardizeChords:     true,
			AutoLabelSections:     true,
			ExtractMetadata:       true,
		}
	default:
		return FormattingOptions{
			TargetPattern:         chart.PatternStandard,
			RemoveExtraBlankLines: true,
			FixSpacing:            true,
			AlignChords:           true,
			StandardizeChords:     true,
			ExtractMetadata:       true,
		}
	}
}

// Validate checks the options for invalid values.
func (o FormattingOptions) Validate() error {
	patterns := make([]interface{}, len(chart.ValidTargetPatterns))
	for i, p := range chart.ValidTargetPatterns {
		patterns[i] = p
	}
	return validation.ValidateStruct(&o,
		validation.Field(&o.TargetPattern, validation.Required, validation.In(patterns...)),
	)
}

// IsValidPreset reports whether name is a recognized preset.
func IsValidPreset(name string) bool {
	for _, p := range ValidPresets {
		if p == name {
			return true
		}
	}
	return false
}

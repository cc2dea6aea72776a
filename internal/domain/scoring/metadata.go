package scoring

import (
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// ExpectedDirectives are the metadata directives every chart should carry.
// Tempo and capo are optional and never penalize.
var ExpectedDirectives = []string{
	chart.DirectiveTitle,
	chart.DirectiveArtist,
	chart.DirectiveKey,
}

// ScoreMetadata checks which of the expected directives are present with a
// non-empty value. The score is the fraction present.
func ScoreMetadata(lines []chart.Line) float64 {
	present := PresentDirectives(lines)

	found := 0
	for _, key := range ExpectedDirectives {
		if present[key] {
			found++
		}
	}
	return float64(found) / float64(len(ExpectedDirectives))
}

// PresentDirectives collects the directive keys that appear with a
// non-empty value. A directive like "{title: }" does not count as present.
func PresentDirectives(lines []chart.Line) map[string]bool {
	present := make(map[string]bool)
	for _, l := range lines {
		if l.Kind == chart.KindDirective && l.Value != "" {
			present[l.Key] = true
		}
	}
	return present
}

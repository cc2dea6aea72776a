// Package suggest derives advisory recommendations from aggregate issue
// patterns. Suggestions are never auto-applied and their impact is a
// predicted improvement category, not a guaranteed delta.
package suggest

import (
	"fmt"

	"github.com/chartfmt/chartfmt/internal/domain"
)

// Derive turns the detection output into higher-level recommendations.
// Deterministic: same issues and score always produce the same list, in the
// same order.
func Derive(issues []domain.QualityIssue, score domain.QualityScore) []domain.FormattingSuggestion {
	counts := make(map[domain.IssueKind]int)
	for _, i := range issues {
		counts[i.Kind]++
	}

	var out []domain.FormattingSuggestion

	if n := counts[domain.IssueMissingDirective]; n > 0 {
		impact := domain.ImpactModerate
		if n >= 2 {
			impact = domain.ImpactMajor
		}
		out = append(out, domain.FormattingSuggestion{
			Title:       "Complete the song metadata",
			Description: fmt.Sprintf("%d expected directive(s) are missing or empty; filling in title, artist and key makes the chart searchable and raises the metadata score.", n),
			Impact:      impact,
		})
	}

	if n := counts[domain.IssueChordCollision]; n > 0 {
		out = append(out, domain.FormattingSuggestion{
			Title:       "Re-anchor colliding chords",
			Description: fmt.Sprintf("%d line(s) have chords whose rendered widths overlap; spread them across the lyric so each chord lands on its own syllable.", n),
			Impact:      domain.ImpactMajor,
		})
	}

	if n := counts[domain.IssueUnknownChord]; n > 0 {
		out = append(out, domain.FormattingSuggestion{
			Title:       "Review unrecognized chords",
			Description: fmt.Sprintf("%d chord token(s) do not match any known chord shape and are treated as opaque text; check them for typos.", n),
			Impact:      domain.ImpactModerate,
		})
	}

	if n := counts[domain.IssueChordNotation]; n >= 3 {
		out = append(out, domain.FormattingSuggestion{
			Title:       "Standardize chord notation",
			Description: fmt.Sprintf("%d chords deviate from the target convention; running the formatter will converge them to one spelling.", n),
			Impact:      domain.ImpactModerate,
		})
	}

	if counts[domain.IssueMissingSectionLabel] > 0 || counts[domain.IssueAdjacentSections] > 0 || score.Structure < 0.5 {
		out = append(out, domain.FormattingSuggestion{
			Title:       "Add section structure",
			Description: "Labeling verses and choruses makes the chart navigable during performance and lets repeated sections be collapsed.",
			Impact:      domain.ImpactModerate,
		})
	}

	if n := counts[domain.IssueExcessBlankLines] + counts[domain.IssueSurroundWhitespace]; n >= 3 {
		out = append(out, domain.FormattingSuggestion{
			Title:       "Tidy up spacing",
			Description: fmt.Sprintf("%d spacing problem(s) found; collapsing blank runs and trimming padding keeps the chart compact on small screens.", n),
			Impact:      domain.ImpactMinor,
		})
	}

	return out
}

// Package detect walks a parsed chart and expands every scoring deficiency
// into discrete, line-addressable issues. Each option flag gates one rule
// family; a disabled family emits nothing.
package detect

import (
	"fmt"
	"strings"

	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/chart"
	"github.com/chartfmt/chartfmt/internal/domain/scoring"
)

// Detect runs the full rule battery over a parsed line sequence. Issue IDs
// are deterministic and unique within one detection run; line numbers
// reference the original text.
func Detect(lines []chart.Line, opts domain.FormattingOptions) []domain.QualityIssue {
	d := &detector{opts: opts}

	if opts.ExtractMetadata {
		d.detectMetadata(lines)
	}
	if opts.RemoveExtraBlankLines {
		d.detectBlankRuns(lines)
	}
	if opts.FixSpacing {
		d.detectWhitespace(lines)
	}
	if opts.StandardizeChords {
		d.detectChordFormat(lines)
	}
	if opts.AlignChords {
		d.detectAlignment(lines)
	}
	if opts.AutoLabelSections {
		d.detectSections(lines)
	}

	return d.issues
}

type detector struct {
	opts   domain.FormattingOptions
	issues []domain.QualityIssue
	seq    int
}

func (d *detector) add(issue domain.QualityIssue) {
	d.seq++
	issue.ID = fmt.Sprintf("ISS-%03d", d.seq)
	d.issues = append(d.issues, issue)
}

// detectMetadata emits one issue per expected directive that is missing or
// has an empty value. Title and artist absence is critical; the key
// directive is medium. None are mechanically fixable: the facts must come
// from the user.
func (d *detector) detectMetadata(lines []chart.Line) {
	present := scoring.PresentDirectives(lines)
	empty := make(map[string]int) // key -> line number of valueless directive
	for _, l := range lines {
		if l.Kind == chart.KindDirective && l.Value == "" {
			if _, seen := empty[l.Key]; !seen {
				empty[l.Key] = l.Number
			}
		}
	}

	for _, key := range scoring.ExpectedDirectives {
		if present[key] {
			continue
		}

		severity := domain.SeverityMedium
		if key == chart.DirectiveTitle || key == chart.DirectiveArtist {
			severity = domain.SeverityCritical
		}

		issue := domain.QualityIssue{
			Kind:       domain.IssueMissingDirective,
			Severity:   severity,
			Suggestion: fmt.Sprintf("Add a {%s: ...} directive near the top of the chart", key),
			Token:      key,
		}
		if line, ok := empty[key]; ok {
			issue.Line = line
			issue.Description = fmt.Sprintf("%s directive has no value", key)
		} else {
			issue.Description = fmt.Sprintf("missing %s directive", key)
		}
		d.add(issue)
	}
}

// detectBlankRuns emits one issue per run of two or more blank lines.
func (d *detector) detectBlankRuns(lines []chart.Line) {
	runStart := 0
	runLen := 0
	flush := func() {
		if runLen >= 2 {
			d.add(domain.QualityIssue{
				Kind:        domain.IssueExcessBlankLines,
				Severity:    domain.SeverityLow,
				Line:        runStart,
				Description: fmt.Sprintf("%d consecutive blank lines", runLen),
				Suggestion:  "Collapse to a single blank line",
				AutoFixable: true,
				RunLength:   runLen,
			})
		}
		runLen = 0
	}

	for _, l := range lines {
		if l.Kind == chart.KindBlank {
			if runLen == 0 {
				runStart = l.Number
			}
			runLen++
			continue
		}
		flush()
	}
	flush()
}

// detectWhitespace emits one issue per chord-lyric line carrying leading or
// trailing whitespace.
func (d *detector) detectWhitespace(lines []chart.Line) {
	for _, l := range lines {
		if l.Kind != chart.KindChordLyric {
			continue
		}
		if l.Raw == strings.TrimSpace(l.Raw) {
			continue
		}
		d.add(domain.QualityIssue{
			Kind:        domain.IssueSurroundWhitespace,
			Severity:    domain.SeverityLow,
			Line:        l.Number,
			Description: "leading or trailing whitespace on lyric line",
			Suggestion:  "Trim surrounding whitespace",
			AutoFixable: true,
		})
	}
}

// detectChordFormat emits one issue per chord token that deviates from the
// target chord convention. Tokens that become canonical after re-casing are
// auto-fixable; tokens the grammar cannot identify are opaque and are not.
func (d *detector) detectChordFormat(lines []chart.Line) {
	for _, l := range lines {
		for _, c := range l.Chords {
			canonical, ok := chart.Canonicalize(c.Token, d.opts.TargetPattern)

			switch {
			case !ok:
				d.add(domain.QualityIssue{
					Kind:        domain.IssueUnknownChord,
					Severity:    domain.SeverityMedium,
					Line:        l.Number,
					Description: fmt.Sprintf("unrecognized chord token %q", c.Token),
					Suggestion:  "Rewrite as root note plus optional quality, e.g. Am7 or F#sus4",
					Token:       c.Token,
				})

			case canonical != c.Token && !chart.IsCanonical(c.Token):
				d.add(domain.QualityIssue{
					Kind:        domain.IssueChordNotation,
					Severity:    domain.SeverityMedium,
					Line:        l.Number,
					Description: fmt.Sprintf("chord %q is not in canonical form", c.Token),
					Suggestion:  fmt.Sprintf("Replace with %q", canonical),
					AutoFixable: true,
					Token:       c.Token,
					Replacement: canonical,
				})

			case canonical != c.Token:
				// Already grammatical, only the enharmonic spelling differs
				// from the target pattern.
				d.add(domain.QualityIssue{
					Kind:        domain.IssueChordNotation,
					Severity:    domain.SeverityLow,
					Line:        l.Number,
					Description: fmt.Sprintf("chord %q does not follow the %s convention", c.Token, d.opts.TargetPattern),
					Suggestion:  fmt.Sprintf("Replace with %q", canonical),
					AutoFixable: true,
					Token:       c.Token,
					Replacement: canonical,
				})
			}
		}
	}
}

// detectAlignment emits one issue per chord-lyric line whose chords collide.
// Collisions need musical judgment to untangle and are never auto-fixed.
func (d *detector) detectAlignment(lines []chart.Line) {
	for _, l := range lines {
		if l.Kind != chart.KindChordLyric || len(l.Chords) < 2 {
			continue
		}
		if scoring.AlignedChords(l.Chords) {
			continue
		}
		d.add(domain.QualityIssue{
			Kind:        domain.IssueChordCollision,
			Severity:    domain.SeverityHigh,
			Line:        l.Number,
			Description: "overlapping chord positions",
			Suggestion:  "Spread the chords so each one anchors to its own syllable",
		})
	}
}

// detectSections emits an auto-fixable labeling issue per unlabeled lyric
// block and flags headers stacked with no content between them.
func (d *detector) detectSections(lines []chart.Line) {
	for _, b := range UnlabeledBlocks(lines) {
		d.add(domain.QualityIssue{
			Kind:        domain.IssueMissingSectionLabel,
			Severity:    domain.SeverityMedium,
			Line:        b.StartLine,
			Description: "lyric block has no section label",
			Suggestion:  fmt.Sprintf("Label this block [%s]", b.Label),
			AutoFixable: true,
			Replacement: b.Label,
		})
	}

	prevHeader := 0
	for _, l := range lines {
		switch l.Kind {
		case chart.KindSectionHeader:
			if prevHeader != 0 {
				d.add(domain.QualityIssue{
					Kind:        domain.IssueAdjacentSections,
					Severity:    domain.SeverityMedium,
					Line:        l.Number,
					Description: fmt.Sprintf("section header directly follows the header on line %d", prevHeader),
					Suggestion:  "Remove the redundant header or add content between the sections",
				})
			}
			prevHeader = l.Number
		case chart.KindBlank:
			// blanks are not content
		default:
			prevHeader = 0
		}
	}
}

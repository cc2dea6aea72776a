// Package fix rewrites chart text according to a selected subset of
// auto-fixable issues. Fixes are applied in line-number order, left to
// right within a line, and every applied fix appends exactly one change
// record. Each fix rule is non-decreasing for every quality sub-score, so
// the rewritten text never scores below the original.
package fix

import (
	"fmt"
	"strings"

	"github.com/chartfmt/chartfmt/internal/domain"
)

// Apply rewrites text according to the selected issues. selectedIDs empty
// means "apply every auto-fixable issue". Issues that are not auto-fixable,
// or that turn out not to be mechanically resolvable against the current
// text, are dropped silently: fixes are best-effort improvements, not a
// validating transaction.
func Apply(text string, issues []domain.QualityIssue, selectedIDs []string) (string, []domain.FormattingChange) {
	plan := buildPlan(issues, selectedIDs)
	lines := strings.Split(text, "\n")

	var (
		out     []string
		changes []domain.FormattingChange
	)

	for i, line := range lines {
		ln := i + 1

		if label, ok := plan.labels[ln]; ok {
			header := "[" + label + "]"
			out = append(out, header)
			changes = append(changes, domain.FormattingChange{
				Type:        domain.ChangeSectionLabeled,
				Line:        ln,
				Description: fmt.Sprintf("labeled section %q", label),
				Before:      "",
				After:       header,
			})
		}

		if run, ok := plan.runs[ln]; ok {
			end := ln + run - 1
			if end > len(lines) {
				end = len(lines)
			}
			changes = append(changes, domain.FormattingChange{
				Type:        domain.ChangeBlankLinesCollapsed,
				Line:        ln,
				Description: fmt.Sprintf("collapsed %d blank lines to one", run),
				Before:      strings.Join(lines[i:end], "\n"),
				After:       lines[i],
			})
		}
		if plan.dropped[ln] {
			continue
		}

		if plan.trims[ln] {
			trimmed := strings.TrimSpace(line)
			if trimmed != line {
				changes = append(changes, domain.FormattingChange{
					Type:        domain.ChangeWhitespaceTrimmed,
					Line:        ln,
					Description: "trimmed surrounding whitespace",
					Before:      line,
					After:       trimmed,
				})
				line = trimmed
			}
		}

		// Chord rewrites are searched left to right from the end of the
		// previous rewrite, so offsets computed before this line mutated
		// are never reused.
		searchFrom := 0
		for _, cf := range plan.chords[ln] {
			before := "[" + cf.token + "]"
			after := "[" + cf.replacement + "]"
			idx := strings.Index(line[searchFrom:], before)
			if idx < 0 {
				continue // mechanically impossible against current text
			}
			idx += searchFrom
			line = line[:idx] + after + line[idx+len(before):]
			searchFrom = idx + len(after)
			changes = append(changes, domain.FormattingChange{
				Type:        domain.ChangeChordReformatted,
				Line:        ln,
				Description: fmt.Sprintf("reformatted chord %q as %q", cf.token, cf.replacement),
				Before:      before,
				After:       after,
			})
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n"), changes
}

type chordFix struct {
	token, replacement string
}

type plan struct {
	runs    map[int]int    // blank-run start line -> run length
	dropped map[int]bool   // surplus blank lines to remove
	trims   map[int]bool   // lines to whitespace-trim
	chords  map[int][]chordFix
	labels  map[int]string // line -> section label to insert before it
}

// buildPlan groups the selected auto-fixable issues by line. When two
// issues target the same span, the earlier one in detection order wins and
// later ones are not planned, which avoids double mutation of one span.
func buildPlan(issues []domain.QualityIssue, selectedIDs []string) plan {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	p := plan{
		runs:    make(map[int]int),
		dropped: make(map[int]bool),
		trims:   make(map[int]bool),
		chords:  make(map[int][]chordFix),
		labels:  make(map[int]string),
	}

	for _, issue := range issues {
		if !issue.AutoFixable {
			continue
		}
		if len(selectedIDs) > 0 && !selected[issue.ID] {
			continue
		}

		switch issue.Kind {
		case domain.IssueExcessBlankLines:
			if issue.RunLength < 2 || p.overlapsRun(issue.Line, issue.RunLength) {
				continue
			}
			p.runs[issue.Line] = issue.RunLength
			for ln := issue.Line + 1; ln < issue.Line+issue.RunLength; ln++ {
				p.dropped[ln] = true
			}

		case domain.IssueSurroundWhitespace:
			p.trims[issue.Line] = true

		case domain.IssueChordNotation:
			if issue.Token == "" || issue.Replacement == "" {
				continue
			}
			p.chords[issue.Line] = append(p.chords[issue.Line], chordFix{issue.Token, issue.Replacement})

		case domain.IssueMissingSectionLabel:
			if issue.Replacement == "" {
				continue
			}
			if _, taken := p.labels[issue.Line]; taken {
				continue
			}
			p.labels[issue.Line] = issue.Replacement
		}
	}

	return p
}

func (p plan) overlapsRun(start, length int) bool {
	for ln := start; ln < start+length; ln++ {
		if p.dropped[ln] {
			return true
		}
		if _, ok := p.runs[ln]; ok {
			return true
		}
	}
	return false
}

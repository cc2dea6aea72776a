package domain

import (
	"math"
	"time"
)

// QualityScore holds the five independent sub-scores and the weighted
// overall score for one chart. All values are deterministic pure functions
// of the parsed line sequence.
type QualityScore struct {
	Spacing     float64 `json:"spacing"`
	Alignment   float64 `json:"alignment"`
	Structure   float64 `json:"structure"`
	ChordFormat float64 `json:"chord_format"`
	Metadata    float64 `json:"metadata"`

	Overall    float64 `json:"overall"`
	Percentage int     `json:"percentage"`
	Grade      string  `json:"grade"`
}

// SubScoreWeights is the fixed weighting of the five sub-scores. Equal
// weighting is deliberate and tested; change it here, nowhere else.
var SubScoreWeights = struct {
	Spacing, Alignment, Structure, ChordFormat, Metadata float64
}{0.20, 0.20, 0.20, 0.20, 0.20}

// Finalize computes Overall, Percentage and Grade from the sub-scores.
func (q *QualityScore) Finalize() {
	w := SubScoreWeights
	q.Overall = q.Spacing*w.Spacing +
		q.Alignment*w.Alignment +
		q.Structure*w.Structure +
		q.ChordFormat*w.ChordFormat +
		q.Metadata*w.Metadata
	q.Percentage = int(math.Round(q.Overall * 100))
	q.Grade = GradeFor(q.Percentage)
}

// GradeFor maps a percentage to its letter grade band.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// Severity of a detected issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank returns a numeric rank for sorting (lower is more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// IssueKind identifies the rule that produced an issue. The fix engine
// switches exhaustively on this tag; no string matching.
type IssueKind string

const (
	IssueExcessBlankLines    IssueKind = "excess_blank_lines"
	IssueSurroundWhitespace  IssueKind = "surrounding_whitespace"
	IssueChordCollision      IssueKind = "chord_collision"
	IssueChordNotation       IssueKind = "chord_notation"
	IssueUnknownChord        IssueKind = "unknown_chord"
	IssueMissingSectionLabel IssueKind = "missing_section_label"
	IssueAdjacentSections    IssueKind = "adjacent_sections"
	IssueMissingDirective    IssueKind = "missing_directive"
)

// QualityIssue is one discrete, classifiable formatting problem. Issues are
// created fresh on every detection pass and never persisted. Line numbers
// always reference the original text of the detection run.
type QualityIssue struct {
	ID          string    `json:"id"`
	Kind        IssueKind `json:"kind"`
	Severity    Severity  `json:"severity"`
	Line        int       `json:"line,omitempty"` // 0 for document-wide issues
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion"`
	AutoFixable bool      `json:"auto_fixable"`

	// Mechanical payload for the fix engine, set only on auto-fixable kinds.
	Token       string `json:"token,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	RunLength   int    `json:"run_length,omitempty"` // blank-line runs
}

// ImpactLevel predicts the score improvement category of a suggestion.
type ImpactLevel string

const (
	ImpactMinor    ImpactLevel = "minor"
	ImpactModerate ImpactLevel = "moderate"
	ImpactMajor    ImpactLevel = "major"
)

// FormattingSuggestion is an advisory, non-mechanical recommendation.
// Never auto-applied.
type FormattingSuggestion struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Impact      ImpactLevel `json:"impact"`
}

// ChangeType tags one atomic transformation of the fix engine.
type ChangeType string

const (
	ChangeBlankLinesCollapsed ChangeType = "blank_lines_collapsed"
	ChangeWhitespaceTrimmed   ChangeType = "whitespace_trimmed"
	ChangeChordReformatted    ChangeType = "chord_reformatted"
	ChangeSectionLabeled      ChangeType = "section_labeled"
)

// FormattingChange records one applied transformation. The ordered list of
// changes for a document is a complete, replayable audit trail.
type FormattingChange struct {
	Type        ChangeType `json:"type"`
	Line        int        `json:"line"` // original line number
	Description string     `json:"description"`
	Before      string     `json:"before"`
	After       string     `json:"after"`
}

// FormattingResult bundles everything a single-document pass produced.
// FormattedText is always the result of applying exactly the listed changes
// to OriginalText.
type FormattingResult struct {
	OriginalText  string                 `json:"original_text"`
	FormattedText string                 `json:"formatted_text"`
	Score         QualityScore           `json:"score"`       // scored against OriginalText
	ScoreAfter    QualityScore           `json:"score_after"` // scored against FormattedText
	Issues        []QualityIssue         `json:"issues"`
	Suggestions   []FormattingSuggestion `json:"suggestions"`
	Changes       []FormattingChange     `json:"changes"`
}

// Improvement is the overall score delta of the pass, pre to post.
func (r *FormattingResult) Improvement() float64 {
	return r.ScoreAfter.Overall - r.Score.Overall
}

// BatchFormattingResult aggregates a multi-document run. Failed documents
// appear in Failures only; they were never mutated.
type BatchFormattingResult struct {
	Results                   map[string]*FormattingResult `json:"results"`
	Failures                  map[string]string            `json:"failures,omitempty"`
	SuccessCount              int                          `json:"success_count"`
	FailureCount              int                          `json:"failure_count"`
	AverageQualityImprovement float64                      `json:"average_quality_improvement"`
	TotalIssuesFixed          int                          `json:"total_issues_fixed"`
	CommitHash                string                       `json:"commit_hash,omitempty"`
	Timestamp                 time.Time                    `json:"timestamp"`
}

// ProgressFunc receives batch progress as a fraction in [0,1]. Delivery is
// serialized and monotonically increasing, reaching exactly 1.0 when the
// batch completes.
type ProgressFunc func(fraction float64)

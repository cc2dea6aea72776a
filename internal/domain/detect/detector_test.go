package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/chart"
	"github.com/chartfmt/chartfmt/internal/domain/detect"
)

func detectText(text string, opts domain.FormattingOptions) []domain.QualityIssue {
	return detect.Detect(chart.Parse(text), opts)
}

func kinds(issues []domain.QualityIssue) []domain.IssueKind {
	out := make([]domain.IssueKind, len(issues))
	for i, iss := range issues {
		out[i] = iss.Kind
	}
	return out
}

func TestDetect_AllFamiliesDisabledReportsNothing(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard}
	issues := detectText("{title: }\n\n\n[G]Amazing [c]grace", opts)
	assert.Empty(t, issues)
}

func TestDetect_WorkedExample(t *testing.T) {
	issues := detectText("{title: }\n\n\n[G]Amazing [c]grace", domain.DefaultOptions())
	require.Len(t, issues, 5)

	assert.Equal(t, []domain.IssueKind{
		domain.IssueMissingDirective, // title, empty value
		domain.IssueMissingDirective, // artist
		domain.IssueMissingDirective, // key
		domain.IssueExcessBlankLines,
		domain.IssueChordNotation,
	}, kinds(issues))

	title := issues[0]
	assert.Equal(t, domain.SeverityCritical, title.Severity)
	assert.Equal(t, 1, title.Line)
	assert.Contains(t, title.Description, "has no value")
	assert.False(t, title.AutoFixable)

	artist := issues[1]
	assert.Equal(t, domain.SeverityCritical, artist.Severity)
	assert.Zero(t, artist.Line, "absent directives are document-wide")

	key := issues[2]
	assert.Equal(t, domain.SeverityMedium, key.Severity)

	blanks := issues[3]
	assert.Equal(t, 2, blanks.Line)
	assert.Equal(t, 2, blanks.RunLength)
	assert.True(t, blanks.AutoFixable)

	chord := issues[4]
	assert.Equal(t, domain.SeverityMedium, chord.Severity)
	assert.Equal(t, 4, chord.Line)
	assert.True(t, chord.AutoFixable)
	assert.Equal(t, "c", chord.Token)
	assert.Equal(t, "C", chord.Replacement)
}

func TestDetect_IssueIDsAreDeterministicAndUnique(t *testing.T) {
	text := "{title: }\n\n\n[G]Amazing [c]grace"
	a := detectText(text, domain.DefaultOptions())
	b := detectText(text, domain.DefaultOptions())
	require.Equal(t, a, b)

	seen := make(map[string]bool)
	for _, iss := range a {
		assert.NotEmpty(t, iss.ID)
		assert.False(t, seen[iss.ID], "duplicate id %s", iss.ID)
		seen[iss.ID] = true
	}
	assert.Equal(t, "ISS-001", a[0].ID)
}

func TestDetect_BlankRunPerRun(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, RemoveExtraBlankLines: true}
	issues := detectText("a\n\n\nb\n\n\n\nc", opts)
	require.Len(t, issues, 2)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, 2, issues[0].RunLength)
	assert.Equal(t, 5, issues[1].Line)
	assert.Equal(t, 3, issues[1].RunLength)
}

func TestDetect_SingleBlankLineIsFine(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, RemoveExtraBlankLines: true}
	assert.Empty(t, detectText("a\n\nb", opts))
}

func TestDetect_TrailingBlankRunIsFlushed(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, RemoveExtraBlankLines: true}
	issues := detectText("a\n\n\n", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
}

func TestDetect_Whitespace(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, FixSpacing: true}
	issues := detectText("  [G]padded  \n[C]clean\n  {title: x}  ", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueSurroundWhitespace, issues[0].Kind)
	assert.Equal(t, 1, issues[0].Line)
	assert.True(t, issues[0].AutoFixable)
}

func TestDetect_ChordFormatThreeWay(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternSharps, StandardizeChords: true}
	issues := detectText("[c]one [Bb]two [xyz]three [A#]four", opts)
	require.Len(t, issues, 3)

	recase := issues[0]
	assert.Equal(t, domain.IssueChordNotation, recase.Kind)
	assert.Equal(t, domain.SeverityMedium, recase.Severity)
	assert.True(t, recase.AutoFixable)
	assert.Equal(t, "C", recase.Replacement)

	// "Bb" is grammatical but not the sharps spelling: a milder issue.
	enharmonic := issues[1]
	assert.Equal(t, domain.IssueChordNotation, enharmonic.Kind)
	assert.Equal(t, domain.SeverityLow, enharmonic.Severity)
	assert.True(t, enharmonic.AutoFixable)
	assert.Equal(t, "A#", enharmonic.Replacement)

	unknown := issues[2]
	assert.Equal(t, domain.IssueUnknownChord, unknown.Kind)
	assert.False(t, unknown.AutoFixable)
	assert.Equal(t, "xyz", unknown.Token)
}

func TestDetect_CanonicalChordsAreSilent(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, StandardizeChords: true}
	assert.Empty(t, detectText("[G]la [Am7]la [F#sus4]la", opts))
}

func TestDetect_AlignmentCollision(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, AlignChords: true}
	issues := detectText("[Am7][G]squashed\n[C]fine [D]line", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueChordCollision, issues[0].Kind)
	assert.Equal(t, domain.SeverityHigh, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Line)
	assert.False(t, issues[0].AutoFixable, "collisions need a human ear")
}

func TestDetect_SectionLabeling(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, AutoLabelSections: true}
	issues := detectText("[G]unlabeled block\n\n[Chorus]\n[C]labeled block", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueMissingSectionLabel, issues[0].Kind)
	assert.Equal(t, 1, issues[0].Line)
	assert.True(t, issues[0].AutoFixable)
	assert.Equal(t, "Verse 1", issues[0].Replacement)
}

func TestDetect_AdjacentSections(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, AutoLabelSections: true}
	issues := detectText("[Verse 1]\n\n[Chorus]\n[G]la", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueAdjacentSections, issues[0].Kind)
	assert.Equal(t, 3, issues[0].Line)
	assert.False(t, issues[0].AutoFixable)
}

func TestDetect_MetadataDuplicateEmptyDirective(t *testing.T) {
	// Two empty title directives still yield one issue, anchored at the first.
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, ExtractMetadata: true}
	issues := detectText("{title: }\n{title: }\n{artist: a}\n{key: G}", opts)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.IssueMissingDirective, issues[0].Kind)
	assert.Equal(t, 1, issues[0].Line)
}

func TestDetect_CompleteMetadataIsSilent(t *testing.T) {
	opts := domain.FormattingOptions{TargetPattern: chart.PatternStandard, ExtractMetadata: true}
	assert.Empty(t, detectText("{title: a}\n{artist: b}\n{key: C}", opts))
}

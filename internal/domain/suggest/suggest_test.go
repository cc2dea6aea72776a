package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/suggest"
)

func issueOf(kind domain.IssueKind, n int) []domain.QualityIssue {
	out := make([]domain.QualityIssue, n)
	for i := range out {
		out[i] = domain.QualityIssue{Kind: kind}
	}
	return out
}

func goodScore() domain.QualityScore {
	q := domain.QualityScore{Spacing: 1, Alignment: 1, Structure: 1, ChordFormat: 1, Metadata: 1}
	q.Finalize()
	return q
}

func TestDerive_CleanChartHasNoSuggestions(t *testing.T) {
	assert.Empty(t, suggest.Derive(nil, goodScore()))
}

func TestDerive_MetadataImpactEscalates(t *testing.T) {
	one := suggest.Derive(issueOf(domain.IssueMissingDirective, 1), goodScore())
	require.Len(t, one, 1)
	assert.Equal(t, domain.ImpactModerate, one[0].Impact)

	two := suggest.Derive(issueOf(domain.IssueMissingDirective, 2), goodScore())
	require.Len(t, two, 1)
	assert.Equal(t, domain.ImpactMajor, two[0].Impact)
}

func TestDerive_CollisionsAreMajor(t *testing.T) {
	out := suggest.Derive(issueOf(domain.IssueChordCollision, 1), goodScore())
	require.Len(t, out, 1)
	assert.Equal(t, domain.ImpactMajor, out[0].Impact)
}

func TestDerive_NotationNeedsThree(t *testing.T) {
	assert.Empty(t, suggest.Derive(issueOf(domain.IssueChordNotation, 2), goodScore()))
	assert.Len(t, suggest.Derive(issueOf(domain.IssueChordNotation, 3), goodScore()), 1)
}

func TestDerive_SpacingNeedsThree(t *testing.T) {
	mixed := append(issueOf(domain.IssueExcessBlankLines, 2), issueOf(domain.IssueSurroundWhitespace, 1)...)
	assert.Len(t, suggest.Derive(mixed, goodScore()), 1)
	assert.Empty(t, suggest.Derive(issueOf(domain.IssueExcessBlankLines, 2), goodScore()))
}

func TestDerive_LowStructureScoreAlone(t *testing.T) {
	score := goodScore()
	score.Structure = 0.4
	out := suggest.Derive(nil, score)
	require.Len(t, out, 1)
	assert.Equal(t, "Add section structure", out[0].Title)
}

func TestDerive_Deterministic(t *testing.T) {
	issues := append(issueOf(domain.IssueMissingDirective, 2), issueOf(domain.IssueUnknownChord, 1)...)
	a := suggest.Derive(issues, goodScore())
	b := suggest.Derive(issues, goodScore())
	assert.Equal(t, a, b)
	require.Len(t, a, 2)
	assert.Equal(t, "Complete the song metadata", a[0].Title)
	assert.Equal(t, "Review unrecognized chords", a[1].Title)
}

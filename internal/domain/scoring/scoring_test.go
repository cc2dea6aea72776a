package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartfmt/chartfmt/internal/domain/chart"
	"github.com/chartfmt/chartfmt/internal/domain/scoring"
)

func TestScoreSpacing_CleanChartIsPerfect(t *testing.T) {
	lines := chart.Parse("{title: x}\n\n[Verse 1]\n[G]la la la")
	assert.Equal(t, 1.0, scoring.ScoreSpacing(lines))
}

func TestScoreSpacing_PenalizesSurplusBlanks(t *testing.T) {
	// Five lines, two surplus blanks in the run of three.
	lines := chart.Parse("a\n\n\n\nb")
	assert.InDelta(t, 1-2.0/5.0, scoring.ScoreSpacing(lines), 1e-9)
}

func TestScoreSpacing_PenalizesPaddedLyricLines(t *testing.T) {
	lines := chart.Parse("  [G]la la  \n[C]clean")
	assert.InDelta(t, 0.5, scoring.ScoreSpacing(lines), 1e-9)
}

func TestScoreSpacing_FlooredAtZero(t *testing.T) {
	lines := chart.Parse(" a \n b \n c ")
	assert.GreaterOrEqual(t, scoring.ScoreSpacing(lines), 0.0)
}

func TestScoreAlignment_CollidingChordsFail(t *testing.T) {
	// "Am7" at offset 0 is 3 wide; a chord at offset 1 collides.
	colliding := []chart.ChordPosition{{Token: "Am7", Offset: 0}, {Token: "G", Offset: 1}}
	assert.False(t, scoring.AlignedChords(colliding))

	touching := []chart.ChordPosition{{Token: "Am7", Offset: 0}, {Token: "G", Offset: 3}}
	assert.True(t, scoring.AlignedChords(touching))
}

func TestScoreAlignment_WidthIsRuneCount(t *testing.T) {
	// "A♯" renders 2 wide, not 4 bytes wide.
	chords := []chart.ChordPosition{{Token: "A♯", Offset: 0}, {Token: "G", Offset: 2}}
	assert.True(t, scoring.AlignedChords(chords))
}

func TestScoreAlignment_FractionOfPassingLines(t *testing.T) {
	lines := chart.Parse("[G]good [C]line\n[Am7][G]bad line")
	assert.InDelta(t, 0.5, scoring.ScoreAlignment(lines), 1e-9)
}

func TestScoreAlignment_NoChordLinesIsPerfect(t *testing.T) {
	lines := chart.Parse("{title: x}\n[Chorus]")
	assert.Equal(t, 1.0, scoring.ScoreAlignment(lines))
}

func TestScoreStructure_NoLyricsIsPerfect(t *testing.T) {
	lines := chart.Parse("{title: x}\n{artist: y}")
	assert.Equal(t, 1.0, scoring.ScoreStructure(lines))
}

func TestScoreStructure_UnsectionedLyricsFailDensity(t *testing.T) {
	lines := chart.Parse("[G]one\n[C]two")
	assert.InDelta(t, 0.5, scoring.ScoreStructure(lines), 1e-9)
}

func TestScoreStructure_AdjacentHeadersFail(t *testing.T) {
	lines := chart.Parse("[Verse 1]\n\n[Chorus]\n[G]la")
	assert.InDelta(t, 0.5, scoring.ScoreStructure(lines), 1e-9)
}

func TestScoreStructure_WellSectionedChartIsPerfect(t *testing.T) {
	lines := chart.Parse("[Verse 1]\n[G]la la\n\n[Chorus]\n[C]da da")
	assert.Equal(t, 1.0, scoring.ScoreStructure(lines))
}

func TestExpectedSectionCount(t *testing.T) {
	assert.Equal(t, 1, scoring.ExpectedSectionCount(1))
	assert.Equal(t, 1, scoring.ExpectedSectionCount(10))
	assert.Equal(t, 2, scoring.ExpectedSectionCount(11))
	assert.Equal(t, 5, scoring.ExpectedSectionCount(50))
	// Larger charts are held to a looser density.
	assert.Equal(t, 4, scoring.ExpectedSectionCount(51))
	assert.Equal(t, 5, scoring.ExpectedSectionCount(80))
}

func TestScoreChordFormat_FractionCanonical(t *testing.T) {
	lines := chart.Parse("[G]la [c]la [Am7]la [xyz]la")
	assert.InDelta(t, 0.5, scoring.ScoreChordFormat(lines), 1e-9)
}

func TestScoreChordFormat_NoChordsIsPerfect(t *testing.T) {
	lines := chart.Parse("just lyrics here")
	assert.Equal(t, 1.0, scoring.ScoreChordFormat(lines))
}

func TestScoreMetadata_FractionPresent(t *testing.T) {
	lines := chart.Parse("{title: Amazing Grace}\n{artist: John Newton}")
	assert.InDelta(t, 2.0/3.0, scoring.ScoreMetadata(lines), 1e-9)
}

func TestScoreMetadata_EmptyValueDoesNotCount(t *testing.T) {
	lines := chart.Parse("{title: }\n{key: G}")
	assert.InDelta(t, 1.0/3.0, scoring.ScoreMetadata(lines), 1e-9)
}

func TestScoreMetadata_AliasesCount(t *testing.T) {
	lines := chart.Parse("{t: Hallelujah}\n{by: Leonard Cohen}\n{key: C}")
	assert.Equal(t, 1.0, scoring.ScoreMetadata(lines))
}

func TestCompute_WorkedExample(t *testing.T) {
	lines := chart.Parse("{title: }\n\n\n[G]Amazing [c]grace")
	score := scoring.Compute(lines)

	assert.InDelta(t, 0.75, score.Spacing, 1e-9)
	assert.Equal(t, 1.0, score.Alignment)
	assert.InDelta(t, 0.5, score.Structure, 1e-9)
	assert.InDelta(t, 0.5, score.ChordFormat, 1e-9)
	assert.Equal(t, 0.0, score.Metadata)
	assert.Equal(t, 55, score.Percentage)
	assert.Equal(t, "F", score.Grade)
}

func TestCompute_Deterministic(t *testing.T) {
	text := "{title: x}\n[Verse 1]\n[G]la [c]la\n\n\n done "
	a := scoring.Compute(chart.Parse(text))
	b := scoring.Compute(chart.Parse(text))
	assert.Equal(t, a, b)
}

func TestCompute_SubScoresStayInRange(t *testing.T) {
	texts := []string{
		"",
		strings.Repeat("\n", 40),
		strings.Repeat("  padded  \n", 30),
		"[Verse 1]\n[Chorus]\n[Bridge]",
	}
	for _, text := range texts {
		s := scoring.Compute(chart.Parse(text))
		for name, v := range map[string]float64{
			"spacing": s.Spacing, "alignment": s.Alignment, "structure": s.Structure,
			"chord_format": s.ChordFormat, "metadata": s.Metadata, "overall": s.Overall,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, text)
			assert.LessOrEqual(t, v, 1.0, "%s for %q", name, text)
		}
	}
}

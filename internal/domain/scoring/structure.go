package scoring

import (
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// Section density policy: one header expected per sectionDensitySmall
// chord-lyric lines for charts up to smallChartLines of them, one per
// sectionDensityLarge beyond that. Tuned against typical verse/chorus
// charts; revisit with a corpus rather than in place.
const (
	smallChartLines     = 50
	sectionDensitySmall = 10
	sectionDensityLarge = 16
)

// ScoreStructure checks the presence and distribution of section headers.
// Two structural checks contribute equally: header density proportional to
// the chart's size, and no two headers adjacent with no content between
// them. Charts without chord-lyric content pass trivially.
func ScoreStructure(lines []chart.Line) float64 {
	lyricCount := 0
	headerCount := 0
	for _, l := range lines {
		switch l.Kind {
		case chart.KindChordLyric:
			lyricCount++
		case chart.KindSectionHeader:
			headerCount++
		}
	}
	if lyricCount == 0 {
		return 1
	}

	checks := 0
	passed := 0

	checks++
	if headerCount >= ExpectedSectionCount(lyricCount) {
		passed++
	}

	checks++
	if !hasAdjacentHeaders(lines) {
		passed++
	}

	return float64(passed) / float64(checks)
}

// ExpectedSectionCount returns the minimum number of section headers a
// chart with the given chord-lyric line count should carry.
func ExpectedSectionCount(lyricCount int) int {
	density := sectionDensitySmall
	if lyricCount > smallChartLines {
		density = sectionDensityLarge
	}
	return (lyricCount + density - 1) / density
}

// hasAdjacentHeaders reports whether two section headers follow each other
// with only blank lines between them.
func hasAdjacentHeaders(lines []chart.Line) bool {
	prevHeader := false
	for _, l := range lines {
		switch l.Kind {
		case chart.KindSectionHeader:
			if prevHeader {
				return true
			}
			prevHeader = true
		case chart.KindBlank:
			// blanks are not content
		default:
			prevHeader = false
		}
	}
	return false
}

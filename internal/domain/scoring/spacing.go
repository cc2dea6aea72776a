package scoring

import (
	"strings"

	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// ScoreSpacing penalizes blank-line runs beyond one and surrounding
// whitespace on chord-lyric lines. Each surplus blank line and each padded
// lyric line counts as one penalized line; the score is
// 1 - penalized/total, floored at zero.
func ScoreSpacing(lines []chart.Line) float64 {
	if len(lines) == 0 {
		return 1
	}

	penalized := 0
	blankRun := 0
	for _, l := range lines {
		if l.Kind == chart.KindBlank {
			blankRun++
			if blankRun > 1 {
				penalized++
			}
			continue
		}
		blankRun = 0

		if l.Kind == chart.KindChordLyric && l.Raw != strings.TrimSpace(l.Raw) {
			penalized++
		}
	}

	score := 1 - float64(penalized)/float64(len(lines))
	if score < 0 {
		return 0
	}
	return score
}

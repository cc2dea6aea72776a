package scoring

import (
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// ScoreChordFormat checks every chord token against the recognized chord
// grammar. The score is the fraction of tokens matching; charts without
// chords pass trivially.
func ScoreChordFormat(lines []chart.Line) float64 {
	total := 0
	matching := 0
	for _, l := range lines {
		for _, c := range l.Chords {
			total++
			if chart.IsCanonical(c.Token) {
				matching++
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(matching) / float64(total)
}

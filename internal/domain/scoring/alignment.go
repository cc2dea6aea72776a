package scoring

import (
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// ScoreAlignment checks that chords on each chord-lyric line are anchored at
// strictly increasing offsets and that each chord's rendered width does not
// overlap the next chord. Lines with fewer than two chords pass trivially.
// The score is the fraction of chord-lyric lines passing.
func ScoreAlignment(lines []chart.Line) float64 {
	total := 0
	passing := 0
	for _, l := range lines {
		if l.Kind != chart.KindChordLyric {
			continue
		}
		total++
		if AlignedChords(l.Chords) {
			passing++
		}
	}
	if total == 0 {
		return 1
	}
	return float64(passing) / float64(total)
}

// AlignedChords reports whether the chord positions of one line are
// strictly increasing and non-overlapping.
func AlignedChords(chords []chart.ChordPosition) bool {
	for i := 1; i < len(chords); i++ {
		prev := chords[i-1]
		// Tokens are never empty, so the width check also enforces strictly
		// increasing offsets.
		if chords[i].Offset < prev.Offset+len([]rune(prev.Token)) {
			return false
		}
	}
	return true
}

package detect

import (
	"fmt"
	"strings"

	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// Block is a maximal run of chord-lyric lines with no section label of its
// own. Label is the name the heuristic inferred for it.
type Block struct {
	StartLine int
	Label     string
}

// UnlabeledBlocks finds lyric blocks not introduced by a section header and
// infers a label for each. The heuristic is a policy, not a law: a block
// whose normalized lyric signature repeats an earlier block is a chorus,
// anything else is the next verse. Verse numbering continues from any
// existing verse headers so inserted labels never duplicate present ones.
func UnlabeledBlocks(lines []chart.Line) []Block {
	verseCount := existingVerseCount(lines)

	var (
		blocks    []Block
		seen      = make(map[string]bool)
		sig       []string
		startLine int
		labeled   bool
	)
	prevWasHeader := false

	flush := func() {
		if len(sig) == 0 {
			return
		}
		signature := strings.Join(sig, "\n")
		if !labeled {
			label := ""
			if seen[signature] {
				label = "Chorus"
			} else {
				verseCount++
				label = fmt.Sprintf("Verse %d", verseCount)
			}
			blocks = append(blocks, Block{StartLine: startLine, Label: label})
		}
		seen[signature] = true
		sig = nil
	}

	for _, l := range lines {
		switch l.Kind {
		case chart.KindChordLyric:
			if len(sig) == 0 {
				startLine = l.Number
				labeled = prevWasHeader
			}
			sig = append(sig, normalizeLyric(l.Lyric))
			prevWasHeader = false
		case chart.KindSectionHeader:
			flush()
			prevWasHeader = true
		case chart.KindBlank:
			flush()
			// A blank ends a block but keeps a preceding header in force
			// only until real content appears, so do not reset prevWasHeader
			// on the blank between a header and its block.
			if len(sig) == 0 && prevWasHeader {
				continue
			}
			prevWasHeader = false
		default:
			flush()
			prevWasHeader = false
		}
	}
	flush()

	return blocks
}

func existingVerseCount(lines []chart.Line) int {
	count := 0
	for _, l := range lines {
		if l.Kind == chart.KindSectionHeader &&
			strings.HasPrefix(strings.ToLower(l.Section), "verse") {
			count++
		}
	}
	return count
}

func normalizeLyric(lyric string) string {
	return strings.Join(strings.Fields(strings.ToLower(lyric)), " ")
}

package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartfmt/chartfmt/internal/domain/chart"
	"github.com/chartfmt/chartfmt/internal/domain/detect"
)

func blocksFor(text string) []detect.Block {
	return detect.UnlabeledBlocks(chart.Parse(text))
}

func TestUnlabeledBlocks_NumbersVerses(t *testing.T) {
	blocks := blocksFor("[G]first verse line\n\n[C]second verse line")
	require.Len(t, blocks, 2)
	assert.Equal(t, detect.Block{StartLine: 1, Label: "Verse 1"}, blocks[0])
	assert.Equal(t, detect.Block{StartLine: 3, Label: "Verse 2"}, blocks[1])
}

func TestUnlabeledBlocks_RepeatedBlockIsChorus(t *testing.T) {
	blocks := blocksFor("[G]la la la\n\n[C]something else\n\n[G]la la la")
	require.Len(t, blocks, 3)
	assert.Equal(t, "Verse 1", blocks[0].Label)
	assert.Equal(t, "Verse 2", blocks[1].Label)
	assert.Equal(t, "Chorus", blocks[2].Label)
}

func TestUnlabeledBlocks_SignatureIgnoresChordsAndCase(t *testing.T) {
	// Same lyric with different chords and casing still repeats.
	blocks := blocksFor("[G]La  La   LA\n\n[Am]la la la")
	require.Len(t, blocks, 2)
	assert.Equal(t, "Chorus", blocks[1].Label)
}

func TestUnlabeledBlocks_HeaderedBlockIsSkipped(t *testing.T) {
	blocks := blocksFor("[Verse 1]\n[G]labeled\n\n[C]unlabeled")
	require.Len(t, blocks, 1)
	assert.Equal(t, 4, blocks[0].StartLine)
}

func TestUnlabeledBlocks_BlankBetweenHeaderAndBlockKeepsLabel(t *testing.T) {
	blocks := blocksFor("[Chorus]\n\n[G]still belongs to the chorus")
	assert.Empty(t, blocks)
}

func TestUnlabeledBlocks_NumberingContinuesFromExistingVerses(t *testing.T) {
	blocks := blocksFor("[Verse 1]\n[G]one\n\n[Verse 2]\n[C]two\n\n[D]three")
	require.Len(t, blocks, 1)
	assert.Equal(t, "Verse 3", blocks[0].Label)
}

func TestUnlabeledBlocks_LabeledRepeatStillSeedsChorusSignature(t *testing.T) {
	// The first occurrence is headed; the unlabeled repeat is a chorus.
	blocks := blocksFor("[Chorus]\n[G]oh happy day\n\n[C]verse text\n\n[G]oh happy day")
	require.Len(t, blocks, 2)
	assert.Equal(t, "Verse 1", blocks[0].Label)
	assert.Equal(t, "Chorus", blocks[1].Label)
}

func TestUnlabeledBlocks_SignatureRespectsLineBoundaries(t *testing.T) {
	// Same words split across lines differently are different blocks, not a
	// verse/chorus repeat.
	blocks := blocksFor("[G]hello there\n[C]world\n\n[G]hello\n[C]there world")
	require.Len(t, blocks, 2)
	assert.Equal(t, "Verse 1", blocks[0].Label)
	assert.Equal(t, "Verse 2", blocks[1].Label)
}

func TestUnlabeledBlocks_NoLyricsNoBlocks(t *testing.T) {
	assert.Empty(t, blocksFor("{title: x}\n\n[Chorus]"))
}

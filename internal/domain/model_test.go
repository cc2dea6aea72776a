package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartfmt/chartfmt/internal/domain"
)

func TestQualityScore_Finalize(t *testing.T) {
	q := domain.QualityScore{Spacing: 1, Alignment: 1, Structure: 0.5, ChordFormat: 0.5, Metadata: 0}
	q.Finalize()

	assert.InDelta(t, 0.6, q.Overall, 1e-9)
	assert.Equal(t, 60, q.Percentage)
	assert.Equal(t, "D", q.Grade)
}

func TestQualityScore_WeightsSumToOne(t *testing.T) {
	w := domain.SubScoreWeights
	assert.InDelta(t, 1.0, w.Spacing+w.Alignment+w.Structure+w.ChordFormat+w.Metadata, 1e-9)
}

func TestGradeFor_Bands(t *testing.T) {
	cases := map[int]string{
		100: "A", 90: "A",
		89: "B", 80: "B",
		79: "C", 70: "C",
		69: "D", 60: "D",
		59: "F", 0: "F",
	}
	for pct, want := range cases {
		assert.Equal(t, want, domain.GradeFor(pct), "percentage %d", pct)
	}
}

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Less(t, domain.SeverityRank(domain.SeverityCritical), domain.SeverityRank(domain.SeverityHigh))
	assert.Less(t, domain.SeverityRank(domain.SeverityHigh), domain.SeverityRank(domain.SeverityMedium))
	assert.Less(t, domain.SeverityRank(domain.SeverityMedium), domain.SeverityRank(domain.SeverityLow))
	assert.Less(t, domain.SeverityRank(domain.SeverityLow), domain.SeverityRank(domain.Severity("unknown")))
}

func TestFormattingResult_Improvement(t *testing.T) {
	r := domain.FormattingResult{}
	r.Score.Overall = 0.55
	r.ScoreAfter.Overall = 0.70
	assert.InDelta(t, 0.15, r.Improvement(), 1e-9)
}

// Package scoring computes the five formatting quality sub-scores of a
// parsed chart. Every function here is pure and deterministic: identical
// input lines always yield bit-identical scores.
package scoring

import (
	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/chart"
)

// Compute scores a parsed line sequence along all five dimensions and
// derives the weighted overall score, percentage and grade.
func Compute(lines []chart.Line) domain.QualityScore {
	q := domain.QualityScore{
		Spacing:     ScoreSpacing(lines),
		Alignment:   ScoreAlignment(lines),
		Structure:   ScoreStructure(lines),
		ChordFormat: ScoreChordFormat(lines),
		Metadata:    ScoreMetadata(lines),
	}
	q.Finalize()
	return q
}

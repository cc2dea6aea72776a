package application

import (
	"fmt"

	"github.com/chartfmt/chartfmt/internal/domain"
	"github.com/chartfmt/chartfmt/internal/domain/chart"
	"github.com/chartfmt/chartfmt/internal/domain/detect"
	"github.com/chartfmt/chartfmt/internal/domain/fix"
	"github.com/chartfmt/chartfmt/internal/domain/scoring"
	"github.com/chartfmt/chartfmt/internal/domain/suggest"
)

// MaxDocumentBytes bounds a single chart. Charts are hand-typed song
// sheets; anything over this is almost certainly a mis-imported file and is
// rejected rather than churned through the pipeline.
const MaxDocumentBytes = 1 << 20

// FormatService runs the single-document pipeline:
// parse → score → detect → suggest → fix → re-score.
type FormatService struct{}

func NewFormatService() *FormatService {
	return &FormatService{}
}

// Format analyzes text and applies every auto-fixable issue (unless
// opts.AnalyzeOnly is set). Equivalent to FormatSelected with an empty
// selection.
func (s *FormatService) Format(text string, opts domain.FormattingOptions) (*domain.FormattingResult, error) {
	return s.FormatSelected(text, opts, nil)
}

// FormatSelected analyzes text and applies the selected subset of
// auto-fixable issues. An empty selection means "all auto-fixable". The
// result's issue line numbers always reference the original text.
func (s *FormatService) FormatSelected(text string, opts domain.FormattingOptions, selectedIDs []string) (*domain.FormattingResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if len(text) > MaxDocumentBytes {
		return nil, fmt.Errorf("document is %d bytes, limit is %d", len(text), MaxDocumentBytes)
	}

	lines := chart.Parse(text)
	score := scoring.Compute(lines)
	issues := detect.Detect(lines, opts)
	suggestions := suggest.Derive(issues, score)

	formatted := text
	var changes []domain.FormattingChange
	if !opts.AnalyzeOnly {
		formatted, changes = fix.Apply(text, issues, selectedIDs)
	}

	after := scoring.Compute(chart.Parse(formatted))

	return &domain.FormattingResult{
		OriginalText:  text,
		FormattedText: formatted,
		Score:         score,
		ScoreAfter:    after,
		Issues:        issues,
		Suggestions:   suggestions,
		Changes:       changes,
	}, nil
}

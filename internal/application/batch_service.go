package application

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chartfmt/chartfmt/internal/domain"
)

// BatchService sequences the formatting pipeline over a collection of
// charts. Documents are independent: no state is shared between them, a
// failure in one never aborts the run, and the work may execute in
// parallel.
type BatchService struct {
	format  *FormatService
	workers int
}

// NewBatchService creates a batch orchestrator. workers <= 0 selects one
// worker per CPU.
func NewBatchService(format *FormatService, workers int) *BatchService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchService{format: format, workers: workers}
}

// Format processes every document and aggregates the results. onProgress
// (optional) is invoked after each document completes with
// completed/total; delivery is serialized under a lock so fractions are
// monotonically increasing even when documents run concurrently, reaching
// exactly 1.0 on completion. Cancelling ctx stops launching new documents;
// in-flight documents run to completion.
func (s *BatchService) Format(ctx context.Context, docs []domain.Document, opts domain.FormattingOptions, onProgress domain.ProgressFunc) *domain.BatchFormattingResult {
	result := &domain.BatchFormattingResult{
		Results:   make(map[string]*domain.FormattingResult, len(docs)),
		Failures:  make(map[string]string),
		Timestamp: time.Now(),
	}

	if len(docs) == 0 {
		if onProgress != nil {
			onProgress(1)
		}
		return result
	}

	var mu sync.Mutex
	completed := 0
	total := len(docs)

	g := &errgroup.Group{}
	g.SetLimit(s.workers)

	for _, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		doc := doc
		g.Go(func() error {
			res, err := s.formatOne(doc.Text, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures[doc.ID] = err.Error()
			} else {
				result.Results[doc.ID] = res
			}
			completed++
			if onProgress != nil {
				onProgress(float64(completed) / float64(total))
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are per-document

	s.aggregate(result)
	return result
}

// formatOne isolates a single document: any panic inside the pipeline is
// converted to that document's failure.
func (s *BatchService) formatOne(text string, opts domain.FormattingOptions) (res *domain.FormattingResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return s.format.Format(text, opts)
}

func (s *BatchService) aggregate(result *domain.BatchFormattingResult) {
	result.SuccessCount = len(result.Results)
	result.FailureCount = len(result.Failures)

	var improvement float64
	for _, res := range result.Results {
		improvement += res.Improvement()
		result.TotalIssuesFixed += len(res.Changes)
	}
	if result.SuccessCount > 0 {
		result.AverageQualityImprovement = improvement / float64(result.SuccessCount)
	}
}

// UndoAll reverts every successfully formatted document of a prior batch to
// its recorded original text. Idempotent: the write is the original text
// either way. Documents that failed formatting were never mutated and are
// not touched.
func (s *BatchService) UndoAll(result *domain.BatchFormattingResult, store domain.DocumentStore) error {
	if result == nil {
		return nil
	}

	ids := make([]string, 0, len(result.Results))
	for id := range result.Results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := store.Store(id, result.Results[id].OriginalText); err != nil {
			return fmt.Errorf("restoring %s: %w", id, err)
		}
	}
	return nil
}

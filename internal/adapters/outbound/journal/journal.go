// Package journal persists chartfmt's per-directory records: the score
// history of individual charts and a snapshot of the last batch run so a
// later undo can restore original texts.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/chartfmt/chartfmt/internal/domain"
)

const (
	scoresFile = ".chartfmt/history/scores.json"
	batchFile  = ".chartfmt/history/last_batch.json"
)

// FileJournal implements domain.BatchJournal using JSON file storage.
type FileJournal struct{}

func New() *FileJournal {
	return &FileJournal{}
}

func (j *FileJournal) AppendScore(dir string, entry domain.ScoreEntry) error {
	entries, err := j.LoadScores(dir)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return writeJSON(filepath.Join(dir, scoresFile), entries)
}

func (j *FileJournal) LoadScores(dir string) ([]domain.ScoreEntry, error) {
	var entries []domain.ScoreEntry
	if err := readJSON(filepath.Join(dir, scoresFile), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (j *FileJournal) SaveBatch(dir string, result *domain.BatchFormattingResult) error {
	return writeJSON(filepath.Join(dir, batchFile), result)
}

// LoadBatch returns the last saved batch, or (nil, nil) when none exists.
func (j *FileJournal) LoadBatch(dir string) (*domain.BatchFormattingResult, error) {
	var result domain.BatchFormattingResult
	fp := filepath.Join(dir, batchFile)
	if _, err := os.Stat(fp); os.IsNotExist(err) {
		return nil, nil
	}
	if err := readJSON(fp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

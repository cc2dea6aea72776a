package domain

// Document is one chart handed to the batch orchestrator. ID is the stable
// document identity used as the map key in BatchFormattingResult.Results;
// the engine never resolves IDs itself.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DocumentStore is the caller-owned store the undo path writes through.
// The engine reads nothing from it.
type DocumentStore interface {
	Store(id, text string) error
}

// ConfigLoader loads formatting options for a chart collection directory.
type ConfigLoader interface {
	Load(dir string) (FormattingOptions, error)
}

// BatchJournal persists the last batch result per directory so a later undo
// can restore original texts, plus per-file score history entries.
type BatchJournal interface {
	SaveBatch(dir string, result *BatchFormattingResult) error
	LoadBatch(dir string) (*BatchFormattingResult, error)
	AppendScore(dir string, entry ScoreEntry) error
	LoadScores(dir string) ([]ScoreEntry, error)
}

// ScoreEntry is one historical score record for a chart file.
type ScoreEntry struct {
	Timestamp  string `json:"timestamp"`
	File       string `json:"file"`
	CommitHash string `json:"commit_hash,omitempty"`
	Percentage int    `json:"percentage"`
	Grade      string `json:"grade"`
}

// GitInfo reports version-control facts about a chart directory.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

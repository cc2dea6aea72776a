// Package store provides the filesystem-backed document store the CLI
// feeds the engine with. Documents are keyed by their path relative to the
// store root; the engine itself never touches the filesystem.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chartfmt/chartfmt/internal/domain"
)

// chartExtensions are the file types treated as chord charts.
var chartExtensions = map[string]bool{
	".cho":      true,
	".crd":      true,
	".chordpro": true,
	".pro":      true,
	".txt":      true,
}

// FileStore implements domain.DocumentStore over a directory tree.
type FileStore struct {
	root string
}

// New creates a FileStore rooted at dir.
func New(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Load reads one chart by its relative path.
func (s *FileStore) Load(id string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, id))
	if err != nil {
		return "", fmt.Errorf("reading chart %s: %w", id, err)
	}
	return string(data), nil
}

// Store writes a chart's text back to its relative path.
func (s *FileStore) Store(id, text string) error {
	path := filepath.Join(s.root, id)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing chart %s: %w", id, err)
	}
	return nil
}

// LoadAll collects every chart file under the root, sorted by relative path
// so batch runs are reproducible. Hidden directories (including the
// .chartfmt journal) are skipped.
func (s *FileStore) LoadAll() ([]domain.Document, error) {
	var docs []domain.Document

	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !chartExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading chart %s: %w", rel, err)
		}
		docs = append(docs, domain.Document{ID: filepath.ToSlash(rel), Text: string(data)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

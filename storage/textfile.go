package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"ewintr.nl/ytsummary/model"
)

// TextStore writes each summary to <video id>.txt in a directory.
type TextStore struct {
	dir string
}

func NewTextStore(dir string) (*TextStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &TextStore{dir: dir}, nil
}

func FileName(id model.YoutubeVideoID) string {
	return fmt.Sprintf("%s.txt", id)
}

// Save writes the response of a successful result and returns the path of
// the file. An existing file for the same video is overwritten.
func (ts *TextStore) Save(result model.Result) (string, error) {
	if !result.OK() {
		return "", fmt.Errorf("refusing to save failed result for %s: %s", result.VideoURL, result.Error)
	}

	path := filepath.Join(ts.dir, FileName(result.VideoID))
	if err := os.WriteFile(path, []byte(result.Response), 0o644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	return path, nil
}

var _ SummaryRepository = (*TextStore)(nil)

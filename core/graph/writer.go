package graph

import (
	"fmt"
	"os"
	"path/filepath"
)

const DocumentFileName = "graph.json"

// ResetOutputDir clears and recreates the output directory so every run
// starts from a clean slate instead of patching stale files.
func ResetOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// WriteDocument serializes the document into the output directory. This is
// the one write whose failure aborts the run.
func WriteDocument(doc Document, outputDir string) (string, error) {
	data, err := doc.MarshalIndentJSON()
	if err != nil {
		return "", fmt.Errorf("failed to serialize graph document: %w", err)
	}
	path := filepath.Join(outputDir, DocumentFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write graph document %s: %w", path, err)
	}
	return path, nil
}

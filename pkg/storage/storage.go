package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes downloaded documents and extraction artifacts to disk under a
// fixed directory layout.
type Store struct {
	documentsDir string
	textDir      string
	metadataDir  string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// NewStore creates a Store and ensures its directories exist.
func NewStore(documentsDir, textDir, metadataDir string) (*Store, error) {
	for _, dir := range []string{documentsDir, textDir, metadataDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &Store{
		documentsDir: documentsDir,
		textDir:      textDir,
		metadataDir:  metadataDir,
	}, nil
}

// DocumentsDir returns the directory holding downloaded PDFs.
func (s *Store) DocumentsDir() string { return s.documentsDir }

// TextDir returns the directory holding extracted text artifacts.
func (s *Store) TextDir() string { return s.textDir }

// MetadataDir returns the directory holding JSON state and summaries.
func (s *Store) MetadataDir() string { return s.metadataDir }

// SafeName reduces a document display name to a filesystem-safe form:
// alphanumerics, spaces, hyphens, and underscores survive, everything else
// is dropped.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SaveDocument writes downloaded PDF bytes under a sanitized filename and
// returns the local path.
func (s *Store) SaveDocument(name string, content []byte) (string, error) {
	filename := SafeName(name) + ".pdf"
	localPath := filepath.Join(s.documentsDir, filename)
	if err := os.WriteFile(localPath, content, 0644); err != nil {
		return "", fmt.Errorf("error saving document: %w", err)
	}
	return localPath, nil
}

// SaveText writes an extraction artifact into the text directory and returns
// its path.
func (s *Store) SaveText(filename string, content []byte) (string, error) {
	path := filepath.Join(s.textDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// SaveMetadata writes a JSON artifact into the metadata directory and returns
// its path.
func (s *Store) SaveMetadata(filename string, content []byte) (string, error) {
	path := filepath.Join(s.metadataDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

// ReadFile reads any file back.
func (s *Store) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// HasFile reports whether a path exists.
func (s *Store) HasFile(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns size and mtime for a file without reading it.
func (s *Store) GetFileStats(path string) (*FileStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}
	return &FileStats{SizeBytes: info.Size(), ModTime: info.ModTime()}, nil
}

// ListPDFs returns the PDF files currently in the documents directory, in
// lexical order.
func (s *Store) ListPDFs() ([]string, error) {
	pattern := filepath.Join(s.documentsDir, "*.pdf")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	return matches, nil
}

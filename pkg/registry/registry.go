// Package registry persists the set of tracked document records as a single
// JSON snapshot keyed by URL.
package registry

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dtnitsch/acs-monitor/models"
)

const snapshotFile = "known_documents.json"

// Registry loads and saves the full document registry. A corrupt or missing
// snapshot is treated as "nothing known", never as a fatal error.
type Registry struct {
	path   string
	logger *slog.Logger
}

// New creates a Registry rooted in the metadata directory.
func New(metadataDir string, logger *slog.Logger) *Registry {
	return &Registry{
		path:   filepath.Join(metadataDir, snapshotFile),
		logger: logger,
	}
}

// Path returns the snapshot file location.
func (r *Registry) Path() string { return r.path }

// Load returns the last saved records in snapshot order. Missing or
// unparseable snapshots yield an empty slice.
func (r *Registry) Load() []models.DocumentRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("error loading known documents", "path", r.path, "error", err)
		}
		return nil
	}

	var docs []models.DocumentRecord
	if err := json.Unmarshal(data, &docs); err != nil {
		r.logger.Error("corrupt known documents snapshot, starting empty", "path", r.path, "error", err)
		return nil
	}
	return docs
}

// ByURL indexes records by their URL, the registry's primary key.
func ByURL(docs []models.DocumentRecord) map[string]models.DocumentRecord {
	known := make(map[string]models.DocumentRecord, len(docs))
	for _, doc := range docs {
		known[doc.URL] = doc
	}
	return known
}

// Save overwrites the snapshot in full. It is safe to call every run whether
// or not anything changed.
func (r *Registry) Save(docs []models.DocumentRecord) error {
	if docs == nil {
		docs = []models.DocumentRecord{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}

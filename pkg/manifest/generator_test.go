package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()

	base := t.TempDir()
	store, err := storage.NewStore(
		filepath.Join(base, "docs"),
		filepath.Join(base, "text"),
		filepath.Join(base, "meta"),
	)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

func sampleChange() models.ChangeEvent {
	return models.ChangeEvent{
		Type: models.ChangeUpdated,
		Document: models.DocumentRecord{
			Name:        "Private Pilot ACS",
			URL:         "https://example.com/private_acs.pdf",
			ContentHash: common.String("deadbeef"),
		},
		Timestamp: "2024-01-01T00:00:00Z",
	}
}

func TestWriteChangeLog(t *testing.T) {
	store := setupTestStore(t)

	path, err := WriteChangeLog(store, []models.ChangeEvent{sampleChange()})
	if err != nil {
		t.Fatalf("WriteChangeLog() error = %v", err)
	}
	if filepath.Base(path) != "changes.json" {
		t.Errorf("change log filename = %q, want changes.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read change log: %v", err)
	}
	var changes []models.ChangeEvent
	if err := json.Unmarshal(data, &changes); err != nil {
		t.Fatalf("change log not parseable: %v", err)
	}
	if len(changes) != 1 || changes[0].Type != models.ChangeUpdated {
		t.Errorf("change log = %+v, want one updated event", changes)
	}
}

func TestWriteChangeLog_OverwritesStaleLog(t *testing.T) {
	store := setupTestStore(t)

	if _, err := WriteChangeLog(store, []models.ChangeEvent{sampleChange()}); err != nil {
		t.Fatalf("WriteChangeLog() error = %v", err)
	}

	// A later run with no changes must clear the log.
	path, err := WriteChangeLog(store, nil)
	if err != nil {
		t.Fatalf("WriteChangeLog(nil) error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read change log: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("change log = %q, want empty array", string(data))
	}
}

func TestWriteRunSummary(t *testing.T) {
	store := setupTestStore(t)
	changes := []models.ChangeEvent{sampleChange()}
	source := &models.SourceInfo{Title: "Airman Certification Standards"}

	path, err := WriteRunSummary(store, 12, changes, source)
	if err != nil {
		t.Fatalf("WriteRunSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read run summary: %v", err)
	}
	var summary models.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("run summary not parseable: %v", err)
	}
	if summary.TotalDocuments != 12 {
		t.Errorf("TotalDocuments = %d, want 12", summary.TotalDocuments)
	}
	if summary.ChangesDetected != 1 {
		t.Errorf("ChangesDetected = %d, want 1", summary.ChangesDetected)
	}
	if summary.Source == nil || summary.Source.Title != "Airman Certification Standards" {
		t.Error("source info not carried into summary")
	}
	if summary.Timestamp == "" {
		t.Error("Timestamp not set")
	}
}

func TestWriteProcessingSummary(t *testing.T) {
	store := setupTestStore(t)

	in := models.ProcessingSummary{
		ProcessedAt:           "2024-01-01T00:00:00Z",
		TotalDocuments:        3,
		SuccessfullyProcessed: 2,
		ProcessingMethod:      "poppler",
		Documents:             []string{"A", "B"},
		TopKeywords:           []string{"altitude:5"},
	}

	path, err := WriteProcessingSummary(store, in)
	if err != nil {
		t.Fatalf("WriteProcessingSummary() error = %v", err)
	}
	if filepath.Base(path) != "processing_summary.json" {
		t.Errorf("filename = %q, want processing_summary.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}
	var out models.ProcessingSummary
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("summary not parseable: %v", err)
	}
	if out.SuccessfullyProcessed != 2 || out.ProcessingMethod != "poppler" {
		t.Errorf("summary = %+v, want round-tripped input", out)
	}
}

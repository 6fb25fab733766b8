package registry

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
)

func setupTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(t.TempDir(), common.NewLogger(true))
}

func sampleDocs() []models.DocumentRecord {
	return []models.DocumentRecord{
		{
			Name:         "Private Pilot ACS",
			URL:          "https://example.com/private_acs.pdf",
			LastModified: common.String("Mon, 01 Jan 2024 00:00:00 GMT"),
			ETag:         common.String(`"abc123"`),
			ContentHash:  common.String("deadbeef"),
			FileSize:     common.Int64(1024),
			LocalPath:    common.String("data/acs-documents/Private Pilot ACS.pdf"),
			LastChecked:  common.String("2024-01-01T00:00:00Z"),
		},
		{
			Name: "Commercial Pilot ACS",
			URL:  "https://example.com/commercial_acs.pdf",
		},
	}
}

func TestRegistry_RoundTrip(t *testing.T) {
	reg := setupTestRegistry(t)
	docs := sampleDocs()

	if err := reg.Save(docs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := reg.Load()
	if !reflect.DeepEqual(loaded, docs) {
		t.Errorf("Load() = %+v, want %+v", loaded, docs)
	}

	// A second save/load cycle must not drift.
	if err := reg.Save(loaded); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	again := reg.Load()
	if !reflect.DeepEqual(again, docs) {
		t.Errorf("second Load() = %+v, want %+v", again, docs)
	}
}

func TestRegistry_MissingSnapshotIsEmpty(t *testing.T) {
	reg := setupTestRegistry(t)

	if docs := reg.Load(); len(docs) != 0 {
		t.Errorf("Load() on missing snapshot = %d docs, want 0", len(docs))
	}
}

func TestRegistry_CorruptSnapshotIsEmpty(t *testing.T) {
	reg := setupTestRegistry(t)

	if err := os.WriteFile(reg.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt snapshot: %v", err)
	}

	if docs := reg.Load(); len(docs) != 0 {
		t.Errorf("Load() on corrupt snapshot = %d docs, want 0", len(docs))
	}
}

func TestRegistry_SaveNilWritesEmptyArray(t *testing.T) {
	reg := setupTestRegistry(t)

	if err := reg.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	data, err := os.ReadFile(reg.Path())
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("snapshot = %q, want %q", string(data), "[]")
	}
}

func TestRegistry_SnapshotFieldNames(t *testing.T) {
	reg := setupTestRegistry(t)

	if err := reg.Save(sampleDocs()[:1]); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(reg.Path())
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}

	for _, field := range []string{
		`"name"`, `"url"`, `"last_modified"`, `"etag"`,
		`"content_hash"`, `"file_size"`, `"local_path"`, `"last_checked"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("snapshot missing field %s", field)
		}
	}
}

func TestByURL(t *testing.T) {
	docs := sampleDocs()
	known := ByURL(docs)

	if len(known) != 2 {
		t.Fatalf("ByURL() has %d entries, want 2", len(known))
	}
	doc, ok := known["https://example.com/private_acs.pdf"]
	if !ok {
		t.Fatal("ByURL() missing private ACS entry")
	}
	if doc.Name != "Private Pilot ACS" {
		t.Errorf("doc.Name = %q, want %q", doc.Name, "Private Pilot ACS")
	}
}

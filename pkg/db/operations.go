package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Check statuses recorded in document_checks.
const (
	CheckUnchanged   = "unchanged"
	CheckChanged     = "changed"
	CheckNew         = "new"
	CheckProbeFailed = "probe_failed"
	CheckFetchFailed = "fetch_failed"
)

// CheckRecord is one row of a document's check history.
type CheckRecord struct {
	CheckID      int64
	CheckedAt    time.Time
	Status       string
	StatusCode   int
	ETag         string
	LastModified string
	SizeBytes    int64
}

// RunRecord is one row of run history.
type RunRecord struct {
	RunID         int64
	Kind          string
	StartedAt     time.Time
	FinishedAt    sql.NullTime
	DocumentCount int
	ChangeCount   int
	ErrorCount    int
}

// UpsertDocument inserts a tracked document or refreshes its name, returning
// the document_id either way.
func (db *DB) UpsertDocument(url, name string) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE url = ?", url).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents SET name = ?, updated_at = CURRENT_TIMESTAMP
			WHERE document_id = ?
		`, name, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (url, name) VALUES (?, ?)
	`, url, name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	documentID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return documentID, nil
}

// RecordCheck records one check attempt for a document. Optional header
// fields may be nil when the probe never returned them.
func (db *DB) RecordCheck(documentID int64, status string, statusCode int, etag, lastModified *string, sizeBytes *int64) error {
	_, err := db.Exec(`
		INSERT INTO document_checks (document_id, status, status_code, etag, last_modified, size_bytes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, documentID, status, statusCode, etag, lastModified, sizeBytes)
	if err != nil {
		return fmt.Errorf("failed to record check: %w", err)
	}
	return nil
}

// CheckHistory returns the most recent checks for a URL, newest first.
func (db *DB) CheckHistory(url string, limit int) ([]CheckRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT c.check_id, c.checked_at, c.status,
		       COALESCE(c.status_code, 0), COALESCE(c.etag, ''),
		       COALESCE(c.last_modified, ''), COALESCE(c.size_bytes, 0)
		FROM document_checks c
		JOIN documents d ON d.document_id = c.document_id
		WHERE d.url = ?
		ORDER BY c.check_id DESC
		LIMIT ?
	`, url, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query check history: %w", err)
	}
	defer rows.Close()

	var checks []CheckRecord
	for rows.Next() {
		var c CheckRecord
		if err := rows.Scan(&c.CheckID, &c.CheckedAt, &c.Status, &c.StatusCode, &c.ETag, &c.LastModified, &c.SizeBytes); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// StartRun opens a run row and returns its id.
func (db *DB) StartRun(kind string) (int64, error) {
	result, err := db.Exec("INSERT INTO runs (kind) VALUES (?)", kind)
	if err != nil {
		return 0, fmt.Errorf("failed to start run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun closes a run row with its final counters.
func (db *DB) FinishRun(runID int64, documentCount, changeCount, errorCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET finished_at = CURRENT_TIMESTAMP, document_count = ?, change_count = ?, error_count = ?
		WHERE run_id = ?
	`, documentCount, changeCount, errorCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, kind, started_at, finished_at, document_count, change_count, error_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.RunID, &r.Kind, &r.StartedAt, &r.FinishedAt, &r.DocumentCount, &r.ChangeCount, &r.ErrorCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

package models

// DocumentRecord is the last-observed state of one tracked document, keyed
// by URL. Pointer fields distinguish "never observed" from "observed empty";
// a record with all optional fields nil has never been successfully checked.
type DocumentRecord struct {
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	LastModified *string `json:"last_modified"`
	ETag         *string `json:"etag"`
	ContentHash  *string `json:"content_hash"`
	FileSize     *int64  `json:"file_size"`
	LocalPath    *string `json:"local_path"`
	LastChecked  *string `json:"last_checked"`
}

// Change kinds as they appear in changes.json.
const (
	ChangeNew     = "new"
	ChangeUpdated = "updated"
)

// ChangeEvent records one detected change with the document snapshot at
// detection time.
type ChangeEvent struct {
	Type      string         `json:"type"`
	Document  DocumentRecord `json:"document"`
	Timestamp string         `json:"timestamp"`
}

// SourceInfo is metadata scraped from the discovery page itself.
type SourceInfo struct {
	Title    string `json:"title,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	SiteName string `json:"site_name,omitempty"`
}

// Candidate is a document descriptor produced by discovery: a display name
// and an absolute URL, nothing more.
type Candidate struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RunSummary is the monitor run metadata written to last_run_summary.json.
type RunSummary struct {
	Timestamp       string        `json:"timestamp"`
	TotalDocuments  int           `json:"total_documents"`
	ChangesDetected int           `json:"changes_detected"`
	Changes         []ChangeEvent `json:"changes"`
	Source          *SourceInfo   `json:"source,omitempty"`
}

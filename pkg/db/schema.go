package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Tracked documents, one row per monitored URL
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    first_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_url ON documents(url);

-- Every check attempt, including the failures the registry never shows.
-- status: unchanged, changed, new, probe_failed, fetch_failed
CREATE TABLE IF NOT EXISTS document_checks (
    check_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    checked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status TEXT NOT NULL,
    status_code INTEGER,
    etag TEXT,
    last_modified TEXT,
    size_bytes INTEGER,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_checks_document ON document_checks(document_id);
CREATE INDEX IF NOT EXISTS idx_checks_time ON document_checks(checked_at);
CREATE INDEX IF NOT EXISTS idx_checks_status ON document_checks(status);

-- One row per pipeline run (monitor or process)
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    document_count INTEGER DEFAULT 0,
    change_count INTEGER DEFAULT 0,
    error_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`

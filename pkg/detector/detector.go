// Package detector decides whether a tracked document's remote content
// differs from its last-known state, escalating from cheap header signals to
// a full content hash only when the headers already suggest drift.
package detector

import (
	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/fetcher"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

// Decision is the outcome of comparing header signals.
type Decision int

const (
	// NoChange means every cheap signal matched; no download is warranted.
	NoChange Decision = iota
	// Escalate means at least one signal differs; the caller must fetch the
	// body and confirm with VerifyContent before declaring a real change.
	Escalate
)

func (d Decision) String() string {
	if d == Escalate {
		return "escalate"
	}
	return "no_change"
}

// strPtrEqual treats two nil pointers as equal and nil vs non-nil as a
// difference, so an absent header appearing (or vice versa) is a signal.
func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Evaluate compares the last-known record against a fresh header probe.
// Any differing signal (last-modified, etag, or size) triggers escalation.
// The comparison is an OR: servers routinely supply only a subset of these
// headers, and any one of them moving is enough to justify a download.
func Evaluate(known models.DocumentRecord, live fetcher.HeaderProbe) Decision {
	if !strPtrEqual(known.LastModified, live.LastModified) {
		return Escalate
	}
	if !strPtrEqual(known.ETag, live.ETag) {
		return Escalate
	}
	if !int64PtrEqual(known.FileSize, live.ContentLength) {
		return Escalate
	}
	return NoChange
}

// VerifyContent confirms or rejects a suspected change using the content
// hash. When the computed hash equals the stored one the candidate record is
// returned untouched and nothing is written: servers sometimes rotate etags
// without content changes, and header noise must not count as an update.
// A record with no stored hash is always treated as changed once bytes are
// in hand.
func VerifyContent(candidate models.DocumentRecord, body []byte, store *storage.Store) (bool, models.DocumentRecord, error) {
	hash := common.ContentHash(body)

	if candidate.ContentHash != nil && *candidate.ContentHash == hash {
		return false, candidate, nil
	}

	localPath, err := store.SaveDocument(candidate.Name, body)
	if err != nil {
		return false, candidate, err
	}

	candidate.ContentHash = &hash
	candidate.LocalPath = &localPath
	return true, candidate, nil
}

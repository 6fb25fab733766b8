// Package monitor implements the change-detection run: discovery, header
// probes, escalated downloads, registry update, and the run artifacts.
package monitor

import (
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/caching"
	"github.com/dtnitsch/acs-monitor/pkg/db"
	"github.com/dtnitsch/acs-monitor/pkg/detector"
	"github.com/dtnitsch/acs-monitor/pkg/discovery"
	"github.com/dtnitsch/acs-monitor/pkg/fetcher"
	"github.com/dtnitsch/acs-monitor/pkg/manifest"
	"github.com/dtnitsch/acs-monitor/pkg/registry"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

// checkOutcome is what one document check contributes to the run.
type checkOutcome struct {
	record models.DocumentRecord
	event  *models.ChangeEvent
	failed bool
}

// MonitorAction runs one full detection pass over the discovered documents.
func MonitorAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	store, err := storage.NewStore(cfg.Dirs.Documents, cfg.Dirs.Text, cfg.Dirs.Metadata)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	f := fetcher.NewFetcher(
		cfg.HTTP.UserAgent,
		time.Duration(cfg.HTTP.ProbeTimeoutSec)*time.Second,
		time.Duration(cfg.HTTP.FetchTimeoutSec)*time.Second,
	)

	cache, err := caching.NewPageCache(cfg.Dirs.PageCache, time.Duration(cfg.HTTP.PageCacheTTLMin)*time.Minute)
	if err != nil {
		logger.Error("failed to initialize page cache", "error", err)
		os.Exit(2)
	}

	reg := registry.New(cfg.Dirs.Metadata, logger)
	known := registry.ByURL(reg.Load())

	disc := discovery.New(f, cache, cfg.Source, logger)
	candidates, sourceInfo, err := disc.Discover()
	if err != nil {
		logger.Error("discovery failed", "error", err)
		os.Exit(1)
	}

	runID, err := database.StartRun("monitor")
	if err != nil {
		logger.Error("failed to record run start", "error", err)
	}

	delay := time.Duration(cfg.HTTP.DelayMS) * time.Millisecond
	var changes []models.ChangeEvent
	var allDocs []models.DocumentRecord
	errorCount := 0

	for _, cand := range candidates {
		// Fixed pause between document checks. This is a politeness rate
		// limit toward the remote host, not an optimization target.
		time.Sleep(delay)

		docID, err := database.UpsertDocument(cand.URL, cand.Name)
		if err != nil {
			logger.Error("failed to upsert document", "url", cand.URL, "error", err)
		}

		var outcome checkOutcome
		if knownDoc, ok := known[cand.URL]; ok {
			outcome = checkKnown(logger, f, store, database, docID, knownDoc)
		} else {
			logger.Info("new document discovered", "name", cand.Name, "url", cand.URL)
			outcome = checkNew(logger, f, store, database, docID, cand)
		}

		allDocs = append(allDocs, outcome.record)
		if outcome.event != nil {
			changes = append(changes, *outcome.event)
		}
		if outcome.failed {
			errorCount++
		}
	}

	if err := reg.Save(allDocs); err != nil {
		logger.Error("failed to save known documents", "error", err)
	}
	if _, err := manifest.WriteChangeLog(store, changes); err != nil {
		logger.Error("failed to write change log", "error", err)
	}
	if _, err := manifest.WriteRunSummary(store, len(allDocs), changes, sourceInfo); err != nil {
		logger.Error("failed to write run summary", "error", err)
	}
	if runID != 0 {
		if err := database.FinishRun(runID, len(allDocs), len(changes), errorCount); err != nil {
			logger.Error("failed to record run finish", "error", err)
		}
	}

	logger.Info("monitoring complete",
		"total_documents", len(allDocs),
		"changes_detected", len(changes),
		"errors", errorCount,
	)
	return nil
}

// checkKnown re-checks a tracked document. A failed probe or fetch leaves the
// record exactly as it was: a transport failure must never masquerade as a
// confirmed "no change", so it is recorded distinctly in the check history
// even though the registry carries the document forward unchanged.
func checkKnown(logger *slog.Logger, f *fetcher.Fetcher, store *storage.Store, database *db.DB, docID int64, doc models.DocumentRecord) checkOutcome {
	logger.Info("checking document", "name", doc.Name, "url", doc.URL)

	probe, err := f.ProbeHeaders(doc.URL)
	if err != nil {
		logger.Warn("header probe failed, treating as unchanged this run", "name", doc.Name, "error", err)
		recordCheck(logger, database, docID, db.CheckProbeFailed, 0, nil)
		return checkOutcome{record: doc, failed: true}
	}

	now := common.Timestamp()
	updated := doc
	updated.LastModified = probe.LastModified
	updated.ETag = probe.ETag
	updated.FileSize = probe.ContentLength
	updated.LastChecked = &now

	if detector.Evaluate(doc, *probe) == detector.NoChange {
		recordCheck(logger, database, docID, db.CheckUnchanged, probe.StatusCode, probe)
		return checkOutcome{record: updated}
	}

	logger.Info("header signals differ, downloading to verify", "name", doc.Name)
	body, err := f.FetchBody(doc.URL)
	if err != nil {
		logger.Error("download failed", "name", doc.Name, "error", err)
		recordCheck(logger, database, docID, db.CheckFetchFailed, 0, probe)
		return checkOutcome{record: doc, failed: true}
	}

	changed, final, err := detector.VerifyContent(updated, body, store)
	if err != nil {
		logger.Error("failed to persist document", "name", doc.Name, "error", err)
		recordCheck(logger, database, docID, db.CheckFetchFailed, probe.StatusCode, probe)
		return checkOutcome{record: doc, failed: true}
	}

	if !changed {
		logger.Info("content hash unchanged despite header drift", "name", doc.Name)
		recordCheck(logger, database, docID, db.CheckUnchanged, probe.StatusCode, probe)
		return checkOutcome{record: final}
	}

	logger.Info("document updated", "name", doc.Name)
	recordCheck(logger, database, docID, db.CheckChanged, probe.StatusCode, probe)
	return checkOutcome{
		record: final,
		event: &models.ChangeEvent{
			Type:      models.ChangeUpdated,
			Document:  final,
			Timestamp: common.Timestamp(),
		},
	}
}

// checkNew fetches a just-discovered document. The first successful fetch is
// always a change: there is no prior hash to compare against.
func checkNew(logger *slog.Logger, f *fetcher.Fetcher, store *storage.Store, database *db.DB, docID int64, cand models.Candidate) checkOutcome {
	now := common.Timestamp()
	doc := models.DocumentRecord{
		Name:        cand.Name,
		URL:         cand.URL,
		LastChecked: &now,
	}

	body, err := f.FetchBody(cand.URL)
	if err != nil {
		logger.Error("failed to download new document", "name", cand.Name, "error", err)
		recordCheck(logger, database, docID, db.CheckFetchFailed, 0, nil)
		return checkOutcome{record: doc, failed: true}
	}

	_, final, err := detector.VerifyContent(doc, body, store)
	if err != nil {
		logger.Error("failed to persist new document", "name", cand.Name, "error", err)
		recordCheck(logger, database, docID, db.CheckFetchFailed, 0, nil)
		return checkOutcome{record: doc, failed: true}
	}

	size := int64(len(body))
	final.FileSize = &size

	recordCheck(logger, database, docID, db.CheckNew, 0, nil)
	return checkOutcome{
		record: final,
		event: &models.ChangeEvent{
			Type:      models.ChangeNew,
			Document:  final,
			Timestamp: common.Timestamp(),
		},
	}
}

// recordCheck writes one row of check history; history failures are logged
// and never disturb the run.
func recordCheck(logger *slog.Logger, database *db.DB, docID int64, status string, statusCode int, probe *fetcher.HeaderProbe) {
	if docID == 0 {
		return
	}

	var etag, lastModified *string
	var size *int64
	if probe != nil {
		etag = probe.ETag
		lastModified = probe.LastModified
		size = probe.ContentLength
	}

	if err := database.RecordCheck(docID, status, statusCode, etag, lastModified, size); err != nil {
		logger.Error("failed to record check history", "error", err)
	}
}

// Package manifest writes the run-level JSON artifacts: the change log, the
// monitor run summary, and the batch processing summary.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

const (
	changesFile           = "changes.json"
	runSummaryFile        = "last_run_summary.json"
	processingSummaryFile = "processing_summary.json"
)

// WriteChangeLog overwrites changes.json with this run's change events. It
// always writes, even an empty list, so a stale log from a previous run never
// masquerades as current changes.
func WriteChangeLog(s *storage.Store, changes []models.ChangeEvent) (string, error) {
	if changes == nil {
		changes = []models.ChangeEvent{}
	}
	data, err := json.MarshalIndent(changes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling change log: %w", err)
	}
	return s.SaveMetadata(changesFile, data)
}

// WriteRunSummary writes the monitor run summary.
func WriteRunSummary(s *storage.Store, totalDocuments int, changes []models.ChangeEvent, source *models.SourceInfo) (string, error) {
	if changes == nil {
		changes = []models.ChangeEvent{}
	}
	summary := models.RunSummary{
		Timestamp:       common.Timestamp(),
		TotalDocuments:  totalDocuments,
		ChangesDetected: len(changes),
		Changes:         changes,
		Source:          source,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling run summary: %w", err)
	}
	return s.SaveMetadata(runSummaryFile, data)
}

// WriteProcessingSummary writes the batch extraction summary.
func WriteProcessingSummary(s *storage.Store, summary models.ProcessingSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling processing summary: %w", err)
	}
	return s.SaveMetadata(processingSummaryFile, data)
}

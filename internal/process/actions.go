// Package process implements the batch extraction run over downloaded PDFs.
package process

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/acs"
	"github.com/dtnitsch/acs-monitor/pkg/analytics"
	"github.com/dtnitsch/acs-monitor/pkg/db"
	"github.com/dtnitsch/acs-monitor/pkg/langid"
	"github.com/dtnitsch/acs-monitor/pkg/manifest"
	"github.com/dtnitsch/acs-monitor/pkg/mapreduce"
	"github.com/dtnitsch/acs-monitor/pkg/pdftext"
	"github.com/dtnitsch/acs-monitor/pkg/processor"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

const summaryKeywordCount = 25

// ProcessAction extracts text, sections, and standards from every downloaded
// PDF. Backend selection happens before any document is touched; a run with
// no usable backend is a configuration error, not a batch of failures.
func ProcessAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	backend, err := pdftext.Select(pdftext.DefaultChain(), c.String("backend"))
	if err != nil {
		if errors.Is(err, pdftext.ErrNoBackend) {
			logger.Error("no PDF extraction backend available", "error", err)
		} else {
			logger.Error("backend selection failed", "error", err)
		}
		os.Exit(2)
	}
	logger.Info("using processing backend", "backend", backend.Name())

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

	pdfFiles, err := store.ListPDFs()
	if err != nil {
		logger.Error("failed to list documents", "error", err)
		os.Exit(1)
	}
	if len(pdfFiles) == 0 {
		logger.Info("no PDF files found to process")
		return nil
	}

	strategy := acs.ParseStrategy(c.String("sections"))
	proc := processor.New(backend, store, langid.New(), strategy, logger)

	runID, err := database.StartRun("process")
	if err != nil {
		logger.Error("failed to record run start", "error", err)
	}

	a := &analytics.Analytics{}
	var intermediate []map[string]int
	var processedNames []string
	errorCount := 0

	logger.Info("processing documents", "count", len(pdfFiles))
	for _, pdfFile := range pdfFiles {
		doc := proc.Process(pdfFile)

		if err := proc.SaveOutputs(doc); err != nil {
			logger.Error("failed to save outputs", "name", doc.Name, "error", err)
			errorCount++
			continue
		}

		processedNames = append(processedNames, doc.Name)
		if doc.TextContent != "" {
			intermediate = append(intermediate, mapreduce.Map(doc.TextContent, a))
		}
	}

	summary := models.ProcessingSummary{
		ProcessedAt:           common.Timestamp(),
		TotalDocuments:        len(pdfFiles),
		SuccessfullyProcessed: len(processedNames),
		ProcessingMethod:      backend.Name(),
		Documents:             processedNames,
		TopKeywords:           mapreduce.TopKeywords(mapreduce.Reduce(intermediate), summaryKeywordCount),
	}
	if _, err := manifest.WriteProcessingSummary(store, summary); err != nil {
		logger.Error("failed to write processing summary", "error", err)
	}

	if runID != 0 {
		if err := database.FinishRun(runID, len(pdfFiles), len(processedNames), errorCount); err != nil {
			logger.Error("failed to record run finish", "error", err)
		}
	}

	logger.Info("processing complete",
		"processed", len(processedNames),
		"total", len(pdfFiles),
		"backend", backend.Name(),
	)
	return nil
}

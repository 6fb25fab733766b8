// Package processor orchestrates extraction of a downloaded PDF into text,
// sections, and standards, and writes the per-document artifacts.
package processor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/acs"
	"github.com/dtnitsch/acs-monitor/pkg/analytics"
	"github.com/dtnitsch/acs-monitor/pkg/langid"
	"github.com/dtnitsch/acs-monitor/pkg/pdftext"
	"github.com/dtnitsch/acs-monitor/pkg/storage"
)

const topKeywordCount = 10

// Processor runs the extraction pipeline for single documents. One Processor
// serves a whole batch; the backend is fixed at construction.
type Processor struct {
	backend   pdftext.Backend
	store     *storage.Store
	analytics *analytics.Analytics
	langs     *langid.Detector
	strategy  *acs.Strategy
	logger    *slog.Logger
}

// New creates a Processor. langs may be nil to skip language tagging, and
// strategy may be nil to keep every parsed section.
func New(backend pdftext.Backend, store *storage.Store, langs *langid.Detector, strategy *acs.Strategy, logger *slog.Logger) *Processor {
	return &Processor{
		backend:   backend,
		store:     store,
		analytics: &analytics.Analytics{},
		langs:     langs,
		strategy:  strategy,
		logger:    logger,
	}
}

// Process extracts one document. It never fails a batch: extraction errors
// and empty text both produce a document with empty content fields, keyed by
// the source path so later stages can still account for the file.
func (p *Processor) Process(path string) *models.ExtractedDocument {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p.logger.Info("processing document", "name", name, "backend", p.backend.Name())

	text, meta, err := p.backend.Extract(path)
	if err != nil {
		p.logger.Error("text extraction failed", "name", name, "error", err)
		text = ""
	}

	if text == "" {
		p.logger.Warn("no text extracted", "name", name)
		return &models.ExtractedDocument{
			Name:             name,
			SourcePath:       path,
			TextContent:      "",
			ProcessingMethod: p.backend.Name(),
			ProcessedAt:      common.Timestamp(),
		}
	}

	sections := acs.FilterSections(acs.ParseSections(text), p.strategy)
	standards := acs.ExtractStandards(text)

	structured := &models.StructuredContent{
		Standards:      standards,
		Metadata:       meta,
		WordCount:      len(strings.Fields(text)),
		CharacterCount: len(text),
		TopKeywords:    p.analytics.TopNWords(text, topKeywordCount),
	}
	if p.langs != nil {
		structured.Language = p.langs.Detect(text)
	}

	return &models.ExtractedDocument{
		Name:              name,
		SourcePath:        path,
		TextContent:       text,
		StructuredContent: structured,
		Sections:          sections,
		Metadata:          &meta,
		ProcessingMethod:  p.backend.Name(),
		ProcessedAt:       common.Timestamp(),
	}
}

// SaveOutputs writes the three artifacts for a processed document: plain
// text, annotated markdown, and the JSON metadata record.
func (p *Processor) SaveOutputs(doc *models.ExtractedDocument) error {
	if _, err := p.store.SaveText(doc.Name+".txt", []byte(doc.TextContent)); err != nil {
		return fmt.Errorf("failed to save text artifact: %w", err)
	}

	if _, err := p.store.SaveText(doc.Name+".md", renderMarkdown(doc)); err != nil {
		return fmt.Errorf("failed to save markdown artifact: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document metadata: %w", err)
	}
	if _, err := p.store.SaveMetadata(doc.Name+"_processed.json", data); err != nil {
		return fmt.Errorf("failed to save document metadata: %w", err)
	}
	return nil
}

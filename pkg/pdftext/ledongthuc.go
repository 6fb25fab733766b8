package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dtnitsch/acs-monitor/models"
)

// readInfo pulls page count and the Info dictionary out of an open reader.
// Every field is best-effort; missing entries stay empty.
func readInfo(r *pdf.Reader) models.DocMetadata {
	meta := models.DocMetadata{PageCount: r.NumPage()}

	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}
	meta.Title = info.Key("Title").Text()
	meta.Author = info.Key("Author").Text()
	meta.CreationDate = info.Key("CreationDate").Text()
	meta.ModificationDate = info.Key("ModDate").Text()
	return meta
}

// RowBackend extracts text row by row, preserving the reading order the PDF
// lays out on each page. Preferred over plain extraction because ACS tables
// keep their row grouping.
type RowBackend struct{}

func (b *RowBackend) Name() string { return "pdftext-rows" }

func (b *RowBackend) Available() bool { return true }

func (b *RowBackend) Extract(path string) (string, models.DocMetadata, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", models.DocMetadata{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	meta := readInfo(r)

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// A single unreadable page should not lose the rest of the
			// document.
			continue
		}
		for _, row := range rows {
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), meta, nil
}

// PlainBackend concatenates each page's plain text. The lowest-fidelity
// fallback: no layout awareness, but it always works on text-bearing PDFs.
type PlainBackend struct{}

func (b *PlainBackend) Name() string { return "pdftext-plain" }

func (b *PlainBackend) Available() bool { return true }

func (b *PlainBackend) Extract(path string) (string, models.DocMetadata, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", models.DocMetadata{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	meta := readInfo(r)

	var pages []string
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), meta, nil
}

// Package pdftext turns PDF files into plain text through a ranked chain of
// extraction backends. The engine only depends on the backend contract; which
// backend actually runs is decided once at startup.
package pdftext

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/acs-monitor/models"
)

// ErrNoBackend is returned when no extraction backend is available. This is
// a configuration error and fatal at startup, never a per-document failure.
var ErrNoBackend = errors.New("no PDF text extraction backend available")

// Backend is the contract every text extractor fulfills: concatenated text
// plus best-effort metadata. Any metadata field may be empty.
type Backend interface {
	Name() string
	Available() bool
	Extract(path string) (string, models.DocMetadata, error)
}

// DefaultChain returns the backends in priority order, the most
// structure-aware first: the external poppler tool when installed, then
// row-ordered extraction, then plain page-by-page concatenation.
func DefaultChain() []Backend {
	return []Backend{
		&PopplerBackend{},
		&RowBackend{},
		&PlainBackend{},
	}
}

// Select picks the backend to use for the whole run. With a name it demands
// that specific backend; otherwise the first available one in chain order
// wins. An empty result is ErrNoBackend.
func Select(chain []Backend, name string) (Backend, error) {
	if name != "" {
		for _, b := range chain {
			if b.Name() == name {
				if !b.Available() {
					return nil, fmt.Errorf("backend %q is not available: %w", name, ErrNoBackend)
				}
				return b, nil
			}
		}
		return nil, fmt.Errorf("unknown backend %q: %w", name, ErrNoBackend)
	}

	for _, b := range chain {
		if b.Available() {
			return b, nil
		}
	}
	return nil, ErrNoBackend
}

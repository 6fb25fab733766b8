// Package langid tags extracted document text with a language code. ACS
// publications are English, so anything else in the metadata is a hint that
// extraction went sideways.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// sampleSize bounds how much text the detector sees; full documents are far
// larger than the detector needs.
const sampleSize = 4096

// Detector wraps a lingua language detector restricted to the languages that
// plausibly show up in aviation publications.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds the detector once; construction is expensive and the result is
// reused for the whole batch.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns an ISO 639-1 code for the text, or "" when the text is too
// thin to call.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) > sampleSize {
		text = text[:sampleSize]
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

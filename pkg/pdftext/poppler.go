package pdftext

import (
	"fmt"
	"os/exec"

	"github.com/ledongthuc/pdf"

	"github.com/dtnitsch/acs-monitor/models"
)

const popplerBinary = "pdftotext"

// PopplerBackend shells out to poppler's pdftotext with layout preservation.
// It ranks first in the chain because it handles column layouts the pure-Go
// readers flatten, but it is only available when the binary is installed.
type PopplerBackend struct{}

func (b *PopplerBackend) Name() string { return "poppler" }

func (b *PopplerBackend) Available() bool {
	_, err := exec.LookPath(popplerBinary)
	return err == nil
}

func (b *PopplerBackend) Extract(path string) (string, models.DocMetadata, error) {
	out, err := exec.Command(popplerBinary, "-layout", path, "-").Output()
	if err != nil {
		return "", models.DocMetadata{}, fmt.Errorf("pdftotext failed: %w", err)
	}

	// pdftotext gives no document metadata on stdout; read the Info
	// dictionary with the in-process reader instead.
	var meta models.DocMetadata
	if f, r, err := pdf.Open(path); err == nil {
		meta = readInfo(r)
		f.Close()
	}

	return string(out), meta, nil
}

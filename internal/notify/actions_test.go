package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
)

func TestRender(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	changes := []models.ChangeEvent{
		{
			Type: models.ChangeUpdated,
			Document: models.DocumentRecord{
				Name:         "Private Pilot ACS",
				URL:          "https://example.com/private_acs.pdf",
				LastModified: common.String("Fri, 15 Mar 2024 10:00:00 GMT"),
				FileSize:     common.Int64(123456),
				ContentHash:  common.String("0123456789abcdef0123456789abcdef"),
			},
			Timestamp: "2024-03-15T14:30:00Z",
		},
		{
			Type: models.ChangeNew,
			Document: models.DocumentRecord{
				Name: "Commercial Pilot ACS",
				URL:  "https://example.com/commercial_acs.pdf",
			},
			Timestamp: "2024-03-15T14:30:00Z",
		},
	}

	title, body := Render(changes, now)

	if title != "FAA ACS Documents Updated - 2024-03-15" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(body, "**Total Changes:** 2") {
		t.Error("body missing change count")
	}
	if !strings.Contains(body, "### Updated: Private Pilot ACS") {
		t.Error("body missing updated document heading")
	}
	if !strings.Contains(body, "### New: Commercial Pilot ACS") {
		t.Error("body missing new document heading")
	}
	// Hash is truncated to 16 hex chars.
	if !strings.Contains(body, "`0123456789abcdef...`") {
		t.Error("body missing truncated content hash")
	}
	// Absent fields render as Unknown.
	if !strings.Contains(body, "- **Last Modified:** Unknown") {
		t.Error("body missing Unknown for absent last-modified")
	}
	if !strings.Contains(body, "## Next Steps") {
		t.Error("body missing next-steps section")
	}
}

func TestHashPreview(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, "Unknown"},
		{"empty", common.String(""), "Unknown"},
		{"short", common.String("abc"), "abc"},
		{"long", common.String("0123456789abcdef0123"), "0123456789abcdef..."},
	}

	for _, tt := range tests {
		if got := hashPreview(tt.in); got != tt.want {
			t.Errorf("hashPreview(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// Package notify renders the change-notification markdown consumed by the
// issue-creation step. It only produces the title and body; posting them
// anywhere is someone else's job.
package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
)

// NotifyAction reads the current change log and renders the notification.
func NotifyAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	changesPath := filepath.Join(cfg.Dirs.Metadata, "changes.json")
	data, err := os.ReadFile(changesPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No changes file found")
			return nil
		}
		logger.Error("failed to read change log", "path", changesPath, "error", err)
		os.Exit(1)
	}

	var changes []models.ChangeEvent
	if err := json.Unmarshal(data, &changes); err != nil {
		logger.Error("failed to parse change log", "path", changesPath, "error", err)
		os.Exit(1)
	}

	if len(changes) == 0 {
		fmt.Println("No changes to report")
		return nil
	}

	title, body := Render(changes, time.Now())

	output := c.String("output")
	if output == "" {
		fmt.Printf("%s\n\n%s\n", title, body)
		return nil
	}

	content := fmt.Sprintf("# %s\n\n%s\n", title, body)
	if err := os.WriteFile(output, []byte(content), 0644); err != nil {
		logger.Error("failed to write notification", "path", output, "error", err)
		os.Exit(1)
	}
	logger.Info("notification rendered", "path", output, "changes", len(changes))
	return nil
}

// Render builds the notification title and markdown body from the change
// events of one run.
func Render(changes []models.ChangeEvent, now time.Time) (string, string) {
	title := fmt.Sprintf("FAA ACS Documents Updated - %s", now.Format("2006-01-02"))

	var sb strings.Builder
	sb.WriteString("## FAA ACS Document Changes Detected\n\n")
	fmt.Fprintf(&sb, "**Detection Time:** %s  \n", now.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&sb, "**Total Changes:** %d\n\n", len(changes))

	for _, change := range changes {
		doc := change.Document
		fmt.Fprintf(&sb, "### %s: %s\n", titleCase(change.Type), doc.Name)
		fmt.Fprintf(&sb, "- **URL:** %s\n", doc.URL)
		fmt.Fprintf(&sb, "- **Last Modified:** %s\n", orUnknown(doc.LastModified))
		fmt.Fprintf(&sb, "- **File Size:** %s bytes\n", sizeOrUnknown(doc.FileSize))
		fmt.Fprintf(&sb, "- **Content Hash:** `%s`\n\n", hashPreview(doc.ContentHash))
	}

	sb.WriteString("## Next Steps\n")
	sb.WriteString("- [ ] Review document changes\n")
	sb.WriteString("- [ ] Update training materials if needed\n")
	sb.WriteString("- [ ] Check compliance requirements\n")
	sb.WriteString("- [ ] Notify relevant stakeholders\n\n")
	sb.WriteString("---\n")
	sb.WriteString("*This notification was generated automatically by acs-monitor.*")

	return title, sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "Unknown"
	}
	return *s
}

func sizeOrUnknown(n *int64) string {
	if n == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%d", *n)
}

// hashPreview truncates the hash to the short form used in notifications.
func hashPreview(hash *string) string {
	if hash == nil || *hash == "" {
		return "Unknown"
	}
	if len(*hash) > 16 {
		return (*hash)[:16] + "..."
	}
	return *hash
}

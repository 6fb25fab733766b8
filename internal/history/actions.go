// Package history exposes the sqlite check and run history on the CLI.
package history

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/acs-monitor/internal/common"
	"github.com/dtnitsch/acs-monitor/models"
	"github.com/dtnitsch/acs-monitor/pkg/db"
)

// HistoryAction prints the recent check history for one document URL.
func HistoryAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	url := c.String("url")
	if url == "" {
		return fmt.Errorf("document URL required\nUsage: acs-monitor history --url <url>")
	}

	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	checks, err := database.CheckHistory(url, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to load check history: %w", err)
	}

	if len(checks) == 0 {
		fmt.Printf("No check history for %s\n", url)
		return nil
	}

	fmt.Printf("Check history for %s\n", url)
	fmt.Println(strings.Repeat("=", 100))
	fmt.Printf("%-6s %-20s %-13s %-6s %-12s %-30s\n",
		"ID", "Checked", "Status", "Code", "Size", "Last-Modified")
	fmt.Println(strings.Repeat("-", 100))

	for _, check := range checks {
		size := "-"
		if check.SizeBytes > 0 {
			size = fmt.Sprintf("%d", check.SizeBytes)
		}
		lastModified := check.LastModified
		if lastModified == "" {
			lastModified = "-"
		}
		fmt.Printf("%-6d %-20s %-13s %-6d %-12s %-30s\n",
			check.CheckID,
			check.CheckedAt.Format("2006-01-02 15:04:05"),
			check.Status,
			check.StatusCode,
			size,
			lastModified,
		)
	}

	fmt.Printf("\nTotal: %d checks\n", len(checks))
	return nil
}

// RunsAction prints recent monitor and process runs, newest first.
func RunsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-10s %-20s %-20s %-10s %-8s %-8s\n",
		"ID", "Kind", "Started", "Finished", "Documents", "Changes", "Errors")
	fmt.Println(strings.Repeat("-", 90))

	for _, run := range runs {
		finished := "(running)"
		if run.FinishedAt.Valid {
			finished = run.FinishedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%-6d %-10s %-20s %-20s %-10d %-8d %-8d\n",
			run.RunID,
			run.Kind,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			finished,
			run.DocumentCount,
			run.ChangeCount,
			run.ErrorCount,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

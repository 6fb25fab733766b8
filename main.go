package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/acs-monitor/internal/history"
	"github.com/dtnitsch/acs-monitor/internal/monitor"
	"github.com/dtnitsch/acs-monitor/internal/notify"
	"github.com/dtnitsch/acs-monitor/internal/process"
	"github.com/dtnitsch/acs-monitor/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "acs-monitor",
		Usage: "Monitor FAA ACS documents for changes and extract their contents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "monitor",
				Usage:  "Discover documents, detect changes, update the registry",
				Action: monitor.MonitorAction,
			},
			{
				Name:   "process",
				Usage:  "Extract text, sections, and standards from downloaded PDFs",
				Action: process.ProcessAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "backend",
						Usage: "extraction backend (poppler, pdftext-rows, pdftext-plain)",
					},
					&cli.StringFlag{
						Name:  "sections",
						Usage: "comma-separated section labels to keep (e.g. \"TASK,AREA OF OPERATION\")",
					},
				},
			},
			{
				Name:   "notify",
				Usage:  "Render change-notification markdown from the last run's change log",
				Action: notify.NotifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the notification to a file instead of stdout",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show the check history for one document URL",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "document URL to inspect",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of checks to show",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "List recent monitor and process runs",
				Action: history.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to show",
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

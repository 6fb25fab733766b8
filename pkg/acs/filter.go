package acs

import (
	"strings"

	"github.com/dtnitsch/acs-monitor/models"
)

// Strategy selects which section labels survive into the written artifacts.
// An empty strategy is a no-op.
type Strategy struct {
	LabelPrefixes []string
}

// ParseStrategy parses a comma-separated list of label prefixes, e.g.
// "TASK,AREA OF OPERATION". Matching is case-insensitive on the section
// label's prefix.
func ParseStrategy(s string) *Strategy {
	if strings.TrimSpace(s) == "" {
		return &Strategy{}
	}

	strategy := &Strategy{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			strategy.LabelPrefixes = append(strategy.LabelPrefixes, strings.ToUpper(part))
		}
	}
	return strategy
}

// FilterSections returns the sections whose label starts with one of the
// strategy's prefixes. A nil or empty strategy passes everything through.
func FilterSections(sections []models.Section, strategy *Strategy) []models.Section {
	if strategy == nil || len(strategy.LabelPrefixes) == 0 {
		return sections
	}

	var filtered []models.Section
	for _, section := range sections {
		label := strings.ToUpper(section.Type)
		for _, prefix := range strategy.LabelPrefixes {
			if strings.HasPrefix(label, prefix) {
				filtered = append(filtered, section)
				break
			}
		}
	}
	return filtered
}

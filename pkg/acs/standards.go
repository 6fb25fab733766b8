package acs

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/acs-monitor/models"
)

var (
	areaPattern = regexp.MustCompile(`(?i)AREA OF OPERATION\s+([IVXLC]+)\s*[:\-]\s*([^\n]+)`)
	taskPattern = regexp.MustCompile(`(?i)TASK\s+([A-Z]+)\.\s*([^\n]+)`)

	// Citation shapes that appear in ACS reference lists: regulatory part
	// numbers, advisory circulars, AIM paragraphs, and the POH/AFM literal.
	referencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)14 CFR part (\d+)`),
		regexp.MustCompile(`(?i)AC (\d+-\d+[A-Z]*)`),
		regexp.MustCompile(`(?i)AIM (\d+-\d+-\d+)`),
		regexp.MustCompile(`(?i)POH/AFM`),
	}
)

// ExtractStandards pulls areas of operation, tasks, and references out of the
// text. References are collected with duplicates intact: the stored table is
// a raw scan result, and de-duplication happens only when rendering.
// The objectives, knowledge, risk-management, and skills lists stay empty
// until dedicated rules exist for them; the schema keeps their slots.
func ExtractStandards(text string) models.StandardsTable {
	table := models.StandardsTable{}

	for _, match := range areaPattern.FindAllStringSubmatch(text, -1) {
		table.AreasOfOperation = append(table.AreasOfOperation, models.AreaOfOperation{
			Number: match[1],
			Title:  strings.TrimSpace(match[2]),
		})
	}

	for _, match := range taskPattern.FindAllStringSubmatch(text, -1) {
		table.Tasks = append(table.Tasks, models.Task{
			Code:  match[1],
			Title: strings.TrimSpace(match[2]),
		})
	}

	for _, pattern := range referencePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			table.References = append(table.References, match)
		}
	}

	return table
}

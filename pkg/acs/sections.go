// Package acs parses Airman Certification Standards text into labeled
// sections and a typed standards table using pattern rules.
package acs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dtnitsch/acs-monitor/models"
)

// sectionRules are the structural label patterns recognized in ACS text.
// Each rule scans the whole document independently; matches from all rules
// are merged and sorted by position. The rules deliberately overlap —
// document formatting drifts between revisions, and independent rules
// tolerate that better than one combined pattern would.
var sectionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(AREA OF OPERATION\s+[IVXLC]+)\s*[:\-]\s*([^\n]+)`),
	regexp.MustCompile(`(?im)(TASK\s+[A-Z]+)\.\s*([^\n]+)`),
	regexp.MustCompile(`(?im)(REFERENCES?:?\s*)([^\n]+)`),
	regexp.MustCompile(`(?im)(OBJECTIVE:?\s*)([^\n]+)`),
	regexp.MustCompile(`(?im)(KNOWLEDGE:?\s*)([^\n]+)`),
	regexp.MustCompile(`(?im)(RISK MANAGEMENT:?\s*)([^\n]+)`),
	regexp.MustCompile(`(?im)(SKILLS:?\s*)([^\n]+)`),
}

// ParseSections runs every section rule over the text and returns the merged
// matches sorted by byte offset. Overlapping or duplicate matches are kept;
// downstream consumers filter as needed.
func ParseSections(text string) []models.Section {
	var sections []models.Section

	for _, rule := range sectionRules {
		for _, match := range rule.FindAllStringSubmatchIndex(text, -1) {
			// match indexes: [full start, full end, g1 start, g1 end, g2 start, g2 end]
			full := text[match[0]:match[1]]
			label := strings.TrimSpace(text[match[2]:match[3]])
			content := strings.TrimSpace(text[match[4]:match[5]])

			sections = append(sections, models.Section{
				Type:     label,
				Content:  content,
				Position: match[0],
				Length:   len(full),
			})
		}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})
	return sections
}

package processor

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/acs-monitor/models"
)

// renderMarkdown builds the human-readable summary artifact: front matter,
// the parsed standards tables, then the full text. References are
// de-duplicated here, in first-seen order — the stored table keeps raw scan
// results with duplicates intact.
func renderMarkdown(doc *models.ExtractedDocument) []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Name)
	fmt.Fprintf(&sb, "**Processed:** %s  \n", doc.ProcessedAt)
	fmt.Fprintf(&sb, "**Method:** %s  \n", doc.ProcessingMethod)
	fmt.Fprintf(&sb, "**Source:** %s  \n\n", doc.SourcePath)

	if doc.StructuredContent != nil {
		standards := doc.StructuredContent.Standards

		if len(standards.AreasOfOperation) > 0 {
			sb.WriteString("## Areas of Operation\n\n")
			for _, aoo := range standards.AreasOfOperation {
				fmt.Fprintf(&sb, "- **%s**: %s\n", aoo.Number, aoo.Title)
			}
			sb.WriteString("\n")
		}

		if len(standards.Tasks) > 0 {
			sb.WriteString("## Tasks\n\n")
			for _, task := range standards.Tasks {
				fmt.Fprintf(&sb, "- **%s**: %s\n", task.Code, task.Title)
			}
			sb.WriteString("\n")
		}

		if len(standards.References) > 0 {
			sb.WriteString("## References\n\n")
			seen := make(map[string]struct{}, len(standards.References))
			for _, ref := range standards.References {
				if _, dup := seen[ref]; dup {
					continue
				}
				seen[ref] = struct{}{}
				fmt.Fprintf(&sb, "- %s\n", ref)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Full Text\n\n")
	sb.WriteString(doc.TextContent)

	return []byte(sb.String())
}

package acs

import (
	"sort"
	"strings"
	"testing"
)

const sampleACSText = `Private Pilot for Airplane Category Airman Certification Standards

AREA OF OPERATION I: Preflight Preparation

TASK A. Pilot Qualifications
REFERENCES: 14 CFR part 61, 14 CFR part 68, 14 CFR part 91; AC 68-1; AIM 8-1-1
OBJECTIVE: To determine the applicant exhibits adequate preparation.
KNOWLEDGE: The applicant demonstrates understanding of certification requirements.
RISK MANAGEMENT: The applicant is able to identify and assess risk.
SKILLS: The applicant exhibits the skill to apply for the appropriate certificate.

TASK B. Airworthiness Requirements
REFERENCES: 14 CFR part 39, 14 CFR part 91; POH/AFM
OBJECTIVE: To determine the applicant can locate required inspection records.

AREA OF OPERATION II: Preflight Procedures

TASK A. Preflight Assessment
REFERENCES: AC 00-6, AC 00-45; POH/AFM; AIM 7-1-1
`

func TestParseSections_SortedByPosition(t *testing.T) {
	sections := ParseSections(sampleACSText)

	if len(sections) == 0 {
		t.Fatal("ParseSections() returned no sections")
	}

	if !sort.SliceIsSorted(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	}) {
		t.Error("sections not sorted by position")
	}

	// Document begins with the first area of operation heading.
	if !strings.HasPrefix(sections[0].Type, "AREA OF OPERATION") {
		t.Errorf("first section = %q, want an AREA OF OPERATION heading", sections[0].Type)
	}
}

func TestParseSections_CountsPerRule(t *testing.T) {
	sections := ParseSections(sampleACSText)

	counts := map[string]int{}
	for _, s := range sections {
		switch {
		case strings.HasPrefix(s.Type, "AREA OF OPERATION"):
			counts["area"]++
		case strings.HasPrefix(s.Type, "TASK"):
			counts["task"]++
		case strings.HasPrefix(s.Type, "REFERENCES"):
			counts["references"]++
		case strings.HasPrefix(s.Type, "OBJECTIVE"):
			counts["objective"]++
		case strings.HasPrefix(s.Type, "KNOWLEDGE"):
			counts["knowledge"]++
		case strings.HasPrefix(s.Type, "RISK MANAGEMENT"):
			counts["risk"]++
		case strings.HasPrefix(s.Type, "SKILLS"):
			counts["skills"]++
		}
	}

	want := map[string]int{
		"area":       2,
		"task":       3,
		"references": 3,
		"objective":  2,
		"knowledge":  1,
		"risk":       1,
		"skills":     1,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%s sections = %d, want %d", kind, counts[kind], n)
		}
	}

	total := 0
	for _, n := range want {
		total += n
	}
	if len(sections) != total {
		t.Errorf("total sections = %d, want %d", len(sections), total)
	}
}

func TestParseSections_LabelAndContentTrimmed(t *testing.T) {
	sections := ParseSections("AREA OF OPERATION I: Preflight Preparation  \n")

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Type != "AREA OF OPERATION I" {
		t.Errorf("Type = %q, want %q", sections[0].Type, "AREA OF OPERATION I")
	}
	if sections[0].Content != "Preflight Preparation" {
		t.Errorf("Content = %q, want %q", sections[0].Content, "Preflight Preparation")
	}
}

func TestParseSections_EmptyText(t *testing.T) {
	if sections := ParseSections(""); len(sections) != 0 {
		t.Errorf("ParseSections(\"\") = %d sections, want 0", len(sections))
	}
}

func TestExtractStandards(t *testing.T) {
	table := ExtractStandards(sampleACSText)

	if len(table.AreasOfOperation) != 2 {
		t.Fatalf("got %d areas, want 2", len(table.AreasOfOperation))
	}
	if table.AreasOfOperation[0].Number != "I" {
		t.Errorf("area number = %q, want %q", table.AreasOfOperation[0].Number, "I")
	}
	if table.AreasOfOperation[0].Title != "Preflight Preparation" {
		t.Errorf("area title = %q, want %q", table.AreasOfOperation[0].Title, "Preflight Preparation")
	}
	if table.AreasOfOperation[1].Number != "II" {
		t.Errorf("second area number = %q, want %q", table.AreasOfOperation[1].Number, "II")
	}

	if len(table.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(table.Tasks))
	}
	if table.Tasks[0].Code != "A" || table.Tasks[0].Title != "Pilot Qualifications" {
		t.Errorf("first task = %q/%q, want A/Pilot Qualifications",
			table.Tasks[0].Code, table.Tasks[0].Title)
	}
	if table.Tasks[1].Code != "B" {
		t.Errorf("second task code = %q, want B", table.Tasks[1].Code)
	}
}

func TestExtractStandards_ReferencesKeepDuplicates(t *testing.T) {
	table := ExtractStandards(sampleACSText)

	counts := map[string]int{}
	for _, ref := range table.References {
		counts[ref]++
	}

	// "14 CFR part 91" appears in two reference lines and both are kept.
	if counts["14 CFR part 91"] != 2 {
		t.Errorf("14 CFR part 91 count = %d, want 2", counts["14 CFR part 91"])
	}
	if counts["POH/AFM"] != 2 {
		t.Errorf("POH/AFM count = %d, want 2", counts["POH/AFM"])
	}
	if counts["AC 68-1"] != 1 {
		t.Errorf("AC 68-1 count = %d, want 1", counts["AC 68-1"])
	}
	if counts["AIM 8-1-1"] != 1 {
		t.Errorf("AIM 8-1-1 count = %d, want 1", counts["AIM 8-1-1"])
	}
}

func TestExtractStandards_EmptyListsStayEmpty(t *testing.T) {
	table := ExtractStandards(sampleACSText)

	if len(table.Objectives) != 0 || len(table.KnowledgeElems) != 0 ||
		len(table.RiskManagement) != 0 || len(table.SkillElems) != 0 {
		t.Error("objective/knowledge/risk/skill lists should stay empty")
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"task", []string{"TASK"}},
		{"TASK,AREA OF OPERATION", []string{"TASK", "AREA OF OPERATION"}},
		{" task , references ", []string{"TASK", "REFERENCES"}},
		{"task,,references", []string{"TASK", "REFERENCES"}},
	}

	for _, tt := range tests {
		strategy := ParseStrategy(tt.input)
		if len(strategy.LabelPrefixes) != len(tt.want) {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, strategy.LabelPrefixes, tt.want)
			continue
		}
		for i, prefix := range tt.want {
			if strategy.LabelPrefixes[i] != prefix {
				t.Errorf("ParseStrategy(%q)[%d] = %q, want %q", tt.input, i, strategy.LabelPrefixes[i], prefix)
			}
		}
	}
}

func TestFilterSections(t *testing.T) {
	sections := ParseSections(sampleACSText)

	t.Run("nil strategy passes everything", func(t *testing.T) {
		if got := FilterSections(sections, nil); len(got) != len(sections) {
			t.Errorf("got %d sections, want %d", len(got), len(sections))
		}
	})

	t.Run("empty strategy passes everything", func(t *testing.T) {
		if got := FilterSections(sections, &Strategy{}); len(got) != len(sections) {
			t.Errorf("got %d sections, want %d", len(got), len(sections))
		}
	})

	t.Run("task prefix keeps only tasks", func(t *testing.T) {
		got := FilterSections(sections, ParseStrategy("TASK"))
		if len(got) != 3 {
			t.Fatalf("got %d sections, want 3", len(got))
		}
		for _, s := range got {
			if !strings.HasPrefix(s.Type, "TASK") {
				t.Errorf("unexpected section %q after TASK filter", s.Type)
			}
		}
	})

	t.Run("unknown prefix filters everything", func(t *testing.T) {
		if got := FilterSections(sections, ParseStrategy("APPENDIX")); len(got) != 0 {
			t.Errorf("got %d sections, want 0", len(got))
		}
	})
}

package models

// Section is a single pattern match within a document's text: the matched
// label, the captured content, and where in the text it was found. Sections
// from different rules may overlap; the list is flat and offset-ordered, not
// a tree.
type Section struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
}

// AreaOfOperation is one "AREA OF OPERATION <roman>" heading.
type AreaOfOperation struct {
	Number string `json:"number"`
	Title  string `json:"title"`
}

// Task is one "TASK <letter>." heading.
type Task struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// StandardsTable aggregates the typed entities extracted from a document.
// References may contain duplicates; de-duplication is a rendering concern.
// Objectives, knowledge elements, risk management, and skill elements are
// part of the schema but only populated if matching rules are added.
type StandardsTable struct {
	AreasOfOperation []AreaOfOperation `json:"areas_of_operation"`
	Tasks            []Task            `json:"tasks"`
	References       []string          `json:"references"`
	Objectives       []string          `json:"objectives"`
	KnowledgeElems   []string          `json:"knowledge_elements"`
	RiskManagement   []string          `json:"risk_management"`
	SkillElems       []string          `json:"skill_elements"`
}

// DocMetadata is the best-effort metadata a text-extraction backend returns.
// Any field may be empty.
type DocMetadata struct {
	PageCount        int    `json:"page_count"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	CreationDate     string `json:"creation_date"`
	ModificationDate string `json:"modification_date"`
}

// StructuredContent bundles the standards table with counts and enrichment
// derived from the extracted text.
type StructuredContent struct {
	Standards      StandardsTable `json:"standards"`
	Metadata       DocMetadata    `json:"metadata"`
	WordCount      int            `json:"word_count"`
	CharacterCount int            `json:"character_count"`
	Language       string         `json:"language,omitempty"`
	TopKeywords    []string       `json:"top_keywords,omitempty"`
}

// ExtractedDocument is the immutable result of processing one PDF. A document
// that yielded no text keeps empty content fields rather than failing.
type ExtractedDocument struct {
	Name              string             `json:"name"`
	SourcePath        string             `json:"source_path"`
	TextContent       string             `json:"text_content"`
	StructuredContent *StructuredContent `json:"structured_content,omitempty"`
	Sections          []Section          `json:"sections,omitempty"`
	Metadata          *DocMetadata       `json:"metadata,omitempty"`
	ProcessingMethod  string             `json:"processing_method,omitempty"`
	ProcessedAt       string             `json:"processed_at,omitempty"`
}

// ProcessingSummary is the batch extraction run metadata written to
// processing_summary.json.
type ProcessingSummary struct {
	ProcessedAt           string   `json:"processed_at"`
	TotalDocuments        int      `json:"total_documents"`
	SuccessfullyProcessed int      `json:"successfully_processed"`
	ProcessingMethod      string   `json:"processing_method"`
	Documents             []string `json:"documents"`
	TopKeywords           []string `json:"top_keywords,omitempty"`
}

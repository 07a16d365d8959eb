package models

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ExtractionResult is what the resume upload route returns. Skills are kept
// exactly as the extraction service produced them.
type ExtractionResult struct {
	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects"`
}

package docpack

// Finding describes one divergence between the pattern extractor's view
// of a document and a full DOM parse of the same document.
type Finding struct {
	// Field is the page field that diverged: "title", "sections",
	// "codeBlocks" or "tables".
	Field string `json:"field"`

	// Extracted is the count the pattern extractor produced.
	Extracted int `json:"extracted"`

	// Parsed is the count a DOM parse of the same HTML produced.
	Parsed int `json:"parsed"`
}

// Auditor cross-checks a pattern-extracted page against another parse of
// the same HTML document. It is diagnostic only and never alters
// extraction output.
type Auditor interface {
	Audit(html string, page *Page) ([]Finding, error)
}

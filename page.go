package docpack

import "time"

// Section represents a heading captured from a page, in document order.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// CodeBlock represents a fenced code sample captured from a page.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Table represents a table captured from a page.
// Headers are optional; a table with neither headers nor rows is never
// recorded by the extractor.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Page is the structured extraction result for one HTML document.
// It is fully populated in a single pass and never mutated afterward.
type Page struct {
	URL        string      `json:"url"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Sections   []Section   `json:"sections"`
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Tables     []Table     `json:"tables"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	for _, s := range p.Sections {
		if s.Level < 1 || s.Level > 6 {
			return Errorf(EINVALID, "section level must be between 1 and 6, got %d", s.Level)
		}
	}
	return nil
}

// DocumentSet aggregates every extracted page plus run metadata.
// A fresh extraction run fully replaces any previous set.
type DocumentSet struct {
	BaseURL     string  `json:"baseUrl"`
	ExtractedAt string  `json:"extractedAt"`
	Pages       []*Page `json:"pages"`
	TotalPages  int     `json:"totalPages"`
}

// NewDocumentSet assembles a DocumentSet, stamping the extraction time in
// UTC and keeping TotalPages consistent with the page count.
func NewDocumentSet(baseURL string, pages []*Page, now time.Time) *DocumentSet {
	return &DocumentSet{
		BaseURL:     baseURL,
		ExtractedAt: now.UTC().Format(time.RFC3339),
		Pages:       pages,
		TotalPages:  len(pages),
	}
}

// Validate returns an error if the set violates its invariants.
func (s *DocumentSet) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "document set base URL required")
	}
	if s.TotalPages != len(s.Pages) {
		return Errorf(EINVALID, "totalPages is %d but the set contains %d pages", s.TotalPages, len(s.Pages))
	}
	return nil
}

// Extractor converts one raw HTML document into a Page.
// Implementations leave the URL field empty; callers derive it from the
// source filename. Malformed input degrades to empty or default fields
// rather than returning an error.
type Extractor interface {
	Extract(html string) (*Page, error)
}

// Renderer converts a DocumentSet into one Markdown document.
// Rendering is deterministic: identical input produces identical output.
type Renderer interface {
	Render(set *DocumentSet) (string, error)
}

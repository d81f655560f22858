// Package goquery cross-checks pattern-based extraction against a real
// DOM parse of the same document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docpack"
)

// Ensure Auditor implements docpack.Auditor at compile time.
var _ docpack.Auditor = (*Auditor)(nil)

// Auditor reports where pattern-based extraction diverges from a DOM
// parse. Divergence is expected for the extractor's documented blind
// spots: nested tables, headings closed at the wrong level, and code
// outside the pre>code.language-* shape. The auditor makes those cases
// visible per file instead of leaving them silent.
type Auditor struct{}

// NewAuditor creates a new Auditor.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// Audit compares the extracted page against a DOM parse of the HTML it
// came from and returns one finding per diverging field.
func (a *Auditor) Audit(html string, page *docpack.Page) ([]docpack.Finding, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docpack.Errorf(docpack.EINVALID, "failed to parse HTML: %v", err)
	}

	var findings []docpack.Finding
	check := func(field string, extracted, parsed int) {
		if extracted != parsed {
			findings = append(findings, docpack.Finding{
				Field:     field,
				Extracted: extracted,
				Parsed:    parsed,
			})
		}
	}

	check("title", boolToCount(page.Title != "Untitled"), boolToCount(domTitle(doc) != ""))
	check("sections", len(page.Sections), doc.Find("h1, h2, h3, h4, h5, h6").Length())
	check("codeBlocks", len(page.CodeBlocks), doc.Find(`pre > code[class*="language-"]`).Length())
	check("tables", len(page.Tables), doc.Find("table").Length())

	return findings, nil
}

func domTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func boolToCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

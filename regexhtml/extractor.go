// Package regexhtml extracts structured content from HTML documents
// using single-pass pattern matching instead of a DOM parse.
//
// The patterns encode a fixed set of simplifying assumptions: a heading
// only counts when its closing tag level matches its opening level, code
// blocks must follow the exact pre>code.language-* nesting, and tables
// are matched non-nested (a document with nested tables mis-extracts).
// Documents breaking those assumptions degrade silently to empty or
// partial results rather than erroring. The goquery package provides an
// audit that makes such divergence visible per file.
package regexhtml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/docpack"
)

var (
	titleRe   = regexp.MustCompile(`(?i)<title>(.*?)</title>`)
	headingRe = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h([1-6])>`)
	codeRe    = regexp.MustCompile(`(?is)<pre[^>]*><code[^>]*class="language-(\w+)"[^>]*>(.*?)</code></pre>`)
	tableRe   = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table>`)
	theadRe   = regexp.MustCompile(`(?is)<thead[^>]*>(.*?)</thead>`)
	tbodyRe   = regexp.MustCompile(`(?is)<tbody[^>]*>(.*?)</tbody>`)
	rowRe     = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	headerRe  = regexp.MustCompile(`(?i)<th[^>]*>(.*?)</th>`)
	cellRe    = regexp.MustCompile(`(?i)<t[dh][^>]*>(.*?)</t[dh]>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
)

// Ensure Extractor implements docpack.Extractor at compile time.
var _ docpack.Extractor = (*Extractor)(nil)

// Extractor implements docpack.Extractor with pattern matching.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract converts one raw HTML document into a Page. The URL field is
// left empty for the caller to fill in. It never returns an error:
// malformed input degrades to empty or default fields.
func (e *Extractor) Extract(html string) (*docpack.Page, error) {
	return &docpack.Page{
		Title:      ExtractTitle(html),
		Content:    ExtractText(html),
		Sections:   ExtractSections(html),
		CodeBlocks: ExtractCodeBlocks(html),
		Tables:     ExtractTables(html),
	}, nil
}

// ExtractTitle returns the text of the first <title> element with inner
// markup stripped, or "Untitled" when the document has none. The match
// does not span newlines.
func ExtractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return "Untitled"
	}
	return strings.TrimSpace(stripTags(m[1]))
}

// ExtractSections returns every <h1> through <h6> heading in document
// order. A heading whose closing tag level disagrees with its opening
// level, or that never closes, is silently skipped.
func ExtractSections(html string) []docpack.Section {
	var sections []docpack.Section
	for _, m := range headingRe.FindAllStringSubmatch(html, -1) {
		if m[1] != m[3] {
			continue
		}
		level, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		sections = append(sections, docpack.Section{
			Level: level,
			Title: strings.TrimSpace(stripTags(m[2])),
		})
	}
	return sections
}

// ExtractCodeBlocks returns every fenced code sample in document order.
// Only the exact nesting <pre><code class="language-NAME"> is captured;
// code outside that shape is not recorded.
func ExtractCodeBlocks(html string) []docpack.CodeBlock {
	var blocks []docpack.CodeBlock
	for _, m := range codeRe.FindAllStringSubmatch(html, -1) {
		blocks = append(blocks, docpack.CodeBlock{
			Language: m[1],
			Code:     strings.TrimSpace(decodeEntities(m[2])),
		})
	}
	return blocks
}

// ExtractTables returns every table in document order. Headers come from
// a <thead>'s <th> cells; rows come from the <tbody> when present, else
// from the whole table. A row is only kept when it has at least one
// cell, and a table contributing neither headers nor rows is dropped.
// Tables are matched non-nested: nested tables mis-extract.
func ExtractTables(html string) []docpack.Table {
	var tables []docpack.Table
	for _, tm := range tableRe.FindAllStringSubmatch(html, -1) {
		inner := tm[1]

		var headers []string
		if hm := theadRe.FindStringSubmatch(inner); hm != nil {
			for _, th := range headerRe.FindAllStringSubmatch(hm[1], -1) {
				headers = append(headers, strings.TrimSpace(stripTags(th[1])))
			}
		}

		rowSource := inner
		if bm := tbodyRe.FindStringSubmatch(inner); bm != nil {
			rowSource = bm[1]
		}

		var rows [][]string
		for _, tr := range rowRe.FindAllStringSubmatch(rowSource, -1) {
			var row []string
			for _, cell := range cellRe.FindAllStringSubmatch(tr[1], -1) {
				row = append(row, strings.TrimSpace(stripTags(cell[1])))
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
		}

		if len(headers) > 0 || len(rows) > 0 {
			tables = append(tables, docpack.Table{Headers: headers, Rows: rows})
		}
	}
	return tables
}

// stripTags removes inline markup from matched text.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// decodeEntities decodes the small set of entities that appear inside
// code blocks. The order is load-bearing: &amp; decodes last so that
// double-encoded input such as "&amp;lt;" becomes "&lt;" rather than
// being unescaped twice down to "<".
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	return strings.ReplaceAll(s, "&amp;", "&")
}

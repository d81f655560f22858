// Package markdown renders a document set into one consolidated Markdown
// document: a front-matter block, a categorized table of contents, and
// per-category, per-page sections.
package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/docpack"
)

// Ensure Renderer implements docpack.Renderer at compile time.
var _ docpack.Renderer = (*Renderer)(nil)

// Renderer implements docpack.Renderer.
type Renderer struct {
	// DocTitle is the level-1 heading of the consolidated document.
	DocTitle string

	// TitleSuffix is stripped from page titles before display. Scraped
	// pages carry the site name appended to every <title>.
	TitleSuffix string
}

// NewRenderer creates a Renderer with the document framing used for the
// Hyperliquid documentation snapshot.
func NewRenderer() *Renderer {
	return &Renderer{
		DocTitle:    "Hyperliquid Complete Documentation",
		TitleSuffix: " | Hyperliquid Docs",
	}
}

// Render converts a DocumentSet into one Markdown document. Output is
// deterministic: identical sets render to byte-identical documents.
func (r *Renderer) Render(set *docpack.DocumentSet) (string, error) {
	if set == nil {
		return "", docpack.Errorf(docpack.EINVALID, "document set required")
	}

	extractedAt := set.ExtractedAt
	if extractedAt == "" {
		extractedAt = "Unknown"
	}

	lines := []string{
		fmt.Sprintf("# %s\n", r.DocTitle),
		fmt.Sprintf("\n> Extracted from %s\n", set.BaseURL),
		fmt.Sprintf("\n> Extracted at: %s\n", extractedAt),
		fmt.Sprintf("\n> Total pages: %d\n", len(set.Pages)),
		"\n---\n",
		r.GenerateTOC(set.Pages),
		"\n---\n",
	}

	groups := groupByCategory(set.Pages)
	for _, category := range sortedCategories(groups) {
		if category == docpack.OtherCategory {
			continue
		}

		lines = append(lines, fmt.Sprintf("\n## %s\n", category))

		for _, page := range sortByTitle(groups[category]) {
			lines = append(lines,
				fmt.Sprintf("\n### %s\n", r.cleanTitle(page.Title)),
				fmt.Sprintf("\n**Source:** %s\n", page.URL),
				r.RenderPage(page),
				"\n---\n",
			)
		}
	}

	lines = append(lines,
		"\n---\n",
		"\n*Documentation generated from extracted data*\n",
		"*All content preserved from original source*\n",
	)

	return strings.Join(lines, "\n"), nil
}

// RenderPage renders one page body: a level-1 heading with the cleaned
// title, each recorded section as a heading at its recorded level, the
// cleaned content, each code block as a fenced block tagged with its
// language, and each table that has both headers and rows.
func (r *Renderer) RenderPage(page *docpack.Page) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("\n# %s\n", r.cleanTitle(page.Title)))

	for _, section := range page.Sections {
		level := section.Level
		if level == 0 {
			level = 2
		}
		lines = append(lines, fmt.Sprintf("\n%s %s\n", strings.Repeat("#", level), section.Title))
	}

	if content := CleanContent(page.Content); content != "" {
		lines = append(lines, fmt.Sprintf("\n%s\n", content))
	}

	for _, block := range page.CodeBlocks {
		language := block.Language
		if language == "" {
			language = "unknown"
		}
		lines = append(lines, fmt.Sprintf("\n```%s\n%s\n```\n", language, block.Code))
	}

	for _, table := range page.Tables {
		if len(table.Headers) > 0 && len(table.Rows) > 0 {
			lines = append(lines, FormatTable(table.Headers, table.Rows))
		}
	}

	return strings.Join(lines, "\n")
}

// GenerateTOC generates the table of contents: categories sorted
// lexicographically, pages within a category sorted by raw title, one
// link per page. Pages in the Other category are omitted.
func (r *Renderer) GenerateTOC(pages []*docpack.Page) string {
	lines := []string{"# Table of Contents\n"}

	groups := groupByCategory(pages)
	for _, category := range sortedCategories(groups) {
		if category == docpack.OtherCategory {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n## %s\n", category))
		for _, page := range sortByTitle(groups[category]) {
			title := r.cleanTitle(page.Title)
			lines = append(lines, fmt.Sprintf("- [%s](#%s)", title, anchor(title)))
		}
	}

	return strings.Join(lines, "\n")
}

// cleanTitle strips the site suffix from a page title.
func (r *Renderer) cleanTitle(title string) string {
	return strings.TrimSpace(strings.ReplaceAll(title, r.TitleSuffix, ""))
}

// anchor builds a TOC link anchor: lowercase with spaces replaced by
// hyphens. Punctuation is kept, so titles containing characters other
// than letters, digits and spaces can produce anchors that do not match
// a Markdown renderer's auto-generated ones. Known limitation.
func anchor(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// groupByCategory buckets pages by the category of their URL.
func groupByCategory(pages []*docpack.Page) map[string][]*docpack.Page {
	groups := make(map[string][]*docpack.Page)
	for _, page := range pages {
		category := docpack.Categorize(page.URL)
		groups[category] = append(groups[category], page)
	}
	return groups
}

// sortedCategories returns the group keys in lexicographic order.
func sortedCategories(groups map[string][]*docpack.Page) []string {
	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// sortByTitle returns the pages sorted by raw title. Sorting happens on
// the title as extracted, before the site suffix is stripped.
func sortByTitle(pages []*docpack.Page) []*docpack.Page {
	sorted := make([]*docpack.Page, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

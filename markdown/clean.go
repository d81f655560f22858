package markdown

import (
	"regexp"
	"strings"
)

// boilerplatePatterns match scraped navigation artifacts that carry no
// documentation content: the GitBook banner, "on this page" widgets, and
// trailing previous/next links. None of the patterns span newlines.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Hyperliquid DocsCtrlk.*?Powered by GitBook`),
	regexp.MustCompile(`On this pageCopy`),
	regexp.MustCompile(`Previous.*?Next.*`),
}

var newlineRunPattern = regexp.MustCompile(`\n{3,}`)

// CleanContent strips known boilerplate fragments from extracted page
// text, collapses runs of three or more newlines down to a single blank
// line, and trims the result.
func CleanContent(content string) string {
	for _, pattern := range boilerplatePatterns {
		content = pattern.ReplaceAllString(content, "")
	}
	content = newlineRunPattern.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

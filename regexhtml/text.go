package regexhtml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractText returns the visible text of an HTML document: every text
// fragment outside <script> and <style> elements, joined with single
// spaces and trimmed.
//
// Script and style containment is tracked with flat open/close flags,
// not a nesting stack. Unbalanced script or style tags can therefore
// leak their contents into the output or suppress unrelated text that
// follows them.
func ExtractText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var parts []string
	var inScript, inStyle bool

	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input, or markup the tokenizer cannot continue
			// past. Either way, keep what was collected.
			return strings.TrimSpace(strings.Join(parts, " "))

		case html.StartTagToken:
			switch tagAtom(z) {
			case atom.Script:
				inScript = true
			case atom.Style:
				inStyle = true
			}

		case html.EndTagToken:
			switch tagAtom(z) {
			case atom.Script:
				inScript = false
			case atom.Style:
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				parts = append(parts, z.Token().Data)
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

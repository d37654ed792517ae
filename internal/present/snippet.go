package present

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanSnippet strips markup from an evidence snippet so raw HTML in a
// match's context renders as plain text. Snippets without markup pass
// through with only whitespace normalization.
func CleanSnippet(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return collapseWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}
	doc.Find("script, style, noscript").Remove()

	text := doc.Text()
	return collapseWhitespace(text)
}

// collapseWhitespace trims each line and drops empty ones, joining the rest
// with single spaces.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

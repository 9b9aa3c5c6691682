package sources

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML turns possibly-HTML text into plain text: tags removed,
// script/style contents dropped, entities decoded, whitespace collapsed.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return normalizeWhitespace(html.UnescapeString(s))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return normalizeWhitespace(html.UnescapeString(s))
	}

	doc.Find("script, style").Remove()
	return normalizeWhitespace(doc.Text())
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements that correspond to one visual line each
// in a typical HTML resume export.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li"

// FromHTML converts an HTML resume export (e.g. a LinkedIn profile saved as
// HTML) into line-oriented text for the structurer. Headings, paragraphs,
// and list items each become one line. If the document has no such block
// structure, the whole body text is used instead.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, script, style, noscript, .sidebar, .cookie-banner").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks (an li containing a p) would duplicate text;
		// only emit nodes with no block children of their own.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return CleanText(doc.Find("body").Text()), nil
	}
	return CleanText(strings.Join(lines, "\n")), nil
}

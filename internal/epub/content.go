package epub

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractText parses an XHTML content document and returns its visible
// text. Script and style subtrees are removed entirely. Every markup
// boundary becomes a whitespace separator so words never run together
// across tags, and whitespace runs collapse to single spaces.
func ExtractText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse XHTML: %w", err)
	}

	doc.Find("script, style").Remove()

	// Extract from body only; head titles are not book text. Fall back
	// to the whole document for fragments without a body element.
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var b strings.Builder
	for _, n := range root.Nodes {
		collectText(n, &b)
	}

	return strings.Join(strings.Fields(b.String()), " "), nil
}

// collectText appends the text content of n and its descendants to b,
// with a separator after each text node.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

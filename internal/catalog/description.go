package catalog

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// StripHTML converts a catalog description to plain text.
// Line breaks become newlines and entities are decoded.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return strings.TrimSpace(s)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	sel := goquery.NewDocumentFromNode(body).Selection
	sel.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(newline())
	})
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		p.AppendNodes(newline())
	})

	text := strings.ReplaceAll(sel.Text(), "\r\n", "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Linearize renders the page's main article as markdown-like text.
// Readability strips navigation and chrome first; the distilled
// content is then walked block by block. Pages readability cannot
// distill fall back to the collapsed full text.
func Linearize(rawURL, html string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fallbackText(html)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return fallbackText(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return fallbackText(html)
	}

	var b strings.Builder
	if title := collapseWhitespace(article.Title); title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(i int, s *goquery.Selection) {
		text := collapseWhitespace(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			fmt.Fprintf(&b, "# %s\n\n", text)
		case "h2":
			fmt.Fprintf(&b, "## %s\n\n", text)
		case "h3":
			fmt.Fprintf(&b, "### %s\n\n", text)
		case "h4":
			fmt.Fprintf(&b, "#### %s\n\n", text)
		case "li":
			if href, ok := s.Find("a").First().Attr("href"); ok {
				linkText := collapseWhitespace(s.Find("a").First().Text())
				if linkText == "" {
					linkText = href
				}
				rest := strings.TrimSpace(strings.TrimPrefix(text, linkText))
				if rest != "" {
					fmt.Fprintf(&b, "- [%s](%s) %s\n", linkText, href, rest)
				} else {
					fmt.Fprintf(&b, "- [%s](%s)\n", linkText, href)
				}
			} else {
				fmt.Fprintf(&b, "- %s\n", text)
			}
		case "pre":
			fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimSpace(s.Text()))
		default:
			fmt.Fprintf(&b, "%s\n\n", text)
		}
	})

	out := strings.TrimSpace(b.String())
	if out == "" {
		return fallbackText(html)
	}
	return out
}

func fallbackText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,noscript").Remove()
	return collapseWhitespace(doc.Text())
}

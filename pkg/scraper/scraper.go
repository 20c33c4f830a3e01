// Package scraper turns a fetched page into structured content: text,
// links, images, and meta tags.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/fetcher"
)

// Options selects what a scrape collects and how much of it.
type Options struct {
	ExtractText     bool
	ExtractLinks    bool
	ExtractImages   bool
	ExtractMetadata bool
	MaxLinks        int
	MaxImages       int
}

func DefaultOptions() Options {
	return Options{
		ExtractText:     true,
		ExtractLinks:    true,
		ExtractImages:   false,
		ExtractMetadata: true,
		MaxLinks:        50,
		MaxImages:       20,
	}
}

const textSummaryLimit = 300

type Scraper struct {
	fetcher *fetcher.Fetcher
}

func New(f *fetcher.Fetcher) *Scraper {
	return &Scraper{fetcher: f}
}

// Scrape downloads rawURL and extracts the sections Options selects.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, opts Options) (*models.ScrapeResult, error) {
	body, contentType, err := s.fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return ScrapeBody(rawURL, body, contentType, opts)
}

// ScrapeBody extracts from an already-downloaded body. Splitting this
// from Scrape keeps extraction testable without a server.
func ScrapeBody(rawURL string, body []byte, contentType string, opts Options) (*models.ScrapeResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &models.ScrapeResult{
		URL:           rawURL,
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		ContentType:   contentType,
		ContentLength: len(body),
		Metadata:      map[string]string{},
	}

	base, _ := url.Parse(rawURL)

	doc.Find("script,style,noscript").Remove()

	if opts.ExtractText {
		result.TextContent = collapseWhitespace(doc.Find("body").Text())
		if result.TextContent == "" {
			result.TextContent = collapseWhitespace(doc.Text())
		}
		result.TextSummary = summarizeText(result.TextContent)
		result.Markdown = Linearize(rawURL, string(body))
	}

	if opts.ExtractLinks {
		max := opts.MaxLinks
		if max <= 0 {
			max = DefaultOptions().MaxLinks
		}
		doc.Find("a").EachWithBreak(func(i int, sel *goquery.Selection) bool {
			href, ok := sel.Attr("href")
			href = strings.TrimSpace(href)
			if !ok || href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
				return true
			}
			result.Links = append(result.Links, models.Link{
				URL:   resolveURL(base, href),
				Text:  collapseWhitespace(sel.Text()),
				Title: sel.AttrOr("title", ""),
			})
			return len(result.Links) < max
		})
	}

	if opts.ExtractImages {
		max := opts.MaxImages
		if max <= 0 {
			max = DefaultOptions().MaxImages
		}
		doc.Find("img").EachWithBreak(func(i int, sel *goquery.Selection) bool {
			src, ok := sel.Attr("src")
			src = strings.TrimSpace(src)
			if !ok || src == "" {
				return true
			}
			result.Images = append(result.Images, models.Image{
				Src:   resolveURL(base, src),
				Alt:   sel.AttrOr("alt", ""),
				Title: sel.AttrOr("title", ""),
			})
			return len(result.Images) < max
		})
	}

	if opts.ExtractMetadata {
		doc.Find("meta").Each(func(i int, sel *goquery.Selection) {
			name := sel.AttrOr("name", "")
			if name == "" {
				name = sel.AttrOr("property", "")
			}
			if name == "" {
				return
			}
			result.Metadata[name] = sel.AttrOr("content", "")
		})
	}

	result.ScrapingSummary = fmt.Sprintf(
		"Scraped %d characters of text, %d links, %d images, and %d metadata fields from %s.",
		len(result.TextContent), len(result.Links), len(result.Images), len(result.Metadata), rawURL)
	return result, nil
}

func resolveURL(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func summarizeText(text string) string {
	if len(text) <= textSummaryLimit {
		return text
	}
	cut := text[:textSummaryLimit]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// Package listmeta extracts structural metadata from awesome-list
// pages. Extraction never fails: every field has a documented fallback
// chain ending in a default, so malformed input degrades instead of
// erroring.
package listmeta

import (
	"regexp"
	"strings"
)

const (
	// DefaultTopic is returned when no heading, title, or URL segment
	// yields a topic.
	DefaultTopic = "Unknown Topic"

	// DefaultDescription is returned when no description source matches.
	DefaultDescription = "No description available"

	// MaxCategories caps the category list.
	MaxCategories = 10
)

var (
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Re      = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	mdH1Re    = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	awesomeRe = regexp.MustCompile(`(?i)^(awesome-?|Awesome\s+)`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]+>`)

	metaDescRe    = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]+content=["']([^"']*)["']`)
	metaDescRevRe = regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']description["']`)
	firstParaRe   = regexp.MustCompile(`(?is)</h1>\s*(?:<[^>]+>\s*)*<p[^>]*>(.*?)</p>`)

	h2h3Re  = regexp.MustCompile(`(?is)<h[23][^>]*>(.*?)</h[23]>`)
	mdH23Re = regexp.MustCompile(`(?m)^#{2,3}\s+(.+)$`)

	mdLinkRe   = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	htmlLinkRe = regexp.MustCompile(`(?i)<a\s[^>]*href=`)
	urlSegRe   = regexp.MustCompile(`(?i)awesome-([a-z0-9-]+)`)
)

// skipCategories are boilerplate headings excluded from the category
// list, matched case-insensitively.
var skipCategories = map[string]struct{}{
	"contents":          {},
	"table of contents": {},
	"contributing":      {},
	"license":           {},
	"awesome":           {},
	"related":           {},
	"similar":           {},
	"credits":           {},
	"acknowledgments":   {},
}

func stripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, " "))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Topic derives the list's topic. Fallback order: <title>, first <h1>,
// first markdown level-1 heading, then an "awesome-" segment of the
// URL. The awesome prefix is stripped from whichever source matched.
func Topic(content, pageURL string) string {
	for _, re := range []*regexp.Regexp{titleRe, h1Re, mdH1Re} {
		if m := re.FindStringSubmatch(content); m != nil {
			raw := collapseSpace(stripTags(m[1]))
			if topic := strings.TrimSpace(awesomeRe.ReplaceAllString(raw, "")); topic != "" {
				return topic
			}
		}
	}
	if m := urlSegRe.FindStringSubmatch(pageURL); m != nil {
		topic := strings.ReplaceAll(m[1], "-", " ")
		if topic = strings.TrimSpace(topic); topic != "" {
			return topic
		}
	}
	return DefaultTopic
}

// Description derives the list's description. Fallback order: meta
// description tag, first paragraph after the <h1>, first non-empty
// markdown line after the level-1 heading.
func Description(content string) string {
	for _, re := range []*regexp.Regexp{metaDescRe, metaDescRevRe} {
		if m := re.FindStringSubmatch(content); m != nil {
			if desc := collapseSpace(m[1]); desc != "" {
				return desc
			}
		}
	}
	if m := firstParaRe.FindStringSubmatch(content); m != nil {
		if desc := collapseSpace(stripTags(m[1])); desc != "" {
			return desc
		}
	}
	if loc := mdH1Re.FindStringIndex(content); loc != nil {
		for _, line := range strings.Split(content[loc[1]:], "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return collapseSpace(line)
		}
	}
	return DefaultDescription
}

// Categories collects section headings (<h2>/<h3> and markdown ##/###)
// in document order, dropping boilerplate headings and duplicates and
// capping the result at MaxCategories.
func Categories(content string) []string {
	type hit struct {
		pos  int
		text string
	}
	var hits []hit
	for _, m := range h2h3Re.FindAllStringSubmatchIndex(content, -1) {
		hits = append(hits, hit{m[0], content[m[2]:m[3]]})
	}
	for _, m := range mdH23Re.FindAllStringSubmatchIndex(content, -1) {
		hits = append(hits, hit{m[0], content[m[2]:m[3]]})
	}
	// Merge the two scans back into document order.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, h := range hits {
		name := collapseSpace(stripTags(h.text))
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, skip := skipCategories[key]; skip {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, name)
		if len(categories) == MaxCategories {
			break
		}
	}
	return categories
}

// TotalItems estimates the resource count as the larger of the
// markdown link count and the HTML anchor count.
func TotalItems(content string) int {
	md := len(mdLinkRe.FindAllString(content, -1))
	html := len(htmlLinkRe.FindAllString(content, -1))
	if md > html {
		return md
	}
	return html
}

// Extract runs every field extractor over one page.
func Extract(content, pageURL string) (topic, description string, categories []string, totalItems int, language string) {
	topic = Topic(content, pageURL)
	description = Description(content)
	categories = Categories(content)
	totalItems = TotalItems(content)
	language = Language(content, pageURL)
	return
}

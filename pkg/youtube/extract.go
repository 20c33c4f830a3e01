// Package youtube finds YouTube URLs in text and resolves their video
// metadata.
package youtube

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxURLs caps an extraction pass.
const DefaultMaxURLs = 50

// urlPatterns match every YouTube URL form worth collecting: watch
// pages, embeds, short links, playlists, and channel pages.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=[\w-]+(?:&[\w=&-]*)?`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/v/[\w-]+`),
	regexp.MustCompile(`https?://youtu\.be/[\w-]+(?:\?[\w=&-]*)?`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/playlist\?list=[\w-]+`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/channel/[\w-]+`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/c/[\w-]+`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/@[\w.-]+`),
}

var markdownBodyRe = regexp.MustCompile(`!?\[[^\]]*\]\(([^)]+)\)`)

// ExtractURLs collects the distinct YouTube URLs appearing in text,
// including inside markdown link and image bodies. The result is
// sorted, so extraction is idempotent, and capped at max (DefaultMaxURLs
// when max <= 0).
func ExtractURLs(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxURLs
	}

	seen := make(map[string]struct{})
	collect := func(s string) {
		for _, re := range urlPatterns {
			for _, u := range re.FindAllString(s, -1) {
				seen[u] = struct{}{}
			}
		}
	}
	collect(text)
	for _, m := range markdownBodyRe.FindAllStringSubmatch(text, -1) {
		collect(m[1])
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	if len(urls) > max {
		urls = urls[:max]
	}
	return urls
}

// VideoID derives the video identifier from a YouTube URL. Channel and
// playlist URLs have no video ID and report false.
func VideoID(url string) (string, bool) {
	if i := strings.Index(url, "v="); i >= 0 && strings.Contains(url, "watch?") {
		return trimID(url[i+2:]), true
	}
	if i := strings.Index(url, "youtu.be/"); i >= 0 {
		return trimID(url[i+len("youtu.be/"):]), true
	}
	if i := strings.Index(url, "/embed/"); i >= 0 {
		return trimID(url[i+len("/embed/"):]), true
	}
	if i := strings.Index(url, "/v/"); i >= 0 {
		return trimID(url[i+len("/v/"):]), true
	}
	return "", false
}

func trimID(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '&' || c == '?' || c == '/' || c == '#' {
			return s[:i]
		}
	}
	return s
}

// IsVideoURL reports whether url points at a single video rather than
// a channel or playlist.
func IsVideoURL(url string) bool {
	_, ok := VideoID(url)
	return ok
}

// VideoIDs maps ExtractURLs output to distinct video IDs, preserving
// the sorted-URL order.
func VideoIDs(urls []string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, u := range urls {
		id, ok := VideoID(u)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

package listparse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/fetcher"
	"github.com/dtnitsch/awesome-list-agent/pkg/listmeta"
	"github.com/dtnitsch/awesome-list-agent/pkg/youtube"
)

const listPage = `<!DOCTYPE html>
<html>
<head>
  <title>Awesome Go</title>
  <meta name="description" content="A curated list of awesome Go frameworks">
</head>
<body>
  <h1>Awesome Go</h1>
  <h2>Contents</h2>
  <h2>Web Frameworks</h2>
  <ul>
    <li><a href="https://github.com/gin-gonic/gin">Gin</a></li>
    <li><a href="https://github.com/labstack/echo">Echo</a></li>
  </ul>
  <h2>Videos</h2>
  <ul>
    <li><a href="https://www.youtube.com/watch?v=video0001">Intro talk</a></li>
    <li><a href="https://youtu.be/video0002">Deep dive</a></li>
  </ul>
  <h2>License</h2>
  <p>golang golang golang</p>
</body>
</html>`

func newTestParser(t *testing.T, handler http.HandlerFunc) (*Parser, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := fetcher.New(5 * time.Second)
	t.Cleanup(f.Close)

	return New(Config{Fetcher: f}), srv.URL
}

func TestParse(t *testing.T) {
	p, url := newTestParser(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listPage))
	})

	got, err := p.Parse(context.Background(), url)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got.Topic != "Go" {
		t.Errorf("Topic = %q, want %q", got.Topic, "Go")
	}
	if got.Description != "A curated list of awesome Go frameworks" {
		t.Errorf("Description = %q", got.Description)
	}
	for _, skip := range []string{"Contents", "License"} {
		for _, c := range got.Categories {
			if c == skip {
				t.Errorf("Categories contains boilerplate heading %q", skip)
			}
		}
	}
	if got.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", got.TotalItems)
	}
	if got.Scrape == nil {
		t.Fatal("Scrape is nil")
	}
	if len(got.Videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(got.Videos))
	}
	if got.ContextSummary == "" || !strings.Contains(got.ContextSummary, "Go") {
		t.Errorf("ContextSummary = %q", got.ContextSummary)
	}
	if !strings.Contains(got.ContextSummary, "YouTube") {
		t.Errorf("ContextSummary = %q, want video sentence", got.ContextSummary)
	}
}

func TestParseFetchFailure(t *testing.T) {
	p, url := newTestParser(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := p.Parse(context.Background(), url); err == nil {
		t.Fatal("Parse() error = nil, want error for 500")
	}
}

func TestParseEmptyBody(t *testing.T) {
	p, url := newTestParser(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(""))
	})

	got, err := p.Parse(context.Background(), url)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Topic != "Unknown Topic" {
		t.Errorf("Topic = %q, want default", got.Topic)
	}
	if got.Description != "No description available" {
		t.Errorf("Description = %q, want default", got.Description)
	}
	if got.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", got.TotalItems)
	}
	if len(got.Videos) != 0 {
		t.Errorf("Videos = %v, want none", got.Videos)
	}
}

type failingVideoFetcher struct {
	failIDs map[string]struct{}
	inner   youtube.Fetcher
}

func (f *failingVideoFetcher) Fetch(ctx context.Context, url string) (*models.YouTubeVideo, error) {
	id, _ := youtube.VideoID(url)
	if _, fail := f.failIDs[id]; fail {
		return nil, errors.New("quota exceeded")
	}
	return f.inner.Fetch(ctx, url)
}

func TestParseVideoFailureIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listPage))
	}))
	t.Cleanup(srv.Close)

	f := fetcher.New(5 * time.Second)
	t.Cleanup(f.Close)

	p := New(Config{
		Fetcher: f,
		VideoFetcher: &failingVideoFetcher{
			failIDs: map[string]struct{}{"video0001": {}},
			inner:   youtube.NewStubFetcher(),
		},
	})

	got, err := p.Parse(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got.Videos) != 1 {
		t.Fatalf("got %d videos, want 1 surviving", len(got.Videos))
	}
	if got.Videos[0].VideoID != "video0002" {
		t.Errorf("surviving video = %q, want video0002", got.Videos[0].VideoID)
	}
}

type countingVideoFetcher struct {
	attempts int
	failIDs  map[string]struct{}
	inner    youtube.Fetcher
}

func (f *countingVideoFetcher) Fetch(ctx context.Context, url string) (*models.YouTubeVideo, error) {
	f.attempts++
	id, _ := youtube.VideoID(url)
	if _, fail := f.failIDs[id]; fail {
		return nil, errors.New("quota exceeded")
	}
	return f.inner.Fetch(ctx, url)
}

func TestParseMarkdownVideoLinks(t *testing.T) {
	page := "# Awesome Talks\n\n" +
		"- [One](https://www.youtube.com/watch?v=mdvid1)\n" +
		"- [Two](https://www.youtube.com/watch?v=mdvid2)\n" +
		"- [Three](https://www.youtube.com/watch?v=mdvid3)\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	f := fetcher.New(5 * time.Second)
	t.Cleanup(f.Close)

	counting := &countingVideoFetcher{
		failIDs: map[string]struct{}{"mdvid2": {}},
		inner:   youtube.NewStubFetcher(),
	}
	p := New(Config{Fetcher: f, VideoFetcher: counting})

	got, err := p.Parse(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if counting.attempts != 3 {
		t.Errorf("fetch attempts = %d, want one per distinct video", counting.attempts)
	}
	if len(got.Videos) != 2 {
		t.Errorf("got %d videos, want 2 after one isolated failure", len(got.Videos))
	}
}

func TestParseVideoCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		b.WriteString(`<a href="https://youtu.be/capvid`)
		b.WriteByte(byte('a' + i))
		b.WriteString(`">v</a>`)
	}
	b.WriteString("</body></html>")
	page := b.String()

	p, url := newTestParser(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	got, err := p.Parse(context.Background(), url)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got.Videos) != DefaultMaxVideos {
		t.Errorf("got %d videos, want %d", len(got.Videos), DefaultMaxVideos)
	}
}

func TestBuildContextSummaryNoVideos(t *testing.T) {
	meta := &models.ListMetadata{
		Topic:       "Rust",
		Description: "A curated list",
		Categories:  []string{"Tools", "Libraries"},
		TotalItems:  42,
		Language:    "Rust",
	}
	s := BuildContextSummary(meta, nil, nil)
	if !strings.Contains(s, "Rust") || !strings.Contains(s, "42") {
		t.Errorf("summary = %q", s)
	}
	if strings.Contains(s, "YouTube") {
		t.Errorf("summary mentions videos with none present: %q", s)
	}
}

func TestBuildContextSummarySkipsDefaults(t *testing.T) {
	meta := &models.ListMetadata{
		Topic:       "Obscure Tooling",
		Description: listmeta.DefaultDescription,
		Language:    listmeta.DefaultLanguage,
	}
	s := BuildContextSummary(meta, nil, nil)
	if !strings.Contains(s, "Obscure Tooling") {
		t.Errorf("summary = %q, want topic sentence", s)
	}
	for _, unwanted := range []string{listmeta.DefaultDescription, "0 items", "primary language"} {
		if strings.Contains(s, unwanted) {
			t.Errorf("summary = %q, should not contain %q", s, unwanted)
		}
	}
}

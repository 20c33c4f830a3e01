package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/fetcher"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Awesome Go</title>
  <meta name="description" content="First description">
  <meta name="description" content="A curated list of Go frameworks">
  <meta property="og:title" content="Awesome Go">
  <script>var tracking = "noise";</script>
  <style>body { color: red }</style>
</head>
<body>
  <h1>Awesome Go</h1>
  <p>Frameworks, libraries and software.</p>
  <a href="https://github.com/gin-gonic/gin" title="Gin">Gin</a>
  <a href="/relative/path">Relative</a>
  <a href="javascript:void(0)">Skip me</a>
  <a href="">Also skip</a>
  <a href="https://github.com/labstack/echo">Echo</a>
  <img src="/logo.png" alt="logo">
</body>
</html>`

func scrapeSample(t *testing.T, opts Options) *models.ScrapeResult {
	t.Helper()
	result, err := ScrapeBody("https://example.com/list", []byte(samplePage), "text/html", opts)
	if err != nil {
		t.Fatalf("ScrapeBody() error = %v", err)
	}
	return result
}

func TestScrapeBodyText(t *testing.T) {
	result := scrapeSample(t, DefaultOptions())

	if result.Title != "Awesome Go" {
		t.Errorf("Title = %q, want %q", result.Title, "Awesome Go")
	}
	if strings.Contains(result.TextContent, "tracking") || strings.Contains(result.TextContent, "color: red") {
		t.Errorf("TextContent contains script or style noise: %q", result.TextContent)
	}
	if !strings.Contains(result.TextContent, "Frameworks, libraries and software.") {
		t.Errorf("TextContent = %q, want body text", result.TextContent)
	}
	if result.ContentLength != len(samplePage) {
		t.Errorf("ContentLength = %d, want %d", result.ContentLength, len(samplePage))
	}
}

func TestScrapeBodyLinks(t *testing.T) {
	result := scrapeSample(t, DefaultOptions())

	if len(result.Links) != 3 {
		t.Fatalf("got %d links, want 3: %+v", len(result.Links), result.Links)
	}
	if result.Links[0].URL != "https://github.com/gin-gonic/gin" || result.Links[0].Title != "Gin" {
		t.Errorf("first link = %+v", result.Links[0])
	}
	if result.Links[1].URL != "https://example.com/relative/path" {
		t.Errorf("relative link not resolved: %q", result.Links[1].URL)
	}
}

func TestScrapeBodyLinkCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 30; i++ {
		b.WriteString(`<a href="https://example.com/item">x</a>`)
	}
	b.WriteString("</body></html>")

	opts := DefaultOptions()
	opts.MaxLinks = 10
	result, err := ScrapeBody("https://example.com", []byte(b.String()), "text/html", opts)
	if err != nil {
		t.Fatalf("ScrapeBody() error = %v", err)
	}
	if len(result.Links) != 10 {
		t.Errorf("got %d links, want 10", len(result.Links))
	}
}

func TestScrapeBodyMetadata(t *testing.T) {
	result := scrapeSample(t, DefaultOptions())

	if got := result.Metadata["description"]; got != "A curated list of Go frameworks" {
		t.Errorf("description = %q, want last occurrence to win", got)
	}
	if got := result.Metadata["og:title"]; got != "Awesome Go" {
		t.Errorf("og:title = %q", got)
	}
}

func TestScrapeBodyImages(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtractImages = true
	result := scrapeSample(t, opts)

	if len(result.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(result.Images))
	}
	if result.Images[0].Src != "https://example.com/logo.png" || result.Images[0].Alt != "logo" {
		t.Errorf("image = %+v", result.Images[0])
	}
}

func TestScrapeBodySummary(t *testing.T) {
	result := scrapeSample(t, DefaultOptions())
	if result.ScrapingSummary == "" || !strings.Contains(result.ScrapingSummary, "links") {
		t.Errorf("ScrapingSummary = %q", result.ScrapingSummary)
	}
	if result.TextSummary == "" {
		t.Error("TextSummary is empty")
	}
}

func TestScrapeHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	f := fetcher.New(5 * time.Second)
	defer f.Close()

	result, err := New(f).Scrape(context.Background(), srv.URL, DefaultOptions())
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if result.Title != "Awesome Go" {
		t.Errorf("Title = %q", result.Title)
	}
	if !strings.HasPrefix(result.ContentType, "text/html") {
		t.Errorf("ContentType = %q", result.ContentType)
	}
}

func TestScrapeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := fetcher.New(5 * time.Second)
	defer f.Close()

	if _, err := New(f).Scrape(context.Background(), srv.URL, DefaultOptions()); err == nil {
		t.Fatal("Scrape() error = nil, want error")
	}
}

func TestLinearizeArticle(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><head><title>Awesome Go</title></head><body><article><h1>Awesome Go</h1>")
	for i := 0; i < 12; i++ {
		b.WriteString("<p>Frameworks, libraries and software for building reliable Go services in production environments.</p>")
	}
	b.WriteString("<h2>Web Frameworks</h2><ul><li><a href=\"https://example.com/gin\">Gin</a></li></ul></article></body></html>")

	out := Linearize("https://example.com/list", b.String())
	if out == "" {
		t.Fatal("Linearize() returned empty output")
	}
	if !strings.Contains(out, "Frameworks, libraries and software") {
		t.Errorf("Linearize() = %q, want article text", out)
	}
}

func TestLinearizeFallback(t *testing.T) {
	html := "<html><body><p>tiny</p></body></html>"
	out := Linearize("https://example.com", html)
	if !strings.Contains(out, "tiny") {
		t.Errorf("Linearize() = %q, want it to contain the body text", out)
	}
}

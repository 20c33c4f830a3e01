// Package agent orchestrates the full awesome-list run: scrape,
// parse, video enrichment, optional content analysis, and learning
// guidance, with every step traced.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/analyzer"
	"github.com/dtnitsch/awesome-list-agent/pkg/fetcher"
	"github.com/dtnitsch/awesome-list-agent/pkg/listparse"
	"github.com/dtnitsch/awesome-list-agent/pkg/scraper"
	"github.com/dtnitsch/awesome-list-agent/pkg/tracing"
	"github.com/dtnitsch/awesome-list-agent/pkg/youtube"
)

// DefaultMaxScrapeLinks is the link budget for the orchestrated
// scrape, wider than a bare scrape so video discovery sees more of
// the page.
const DefaultMaxScrapeLinks = 100

const maxSummaryVideos = 5

type Config struct {
	Timeout        time.Duration
	MaxVideos      int
	MaxScrapeLinks int
	Analyze        bool

	Sink         tracing.Sink
	VideoFetcher youtube.Fetcher
	Planner      *Planner
	Logger       *slog.Logger
}

type Agent struct {
	fetcher *fetcher.Fetcher
	scraper *scraper.Scraper
	parser  *listparse.Parser
	sink    tracing.Sink
	planner *Planner
	logger  *slog.Logger
	cfg     Config
}

func New(cfg Config) *Agent {
	if cfg.MaxScrapeLinks <= 0 {
		cfg.MaxScrapeLinks = DefaultMaxScrapeLinks
	}
	if cfg.Sink == nil {
		cfg.Sink = tracing.NopSink{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	f := fetcher.New(cfg.Timeout)
	return &Agent{
		fetcher: f,
		scraper: scraper.New(f),
		parser: listparse.New(listparse.Config{
			Fetcher:      f,
			VideoFetcher: cfg.VideoFetcher,
			MaxVideos:    cfg.MaxVideos,
			Logger:       cfg.Logger,
		}),
		sink:    cfg.Sink,
		planner: cfg.Planner,
		logger:  cfg.Logger,
		cfg:     cfg,
	}
}

// Close releases the agent's network resources.
func (a *Agent) Close() {
	a.fetcher.Close()
}

// Process runs the whole pipeline for one list URL. It never returns
// an error: failures surface as a result with status "error", and the
// trace is concluded either way.
func (a *Agent) Process(ctx context.Context, url string) (result *models.AgentResult) {
	start := time.Now()
	traceID := a.sink.StartTrace(ctx, "process_awesome_list", url)

	result = &models.AgentResult{
		Status: "success",
		URL:    url,
		Metadata: models.ResultMetadata{
			TraceID: traceID,
		},
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("run panicked", "url", url, "panic", r)
			result.Status = "error"
			result.Error = fmt.Sprintf("internal error: %v", r)
		}
		result.Metadata.ProcessingTime = time.Since(start).Round(time.Millisecond).String()
		a.sink.ConcludeTrace(ctx, traceID, result.Status)
	}()

	// The explicit scrape is best effort: its failure degrades the
	// result but never aborts the run.
	var scrapeResult *models.ScrapeResult
	a.span(ctx, traceID, "web_scraper", func() (map[string]string, error) {
		opts := scraper.DefaultOptions()
		opts.MaxLinks = a.cfg.MaxScrapeLinks
		var err error
		scrapeResult, err = a.scraper.Scrape(ctx, url, opts)
		if err != nil {
			return nil, err
		}
		return map[string]string{"links": strconv.Itoa(len(scrapeResult.Links))}, nil
	})
	result.Scraping = summarizeScrape(scrapeResult)

	var parsed *models.EnrichedListMetadata
	var parseErr error
	a.span(ctx, traceID, "parse_awesome_list", func() (map[string]string, error) {
		parsed, parseErr = a.parser.Parse(ctx, url)
		if parseErr != nil {
			return nil, parseErr
		}
		return map[string]string{"total_items": strconv.Itoa(parsed.TotalItems)}, nil
	})
	if parseErr != nil {
		result.Status = "error"
		result.Error = parseErr.Error()
		return result
	}
	result.ParsedData = parsed
	result.Metadata.TotalItems = parsed.TotalItems
	result.Metadata.CategoriesCount = len(parsed.Categories)
	result.Metadata.YouTubeVideosCount = len(parsed.Videos)

	a.span(ctx, traceID, "youtube_summary", func() (map[string]string, error) {
		result.YouTube = summarizeVideos(parsed.Videos)
		return map[string]string{"videos": strconv.Itoa(len(parsed.Videos))}, nil
	})

	if a.cfg.Analyze {
		a.span(ctx, traceID, "content_analyzer", func() (map[string]string, error) {
			text := ""
			if scrapeResult != nil {
				text = scrapeResult.TextContent
			} else if parsed.Scrape != nil {
				text = parsed.Scrape.TextContent
			}
			result.Analysis = analyzer.Analyze(text, analyzer.DefaultOptions())
			return map[string]string{"words": strconv.Itoa(result.Analysis.WordCount)}, nil
		})
	}

	a.span(ctx, traceID, "learning_guidance", func() (map[string]string, error) {
		result.Learning = buildGuidance(parsed)
		if a.planner != nil {
			if guidance, err := a.planner.Guidance(ctx, parsed); err != nil {
				a.logger.Warn("planner failed, keeping deterministic guidance", "error", err)
			} else if guidance != "" {
				result.Learning.Guidance = guidance
			}
		}
		return map[string]string{"paths": strconv.Itoa(len(result.Learning.Paths))}, nil
	})

	return result
}

// ExtractYouTube fetches url and reports the YouTube URLs its content
// references, without running the rest of the pipeline.
func (a *Agent) ExtractYouTube(ctx context.Context, url string) *models.YouTubeExtraction {
	start := time.Now()
	traceID := a.sink.StartTrace(ctx, "extract_youtube_urls", url)

	extraction := &models.YouTubeExtraction{Status: "success", URL: url}
	defer func() {
		extraction.ProcessingTime = time.Since(start).Round(time.Millisecond).String()
		a.sink.ConcludeTrace(ctx, traceID, extraction.Status)
	}()

	var content string
	var fetchErr error
	a.span(ctx, traceID, "fetch", func() (map[string]string, error) {
		body, _, err := a.fetcher.Get(ctx, url)
		if err != nil {
			fetchErr = err
			return nil, err
		}
		content = string(body)
		return map[string]string{"bytes": strconv.Itoa(len(body))}, nil
	})
	if fetchErr != nil {
		extraction.Status = "error"
		extraction.Error = fetchErr.Error()
		return extraction
	}

	a.span(ctx, traceID, "extract_youtube_urls", func() (map[string]string, error) {
		extraction.URLs = youtube.ExtractURLs(content, 0)
		extraction.VideoIDs = youtube.VideoIDs(extraction.URLs)
		extraction.URLCount = len(extraction.URLs)
		return map[string]string{"urls": strconv.Itoa(extraction.URLCount)}, nil
	})
	return extraction
}

// span is the single place tool spans are emitted from.
func (a *Agent) span(ctx context.Context, traceID, tool string, fn func() (map[string]string, error)) {
	started := time.Now()
	attrs, err := fn()
	s := tracing.Span{
		TraceID:   traceID,
		Tool:      tool,
		StartedAt: started,
		Duration:  time.Since(started),
		Attrs:     attrs,
	}
	if err != nil {
		s.Err = err.Error()
		a.logger.Warn("tool failed", "tool", tool, "error", err)
	}
	a.sink.AddToolSpan(ctx, s)
}

func summarizeScrape(s *models.ScrapeResult) *models.ScrapeSummary {
	if s == nil {
		return &models.ScrapeSummary{Status: "failed"}
	}
	return &models.ScrapeSummary{
		Status:        "success",
		TextLength:    len(s.TextContent),
		LinksCount:    len(s.Links),
		MetadataCount: len(s.Metadata),
	}
}

func summarizeVideos(videos []models.YouTubeVideo) *models.YouTubeSummary {
	summary := &models.YouTubeSummary{VideoCount: len(videos)}
	if len(videos) == 0 {
		return summary
	}

	totalSeconds := 0
	for _, v := range videos {
		summary.TotalViews += v.ViewCount
		totalSeconds += v.DurationSeconds
	}
	summary.AvgDurationMinutes = float64(totalSeconds) / float64(len(videos)) / 60

	head := videos
	if len(head) > maxSummaryVideos {
		head = head[:maxSummaryVideos]
	}
	summary.Videos = append([]models.YouTubeVideo(nil), head...)
	return summary
}

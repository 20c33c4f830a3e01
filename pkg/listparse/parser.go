// Package listparse is the composite awesome-list parser. One Parse
// call fetches a list page, extracts its metadata fields, scrapes its
// structure, and resolves referenced YouTube videos.
package listparse

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/fetcher"
	"github.com/dtnitsch/awesome-list-agent/pkg/listmeta"
	"github.com/dtnitsch/awesome-list-agent/pkg/scraper"
	"github.com/dtnitsch/awesome-list-agent/pkg/youtube"
)

// DefaultMaxVideos caps metadata lookups per parse.
const DefaultMaxVideos = 10

type Config struct {
	Fetcher      *fetcher.Fetcher
	VideoFetcher youtube.Fetcher
	MaxVideos    int
	ScrapeOpts   scraper.Options
	Logger       *slog.Logger
}

type Parser struct {
	fetcher      *fetcher.Fetcher
	videoFetcher youtube.Fetcher
	maxVideos    int
	scrapeOpts   scraper.Options
	logger       *slog.Logger
}

func New(cfg Config) *Parser {
	if cfg.Fetcher == nil {
		cfg.Fetcher = fetcher.New(fetcher.DefaultTimeout)
	}
	if cfg.VideoFetcher == nil {
		cfg.VideoFetcher = youtube.NewStubFetcher()
	}
	if cfg.MaxVideos <= 0 {
		cfg.MaxVideos = DefaultMaxVideos
	}
	if cfg.ScrapeOpts == (scraper.Options{}) {
		cfg.ScrapeOpts = scraper.DefaultOptions()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Parser{
		fetcher:      cfg.Fetcher,
		videoFetcher: cfg.VideoFetcher,
		maxVideos:    cfg.MaxVideos,
		scrapeOpts:   cfg.ScrapeOpts,
		logger:       cfg.Logger,
	}
}

// Parse builds the enriched metadata for the list at rawURL. Only the
// initial fetch is fatal. Field extraction always produces defaults,
// a failed scrape leaves the Scrape section nil, and each video lookup
// fails independently.
func (p *Parser) Parse(ctx context.Context, rawURL string) (*models.EnrichedListMetadata, error) {
	body, contentType, err := p.fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	content := string(body)

	enriched := &models.EnrichedListMetadata{}
	enriched.Topic, enriched.Description, enriched.Categories,
		enriched.TotalItems, enriched.Language = listmeta.Extract(content, rawURL)

	scrapeResult, err := scraper.ScrapeBody(rawURL, body, contentType, p.scrapeOpts)
	if err != nil {
		p.logger.Warn("scrape failed, continuing without structure", "url", rawURL, "error", err)
	} else {
		enriched.Scrape = scrapeResult
	}

	enriched.Videos = p.fetchVideos(ctx, collectVideoURLs(content, enriched.Scrape))

	enriched.ContextSummary = BuildContextSummary(&enriched.ListMetadata, enriched.Scrape, enriched.Videos)
	return enriched, nil
}

// collectVideoURLs merges YouTube video URLs found in the raw content
// with those found among scraped links, deduplicated by video ID.
func collectVideoURLs(content string, scrape *models.ScrapeResult) []string {
	urls := youtube.ExtractURLs(content, 0)
	if scrape != nil {
		for _, link := range scrape.Links {
			if youtube.IsVideoURL(link.URL) {
				urls = append(urls, link.URL)
			}
		}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, u := range urls {
		id, ok := youtube.VideoID(u)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, u)
	}
	return out
}

func (p *Parser) fetchVideos(ctx context.Context, urls []string) []models.YouTubeVideo {
	if len(urls) > p.maxVideos {
		urls = urls[:p.maxVideos]
	}
	var videos []models.YouTubeVideo
	for _, u := range urls {
		video, err := p.videoFetcher.Fetch(ctx, u)
		if err != nil {
			p.logger.Warn("video metadata lookup failed", "url", u, "error", err)
			continue
		}
		videos = append(videos, *video)
	}
	return videos
}

package youtube

import (
	"context"
	"fmt"

	"github.com/dtnitsch/awesome-list-agent/models"
)

// Fetcher resolves a video URL to its metadata.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (*models.YouTubeVideo, error)
}

// StubFetcher returns deterministic placeholder metadata keyed by the
// video ID. It stands in for the YouTube Data API so the rest of the
// pipeline, summaries, and learning-path synthesis stay testable
// offline.
type StubFetcher struct{}

func NewStubFetcher() *StubFetcher { return &StubFetcher{} }

func (s *StubFetcher) Fetch(ctx context.Context, videoURL string) (*models.YouTubeVideo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, ok := VideoID(videoURL)
	if !ok {
		return nil, models.NewToolError("youtube", "no video ID in URL %q", videoURL)
	}

	video := &models.YouTubeVideo{
		VideoID:         id,
		Title:           fmt.Sprintf("Sample YouTube Video - %s", id),
		Description:     "This is a sample video description for demonstration purposes.",
		Duration:        "PT10M30S",
		DurationSeconds: 630,
		ViewCount:       15000,
		LikeCount:       1200,
		CommentCount:    450,
		UploadDate:      "2024-01-15T10:30:00Z",
		ChannelName:     "Sample Channel",
		ChannelID:       "UC123456789",
		Tags:            []string{"sample", "video", "tutorial", "education"},
		Category:        "Education",
		ThumbnailURL:    fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id),
	}
	video.MetadataSummary = Summarize(video)
	return video, nil
}

// Summarize renders a one-line human summary of a video's metadata.
func Summarize(v *models.YouTubeVideo) string {
	minutes := v.DurationSeconds / 60
	seconds := v.DurationSeconds % 60
	return fmt.Sprintf("%s by %s (%dm%02ds, %d views, %d likes)",
		v.Title, v.ChannelName, minutes, seconds, v.ViewCount, v.LikeCount)
}

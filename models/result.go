package models

// AgentResult is the envelope every agent run returns. Status is
// "success" or "error"; an error run still carries URL, Error, and
// Metadata so callers always have a trace to follow.
type AgentResult struct {
	Status string `json:"status" yaml:"status"`
	URL    string `json:"url" yaml:"url"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`

	ParsedData *EnrichedListMetadata `json:"parsed_data,omitempty" yaml:"parsed_data,omitempty"`
	Scraping   *ScrapeSummary        `json:"scraping,omitempty" yaml:"scraping,omitempty"`
	YouTube    *YouTubeSummary       `json:"youtube_summary,omitempty" yaml:"youtube_summary,omitempty"`
	Learning   *LearningGuidance     `json:"learning_guidance,omitempty" yaml:"learning_guidance,omitempty"`
	Analysis   *ContentAnalysis      `json:"content_analysis,omitempty" yaml:"content_analysis,omitempty"`

	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// ScrapeSummary condenses a scrape for the top-level result. Status is
// "success" or "failed"; a failed scrape never fails the run.
type ScrapeSummary struct {
	Status        string `json:"status" yaml:"status"`
	TextLength    int    `json:"text_length" yaml:"text_length"`
	LinksCount    int    `json:"links_count" yaml:"links_count"`
	MetadataCount int    `json:"metadata_count" yaml:"metadata_count"`
}

// YouTubeSummary condenses the fetched video metadata. Videos holds at
// most the first five records.
type YouTubeSummary struct {
	VideoCount         int            `json:"video_count" yaml:"video_count"`
	Videos             []YouTubeVideo `json:"videos,omitempty" yaml:"videos,omitempty"`
	TotalViews         int            `json:"total_views" yaml:"total_views"`
	AvgDurationMinutes float64        `json:"avg_duration_minutes" yaml:"avg_duration_minutes"`
}

type ResultMetadata struct {
	TotalItems         int    `json:"total_items" yaml:"total_items"`
	CategoriesCount    int    `json:"categories_count" yaml:"categories_count"`
	YouTubeVideosCount int    `json:"youtube_videos_count" yaml:"youtube_videos_count"`
	ProcessingTime     string `json:"processing_time" yaml:"processing_time"`
	TraceID            string `json:"trace_id,omitempty" yaml:"trace_id,omitempty"`
}

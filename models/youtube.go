package models

// YouTubeVideo is the metadata record for one video. VideoID is the
// identity key; a run deduplicates by it before fetching.
type YouTubeVideo struct {
	VideoID     string `json:"video_id" yaml:"video_id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Duration is the ISO-8601 form (PT10M30S); DurationSeconds the
	// flattened integer.
	Duration        string `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationSeconds int    `json:"duration_seconds" yaml:"duration_seconds"`

	ViewCount    int `json:"view_count" yaml:"view_count"`
	LikeCount    int `json:"like_count" yaml:"like_count"`
	CommentCount int `json:"comment_count" yaml:"comment_count"`

	UploadDate  string `json:"upload_date,omitempty" yaml:"upload_date,omitempty"`
	ChannelName string `json:"channel_name,omitempty" yaml:"channel_name,omitempty"`
	ChannelID   string `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`

	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`

	MetadataSummary string `json:"metadata_summary,omitempty" yaml:"metadata_summary,omitempty"`
}

// YouTubeExtraction is the payload of the standalone markdown
// YouTube-extraction operation.
type YouTubeExtraction struct {
	Status   string   `json:"status" yaml:"status"`
	URL      string   `json:"url" yaml:"url"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	URLs     []string `json:"youtube_urls" yaml:"youtube_urls"`
	VideoIDs []string `json:"video_ids,omitempty" yaml:"video_ids,omitempty"`
	URLCount int      `json:"url_count" yaml:"url_count"`

	ProcessingTime string `json:"processing_time,omitempty" yaml:"processing_time,omitempty"`
}

package models

// ListMetadata is the normalized record extracted from one Awesome List
// page. It is built once per parse and never mutated afterwards.
type ListMetadata struct {
	Topic       string   `json:"topic" yaml:"topic"`
	Description string   `json:"description" yaml:"description"`
	Categories  []string `json:"categories" yaml:"categories"`

	// TotalItems is max(markdown link count, HTML anchor count), so it
	// over-counts navigation links on rendered pages.
	TotalItems int `json:"total_items" yaml:"total_items"`

	// Language is a programming language from a fixed vocabulary, or
	// "General" when nothing matched.
	Language string `json:"language" yaml:"language"`

	ContextSummary string `json:"context_summary" yaml:"context_summary"`
}

// EnrichedListMetadata is ListMetadata plus the link-level scrape and the
// YouTube videos discovered during the same parse.
type EnrichedListMetadata struct {
	ListMetadata `yaml:",inline"`

	Scrape *ScrapeResult  `json:"scrape,omitempty" yaml:"scrape,omitempty"`
	Videos []YouTubeVideo `json:"youtube_metadata,omitempty" yaml:"youtube_metadata,omitempty"`
}

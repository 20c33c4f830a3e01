package models

// Link is one outbound anchor found on a scraped page.
type Link struct {
	URL   string `json:"url" yaml:"url"`
	Text  string `json:"text" yaml:"text"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Image is one image reference found on a scraped page.
type Image struct {
	Src   string `json:"src" yaml:"src"`
	Alt   string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// ScrapeResult holds everything extracted from a single URL fetch.
// It is produced per call and never persisted.
type ScrapeResult struct {
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title" yaml:"title"`
	TextContent string `json:"text_content,omitempty" yaml:"text_content,omitempty"`
	TextSummary string `json:"text_summary,omitempty" yaml:"text_summary,omitempty"`

	// Markdown is the readability-distilled page linearized into
	// markdown-like text for downstream consumers.
	Markdown string `json:"markdown,omitempty" yaml:"markdown,omitempty"`

	Links    []Link            `json:"links,omitempty" yaml:"links,omitempty"`
	Images   []Image           `json:"images,omitempty" yaml:"images,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	ContentType   string `json:"content_type" yaml:"content_type"`
	ContentLength int    `json:"content_length" yaml:"content_length"`

	ScrapingSummary string `json:"scraping_summary,omitempty" yaml:"scraping_summary,omitempty"`
}

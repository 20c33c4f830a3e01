package models

// ContentAnalysis is the full analysis record for a body of text. Each
// section pointer is nil when that pass was disabled.
type ContentAnalysis struct {
	Sentiment   *Sentiment        `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Topics      []Topic           `json:"topics,omitempty" yaml:"topics,omitempty"`
	Keywords    []Keyword         `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Entities    []Entity          `json:"entities,omitempty" yaml:"entities,omitempty"`
	Readability *Readability      `json:"readability,omitempty" yaml:"readability,omitempty"`
	Structure   *ContentStructure `json:"content_structure,omitempty" yaml:"content_structure,omitempty"`

	DetectedLanguage   string  `json:"detected_language,omitempty" yaml:"detected_language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	WordCount      int `json:"word_count" yaml:"word_count"`
	SentenceCount  int `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount int `json:"paragraph_count" yaml:"paragraph_count"`

	Summary string `json:"analysis_summary,omitempty" yaml:"analysis_summary,omitempty"`
}

// Sentiment classifies text as positive, negative, or neutral. Score
// is (positive - negative) / total words, in [-1, 1].
type Sentiment struct {
	Overall       string  `json:"overall" yaml:"overall"`
	Score         float64 `json:"score" yaml:"score"`
	PositiveWords int     `json:"positive_words" yaml:"positive_words"`
	NegativeWords int     `json:"negative_words" yaml:"negative_words"`
}

type Topic struct {
	Topic          string  `json:"topic" yaml:"topic"`
	Frequency      int     `json:"frequency" yaml:"frequency"`
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

type Keyword struct {
	Keyword    string  `json:"keyword" yaml:"keyword"`
	Frequency  int     `json:"frequency" yaml:"frequency"`
	TFIDFScore float64 `json:"tfidf_score" yaml:"tfidf_score"`
}

type Entity struct {
	Entity    string `json:"entity" yaml:"entity"`
	Type      string `json:"type" yaml:"type"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

// Readability carries six standard indices. All fields are zero when
// the text had no sentences or words.
type Readability struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog" yaml:"gunning_fog"`
	SMOGIndex          float64 `json:"smog_index" yaml:"smog_index"`
	ColemanLiau        float64 `json:"coleman_liau_index" yaml:"coleman_liau_index"`
	AutomatedIndex     float64 `json:"automated_readability_index" yaml:"automated_readability_index"`
}

type ContentStructure struct {
	HasHeadings           bool    `json:"has_headings" yaml:"has_headings"`
	HasLists              bool    `json:"has_lists" yaml:"has_lists"`
	HasLinks              bool    `json:"has_links" yaml:"has_links"`
	HasCodeBlocks         bool    `json:"has_code_blocks" yaml:"has_code_blocks"`
	AverageSentenceLength float64 `json:"average_sentence_length" yaml:"average_sentence_length"`
	AverageWordLength     float64 `json:"average_word_length" yaml:"average_word_length"`
}

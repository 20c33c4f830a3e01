// Package analyzer derives sentiment, topics, keywords, entities,
// readability, and structure signals from page text.
package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/awesome-list-agent/models"
)

// Options selects which analysis passes run. The zero value runs
// nothing; use DefaultOptions for the full pass.
type Options struct {
	Sentiment   bool
	Topics      bool
	Keywords    bool
	Entities    bool
	Readability bool
	Structure   bool
	Language    bool

	MaxTopics   int
	MaxKeywords int
}

func DefaultOptions() Options {
	return Options{
		Sentiment:   true,
		Topics:      true,
		Keywords:    true,
		Entities:    true,
		Readability: true,
		Structure:   true,
		Language:    true,
		MaxTopics:   10,
		MaxKeywords: 20,
	}
}

var (
	wordRe      = regexp.MustCompile(`[a-zA-Z]{3,}`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)

	entityEmailRe  = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.-]+\b`)
	entityURLRe    = regexp.MustCompile(`https?://[^\s<>"')]+`)
	entityProperRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)

	headingRe   = regexp.MustCompile(`(?mi)^#{1,6}\s|<h[1-6][\s>]`)
	listRe      = regexp.MustCompile(`(?mi)^\s*(?:[-*+]|\d+\.)\s|<[uo]l[\s>]`)
	linkRe      = regexp.MustCompile(`(?i)\[[^\]]*\]\([^)]+\)|<a\s[^>]*href=`)
	codeBlockRe = regexp.MustCompile("(?i)```|<(?:code|pre)[\\s>]")
)

// linguaLanguages bounds the detector to the languages awesome lists
// realistically appear in. Building the detector loads language models,
// so it is deferred until the first language pass.
var linguaLanguages = []lingua.Language{
	lingua.English, lingua.Spanish, lingua.French, lingua.German,
	lingua.Portuguese, lingua.Russian, lingua.Chinese, lingua.Japanese,
}

var (
	linguaOnce     sync.Once
	linguaDetector lingua.LanguageDetector
)

func detector() lingua.LanguageDetector {
	linguaOnce.Do(func() {
		linguaDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages...).
			Build()
	})
	return linguaDetector
}

// Analyze runs the selected passes over text. It never fails: empty
// or degenerate input yields zero-valued sections.
func Analyze(text string, opts Options) *models.ContentAnalysis {
	words := wordRe.FindAllString(text, -1)
	sentences := splitSentences(text)

	analysis := &models.ContentAnalysis{
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: countParagraphs(text),
	}

	if opts.Sentiment {
		analysis.Sentiment = analyzeSentiment(words)
	}
	if opts.Topics {
		analysis.Topics = extractTopics(words, opts.MaxTopics)
	}
	if opts.Keywords {
		analysis.Keywords = extractKeywords(words, opts.MaxKeywords)
	}
	if opts.Entities {
		analysis.Entities = extractEntities(text)
	}
	if opts.Readability {
		analysis.Readability = scoreReadability(words, len(sentences))
	}
	if opts.Structure {
		analysis.Structure = analyzeStructure(text, words, sentences)
	}
	if opts.Language && len(words) > 0 {
		if lang, ok := detector().DetectLanguageOf(text); ok {
			analysis.DetectedLanguage = lang.String()
			analysis.LanguageConfidence = detector().ComputeLanguageConfidence(text, lang)
		}
	}

	analysis.Summary = buildSummary(analysis)
	return analysis
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func countParagraphs(text string) int {
	n := 0
	for _, p := range paragraphRe.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

func contentWords(words []string) map[string]int {
	freq := make(map[string]int)
	for _, w := range words {
		w = strings.ToLower(w)
		if IsStopword(w) {
			continue
		}
		freq[w]++
	}
	return freq
}

type wordCount struct {
	word  string
	count int
}

func topWords(freq map[string]int, n int) []wordCount {
	counts := make([]wordCount, 0, len(freq))
	for w, c := range freq {
		counts = append(counts, wordCount{w, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func extractTopics(words []string, max int) []models.Topic {
	if max <= 0 {
		max = 10
	}
	freq := contentWords(words)
	total := 0
	for _, c := range freq {
		total += c
	}
	var topics []models.Topic
	for _, wc := range topWords(freq, max) {
		topics = append(topics, models.Topic{
			Topic:          wc.word,
			Frequency:      wc.count,
			RelevanceScore: float64(wc.count) / float64(total),
		})
	}
	return topics
}

// extractKeywords ranks content words by a tf-idf style score. With a
// single document there is no corpus frequency, so 1/(freq+1) stands
// in for inverse document frequency.
func extractKeywords(words []string, max int) []models.Keyword {
	if max <= 0 {
		max = 20
	}
	freq := contentWords(words)
	var keywords []models.Keyword
	for _, wc := range topWords(freq, max) {
		tf := float64(wc.count) / float64(len(words))
		keywords = append(keywords, models.Keyword{
			Keyword:    wc.word,
			Frequency:  wc.count,
			TFIDFScore: tf * (1.0 / float64(wc.count+1)),
		})
	}
	return keywords
}

func extractEntities(text string) []models.Entity {
	type key struct{ entity, typ string }
	freq := make(map[key]int)
	var order []key

	record := func(entity, typ string) {
		k := key{entity, typ}
		if freq[k] == 0 {
			order = append(order, k)
		}
		freq[k]++
	}
	for _, m := range entityEmailRe.FindAllString(text, -1) {
		record(m, "email")
	}
	for _, m := range entityURLRe.FindAllString(text, -1) {
		record(m, "url")
	}
	for _, m := range entityProperRe.FindAllString(text, -1) {
		record(m, "proper_noun")
	}

	entities := make([]models.Entity, 0, len(order))
	for _, k := range order {
		entities = append(entities, models.Entity{Entity: k.entity, Type: k.typ, Frequency: freq[k]})
	}
	return entities
}

func analyzeStructure(text string, words, sentences []string) *models.ContentStructure {
	s := &models.ContentStructure{
		HasHeadings:   headingRe.MatchString(text),
		HasLists:      listRe.MatchString(text),
		HasLinks:      linkRe.MatchString(text),
		HasCodeBlocks: codeBlockRe.MatchString(text),
	}
	if len(sentences) > 0 {
		s.AverageSentenceLength = float64(len(words)) / float64(len(sentences))
	}
	if len(words) > 0 {
		chars := 0
		for _, w := range words {
			chars += len(w)
		}
		s.AverageWordLength = float64(chars) / float64(len(words))
	}
	return s
}

func buildSummary(a *models.ContentAnalysis) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Content has %d words across %d sentences.", a.WordCount, a.SentenceCount))
	if a.Sentiment != nil {
		parts = append(parts, fmt.Sprintf("Overall sentiment is %s (score %.2f).", a.Sentiment.Overall, a.Sentiment.Score))
	}
	if len(a.Topics) > 0 {
		names := make([]string, 0, 3)
		for i, t := range a.Topics {
			if i == 3 {
				break
			}
			names = append(names, t.Topic)
		}
		parts = append(parts, fmt.Sprintf("Main topics: %s.", strings.Join(names, ", ")))
	}
	if a.Readability != nil && a.SentenceCount > 0 {
		parts = append(parts, fmt.Sprintf("Flesch reading ease is %.1f.", a.Readability.FleschReadingEase))
	}
	if a.DetectedLanguage != "" {
		parts = append(parts, fmt.Sprintf("Detected language: %s.", a.DetectedLanguage))
	}
	return strings.Join(parts, " ")
}

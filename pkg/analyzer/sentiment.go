package analyzer

import (
	"strings"

	"github.com/dtnitsch/awesome-list-agent/models"
)

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {}, "wonderful": {},
	"fantastic": {}, "awesome": {}, "brilliant": {}, "outstanding": {},
	"superb": {}, "perfect": {}, "best": {}, "love": {}, "like": {},
	"enjoy": {}, "happy": {}, "pleased": {}, "satisfied": {},
	"impressive": {}, "remarkable": {}, "helpful": {}, "useful": {},
	"powerful": {}, "elegant": {}, "simple": {}, "fast": {}, "reliable": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "hate": {},
	"dislike": {}, "angry": {}, "sad": {}, "disappointed": {},
	"frustrated": {}, "annoying": {}, "worst": {}, "poor": {},
	"useless": {}, "broken": {}, "failed": {}, "wrong": {}, "problem": {},
	"slow": {}, "buggy": {}, "deprecated": {}, "abandoned": {},
	"unmaintained": {}, "confusing": {}, "difficult": {},
}

// sentimentThreshold separates the neutral band from positive and
// negative verdicts.
const sentimentThreshold = 0.05

// analyzeSentiment scores text against fixed positive and negative
// word sets. Score is (positive - negative) / total words; text with
// no words is neutral with score zero.
func analyzeSentiment(words []string) *models.Sentiment {
	s := &models.Sentiment{Overall: "neutral"}
	if len(words) == 0 {
		return s
	}

	for _, w := range words {
		w = strings.ToLower(w)
		if _, ok := positiveWords[w]; ok {
			s.PositiveWords++
		}
		if _, ok := negativeWords[w]; ok {
			s.NegativeWords++
		}
	}

	s.Score = float64(s.PositiveWords-s.NegativeWords) / float64(len(words))
	switch {
	case s.Score > sentimentThreshold:
		s.Overall = "positive"
	case s.Score < -sentimentThreshold:
		s.Overall = "negative"
	}
	return s
}

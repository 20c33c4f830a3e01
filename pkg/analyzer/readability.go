package analyzer

import (
	"math"
	"strings"
	"unicode"

	"github.com/dtnitsch/awesome-list-agent/models"
)

// countSyllables estimates syllables as the number of vowel groups,
// dropping one for a trailing silent e, with a floor of one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scoreReadability computes six standard readability indices over the
// tokenized text. All indices are zero when there are no sentences or
// no words, so empty input never divides by zero.
func scoreReadability(words []string, sentenceCount int) *models.Readability {
	r := &models.Readability{}
	if sentenceCount == 0 || len(words) == 0 {
		return r
	}

	totalSyllables := 0
	complexWords := 0
	letters := 0
	for _, w := range words {
		syl := countSyllables(w)
		totalSyllables += syl
		if syl > 2 {
			complexWords++
		}
		for _, c := range w {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				letters++
			}
		}
	}

	wordCount := float64(len(words))
	sentences := float64(sentenceCount)
	wordsPerSentence := wordCount / sentences
	syllablesPerWord := float64(totalSyllables) / wordCount
	complexFrac := float64(complexWords) / wordCount

	// Grade-level formulas go negative on very simple text; every
	// index is floored at zero.
	r.FleschReadingEase = clamp(206.835-1.015*wordsPerSentence-84.6*syllablesPerWord, 0, 100)
	r.FleschKincaidGrade = math.Max(0, 0.39*wordsPerSentence+11.8*syllablesPerWord-15.59)
	r.GunningFog = math.Max(0, 0.4*(wordsPerSentence+100*complexFrac))
	r.SMOGIndex = math.Max(0, 1.043*math.Sqrt(float64(complexWords)*30/sentences)+3.1291)

	lettersPer100 := float64(letters) / wordCount * 100
	sentencesPer100 := sentences / wordCount * 100
	r.ColemanLiau = math.Max(0, 0.0588*lettersPer100-0.296*sentencesPer100-15.8)

	r.AutomatedIndex = math.Max(0, 4.71*(float64(letters)/wordCount)+0.5*wordsPerSentence-21.43)
	return r
}

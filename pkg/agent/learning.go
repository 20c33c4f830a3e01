package agent

import (
	"fmt"
	"math"
	"strings"

	"github.com/dtnitsch/awesome-list-agent/models"
)

// weeklyStudyHours is the assumed study budget behind every duration
// estimate.
const weeklyStudyHours = 10.0

const (
	hoursPerResource = 0.5
	hoursPerVideo    = 0.25
)

// difficultyScore rates a list by volume and breadth. Items and
// categories dominate; a specialized language and a meaningful video
// count each add one.
func difficultyScore(meta *models.EnrichedListMetadata) int {
	score := 0
	switch {
	case meta.TotalItems > 100:
		score += 2
	case meta.TotalItems > 50:
		score++
	}
	switch {
	case len(meta.Categories) > 10:
		score += 2
	case len(meta.Categories) > 5:
		score++
	}
	if meta.Language != "" && meta.Language != "General" {
		score++
	}
	if len(meta.Videos) > 5 {
		score++
	}
	return score
}

func difficultyLevel(score int) string {
	switch {
	case score >= 4:
		return "Advanced"
	case score >= 2:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func difficultyMultiplier(level string) float64 {
	switch level {
	case "Advanced":
		return 1.5
	case "Beginner":
		return 0.8
	default:
		return 1.0
	}
}

func estimateTime(meta *models.EnrichedListMetadata, level string) *models.TimeCommitment {
	total := (hoursPerResource*float64(meta.TotalItems) + hoursPerVideo*float64(len(meta.Videos))) *
		difficultyMultiplier(level)
	total = math.Round(total*10) / 10

	weeks := math.Round(total/weeklyStudyHours*10) / 10
	return &models.TimeCommitment{
		TotalHours:     total,
		WeeklyHours:    weeklyStudyHours,
		EstimatedWeeks: weeks,
		Duration:       durationBucket(weeks),
	}
}

func durationBucket(weeks float64) string {
	switch {
	case weeks < 1:
		return "Less than 1 week"
	case weeks <= 2:
		return "1-2 weeks"
	case weeks <= 4:
		return "2-4 weeks"
	case weeks <= 8:
		return "1-2 months"
	case weeks <= 12:
		return "2-3 months"
	default:
		return "3+ months"
	}
}

// buildGuidance synthesizes learning paths and a study plan from
// parsed list metadata. It is fully deterministic.
func buildGuidance(meta *models.EnrichedListMetadata) *models.LearningGuidance {
	level := difficultyLevel(difficultyScore(meta))
	commitment := estimateTime(meta, level)
	topic := meta.Topic

	quickResources := meta.TotalItems
	if quickResources > 10 {
		quickResources = 10
	}

	paths := []models.LearningPath{
		{
			Name:           fmt.Sprintf("Quick Start with %s", topic),
			Difficulty:     "Beginner",
			EstimatedHours: math.Round(float64(quickResources)*hoursPerResource*10) / 10,
			ResourcesCount: quickResources,
			Prerequisites:  []string{"Basic programming knowledge"},
			LearningObjectives: []string{
				fmt.Sprintf("Understand what %s covers", topic),
				"Try a handful of the most popular resources",
			},
		},
		{
			Name:           fmt.Sprintf("Comprehensive %s Path", topic),
			Difficulty:     level,
			EstimatedHours: commitment.TotalHours,
			ResourcesCount: meta.TotalItems,
			Prerequisites:  prerequisites(level),
			LearningObjectives: []string{
				fmt.Sprintf("Work through the full %s list", topic),
				"Build familiarity with every major category",
			},
		},
	}

	if len(meta.Videos) > 0 {
		paths = append(paths, models.LearningPath{
			Name:           "Video-First Introduction",
			Difficulty:     "Beginner",
			EstimatedHours: math.Round(float64(len(meta.Videos))*hoursPerVideo*10) / 10,
			ResourcesCount: len(meta.Videos),
			LearningObjectives: []string{
				"Watch the referenced videos before reading",
				"Map video material back to list categories",
			},
		})
	}

	return &models.LearningGuidance{
		Paths:          paths,
		Guidance:       guidanceText(topic, level, commitment, meta),
		TimeCommitment: commitment,
	}
}

func prerequisites(level string) []string {
	switch level {
	case "Advanced":
		return []string{"Solid programming experience", "Familiarity with the ecosystem"}
	case "Intermediate":
		return []string{"Basic programming knowledge", "Comfort reading documentation"}
	default:
		return []string{"Curiosity"}
	}
}

func guidanceText(topic, level string, commitment *models.TimeCommitment, meta *models.EnrichedListMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This %s list on %s has %d resources", strings.ToLower(level), topic, meta.TotalItems)
	if len(meta.Categories) > 0 {
		fmt.Fprintf(&b, " across %d categories", len(meta.Categories))
	}
	fmt.Fprintf(&b, ". At %.0f hours per week, expect roughly %s of study (%.1f hours total).",
		commitment.WeeklyHours, strings.ToLower(commitment.Duration), commitment.TotalHours)
	if len(meta.Videos) > 0 {
		fmt.Fprintf(&b, " Start with the %d referenced videos for orientation.", len(meta.Videos))
	}
	return b.String()
}

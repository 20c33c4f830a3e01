package listparse

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/awesome-list-agent/models"
	"github.com/dtnitsch/awesome-list-agent/pkg/listmeta"
)

// BuildContextSummary renders a deterministic prose summary of a
// parsed list, suitable as grounding context for a language model.
func BuildContextSummary(meta *models.ListMetadata, scrape *models.ScrapeResult, videos []models.YouTubeVideo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "This is an awesome list about %s.", meta.Topic)
	if meta.Description != "" && meta.Description != listmeta.DefaultDescription {
		fmt.Fprintf(&b, " %s", strings.TrimSuffix(meta.Description, ".")+".")
	}
	if meta.TotalItems > 0 {
		fmt.Fprintf(&b, " It contains %d items", meta.TotalItems)
		if len(meta.Categories) > 0 {
			fmt.Fprintf(&b, " across %d categories", len(meta.Categories))
			names := meta.Categories
			if len(names) > 3 {
				names = names[:3]
			}
			fmt.Fprintf(&b, ", including %s", strings.Join(names, ", "))
		}
		b.WriteString(".")
	}
	if meta.Language != "" && meta.Language != listmeta.DefaultLanguage {
		fmt.Fprintf(&b, " The primary language is %s.", meta.Language)
	}

	if scrape != nil {
		fmt.Fprintf(&b, " The page holds %d outbound links.", len(scrape.Links))
	}

	if len(videos) > 0 {
		totalViews := 0
		totalSeconds := 0
		for _, v := range videos {
			totalViews += v.ViewCount
			totalSeconds += v.DurationSeconds
		}
		avgMinutes := float64(totalSeconds) / float64(len(videos)) / 60
		fmt.Fprintf(&b, " It references %d YouTube videos with %d total views and an average duration of %.1f minutes.",
			len(videos), totalViews, avgMinutes)
	}

	return b.String()
}

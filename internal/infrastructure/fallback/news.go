package fallback

import (
	"time"

	"marketdata-service/internal/domain"
)

// News returns the placeholder articles served when no feed can be read.
func News(now time.Time) []domain.Article {
	return []domain.Article{
		{
			ID:          "fallback-1",
			Title:       "Markets Update: Trading Activity Remains Strong",
			Description: "Financial markets continue to show resilience amid economic uncertainty.",
			Content:     "Financial markets continue to show resilience amid economic uncertainty. Investors are closely monitoring central bank policies and corporate earnings reports.",
			Source:      "Market News",
			Author:      "Editorial Team",
			URL:         "#",
			PublishedAt: now,
			Category:    "Markets",
			Fallback:    true,
		},
		{
			ID:          "fallback-2",
			Title:       "Cryptocurrency Market Analysis",
			Description: "Digital assets show mixed performance as regulatory clarity improves.",
			Content:     "Digital assets show mixed performance as regulatory clarity improves across major markets.",
			Source:      "Crypto News",
			Author:      "Editorial Team",
			URL:         "#",
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    "Crypto",
			Fallback:    true,
		},
		{
			ID:          "fallback-3",
			Title:       "Economic Indicators Point to Steady Growth",
			Description: "Latest data suggests continued economic expansion.",
			Content:     "Latest economic data suggests continued expansion with moderate inflation.",
			Source:      "Economic Times",
			Author:      "Editorial Team",
			URL:         "#",
			PublishedAt: now.Add(-4 * time.Hour),
			Category:    "Economy",
			Fallback:    true,
		},
	}
}

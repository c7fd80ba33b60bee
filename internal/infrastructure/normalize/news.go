package normalize

import (
	"net/url"
	"strings"
	"time"

	"marketdata-service/internal/domain"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// FeedItems maps parsed feed items to articles. now stands in for a missing
// publication date.
func FeedItems(feed *gofeed.Feed, feedURL string, now time.Time) []domain.Article {
	if feed == nil {
		return nil
	}
	source := feed.Title
	if source == "" {
		source = extractDomain(feedURL)
	}
	out := make([]domain.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		desc := firstNonEmpty(it.Description, it.Content)
		a := domain.Article{
			ID:          uuid.NewString(),
			Title:       firstNonEmpty(it.Title, "Untitled"),
			Description: desc,
			Content:     firstNonEmpty(it.Content, it.Description),
			Source:      source,
			Author:      firstNonEmpty(author(it), "Staff Writer"),
			URL:         firstNonEmpty(it.Link, "#"),
			Image:       image(it),
			PublishedAt: now,
			Category:    Categorize(it.Title + " " + desc),
		}
		switch {
		case it.PublishedParsed != nil:
			a.PublishedAt = it.PublishedParsed.UTC()
		case it.UpdatedParsed != nil:
			a.PublishedAt = it.UpdatedParsed.UTC()
		}
		out = append(out, a)
	}
	return out
}

var categories = []struct {
	name     string
	keywords []string
}{
	{"Crypto", []string{"bitcoin", "crypto", "ethereum", "blockchain"}},
	{"Stocks", []string{"stock", "nasdaq", "s&p", "dow"}},
	{"Commodities", []string{"oil", "gold", "commodity", "crude"}},
	{"Economy", []string{"fed", "inflation", "gdp", "economy"}},
	{"Global", []string{"europe", "asia", "global", "china"}},
}

// Categorize assigns the first category whose keywords appear in text.
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return "Markets"
}

func author(it *gofeed.Item) string {
	if it.Author != nil && it.Author.Name != "" {
		return it.Author.Name
	}
	for _, p := range it.Authors {
		if p != nil && p.Name != "" {
			return p.Name
		}
	}
	return ""
}

func image(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, e := range it.Enclosures {
		if e != nil && e.URL != "" {
			return e.URL
		}
	}
	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	return ""
}

func extractDomain(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Hostname() == "" {
		return "News"
	}
	host := strings.Replace(u.Hostname(), "www.", "", 1)
	host = strings.Replace(host, ".com", "", 1)
	return strings.ToUpper(host)
}

package news

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/cache"
	"marketdata-service/internal/infrastructure/fallback"
	"marketdata-service/internal/infrastructure/logx"
	"marketdata-service/internal/infrastructure/normalize"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultLimit = 20

// Feeds lists the feed URLs read for each category.
var Feeds = map[domain.NewsCategory][]string{
	domain.NewsAll: {
		"https://feeds.bloomberg.com/markets/news.rss",
		"https://www.cnbc.com/id/100003114/device/rss/rss.html",
		"https://www.marketwatch.com/rss/topstories",
		"https://www.coindesk.com/arc/outboundfeeds/rss/",
		"https://search.cnbc.com/rs/search/combinedcms/view.xml?partnerId=wrss01&id=10000664",
	},
	domain.NewsStocks: {
		"https://feeds.bloomberg.com/markets/news.rss",
		"https://www.marketwatch.com/rss/topstories",
		"https://www.cnbc.com/id/100727362/device/rss/rss.html",
	},
	domain.NewsCrypto: {
		"https://www.coindesk.com/arc/outboundfeeds/rss/",
		"https://cointelegraph.com/rss",
		"https://decrypt.co/feed",
	},
	domain.NewsEconomy: {
		"https://search.cnbc.com/rs/search/combinedcms/view.xml?partnerId=wrss01&id=10000664",
		"https://feeds.bloomberg.com/economics/news.rss",
	},
}

type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error)
}

type TTLs struct {
	Articles time.Duration
	Fallback time.Duration
}

var DefaultTTLs = TTLs{Articles: 300 * time.Second, Fallback: 300 * time.Second}

// Service merges several feeds per category into one newest-first list.
type Service struct {
	fetcher Fetcher
	cache   *cache.Loader
	feeds   map[domain.NewsCategory][]string
	ttl     TTLs
	clock   application.Clock
	log     *zap.Logger
}

var _ application.NewsSource = (*Service)(nil)

type Option func(*Service)

func WithClock(c application.Clock) Option { return func(s *Service) { s.clock = c } }
func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = l } }
func WithTTLs(t TTLs) Option { return func(s *Service) { s.ttl = t } }
func WithFeeds(f map[domain.NewsCategory][]string) Option { return func(s *Service) { s.feeds = f } }

func New(f Fetcher, loader *cache.Loader, opts ...Option) *Service {
	s := &Service{fetcher: f, cache: loader, feeds: Feeds, ttl: DefaultTTLs}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = application.RealClock{}
	}
	s.log = logx.OrNop(s.log).With(zap.String("provider", "rss"))
	return s
}

// Articles returns up to limit articles for category. Unknown categories
// read as all. A feed that fails contributes nothing; when no feed yields
// anything the placeholder articles are returned.
func (s *Service) Articles(ctx context.Context, category domain.NewsCategory, limit int) ([]domain.Article, error) {
	urls, ok := s.feeds[category]
	if !ok {
		category = domain.NewsAll
		urls = s.feeds[domain.NewsAll]
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	key := fmt.Sprintf("news:%s:%d", category, limit)
	if arts, ok := cache.Load[[]domain.Article](ctx, s.cache.Store(), key); ok {
		return arts, nil
	}

	arts := s.collect(ctx, urls)
	if len(arts) == 0 {
		s.log.Warn("no feed articles, serving placeholders", zap.String("category", string(category)))
		arts = fallback.News(s.clock.Now())
		cache.Save(ctx, s.cache.Store(), key, arts, s.ttl.Fallback)
		return arts, nil
	}
	sort.SliceStable(arts, func(i, j int) bool { return arts[i].PublishedAt.After(arts[j].PublishedAt) })
	arts = arts[:min(limit, len(arts))]
	cache.Save(ctx, s.cache.Store(), key, arts, s.ttl.Articles)
	return arts, nil
}

func (s *Service) collect(ctx context.Context, urls []string) []domain.Article {
	perFeed := make([][]domain.Article, len(urls))
	var g errgroup.Group
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			feed, err := s.fetcher.Fetch(ctx, u)
			if err != nil {
				s.log.Info("feed skipped", zap.String("url", u), zap.Error(err))
				return nil
			}
			perFeed[i] = normalize.FeedItems(feed, u, s.clock.Now())
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Article
	for _, arts := range perFeed {
		out = append(out, arts...)
	}
	return out
}

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"saham-radar/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const currentNewsCacheKey = "news:current"

type FeedReader interface {
	FetchAll(ctx context.Context, sources []domain.FeedSource) []domain.RawEntry
}

// Notifier delivers one rendered message to the configured destination.
type Notifier interface {
	Broadcast(ctx context.Context, text string) error
}

// SendPacer spaces out consecutive notifier sends.
type SendPacer interface {
	Wait(ctx context.Context) error
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type Config struct {
	Sources  []domain.FeedSource
	Tickers  []string
	CacheTTL time.Duration
}

// Service composes fetch, match, score and dedup into the two pipeline
// entry points: on-demand current news and the scheduled broadcast cycle.
type Service struct {
	tracer   trace.Tracer
	feeds    FeedReader
	scorer   *Scorer
	tracker  *DeliveredTracker
	notifier Notifier
	pacer    SendPacer
	redis    RedisClient
	cfg      Config
}

func NewService(
	tracer trace.Tracer,
	feeds FeedReader,
	scorer *Scorer,
	tracker *DeliveredTracker,
	notifier Notifier,
	pacer SendPacer,
	redisClient RedisClient,
	cfg Config,
) *Service {
	if scorer == nil {
		scorer = NewScorer(ScorerConfig{})
	}
	if tracker == nil {
		tracker = NewDeliveredTracker()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 60 * time.Second
	}
	return &Service{
		tracer:   tracer,
		feeds:    feeds,
		scorer:   scorer,
		tracker:  tracker,
		notifier: notifier,
		pacer:    pacer,
		redis:    redisClient,
		cfg:      cfg,
	}
}

// Tickers returns the configured watch-list.
func (s *Service) Tickers() []string {
	return s.cfg.Tickers
}

// GetCurrentNews runs fetch, match and score against the current feed
// state. No dedup filtering: on-demand queries always reflect what the
// feeds serve right now. A short-TTL redis cache absorbs repeated
// on-demand calls; the scheduled cycle never reads it.
func (s *Service) GetCurrentNews(ctx context.Context) ([]domain.Article, error) {
	ctx, span := s.tracer.Start(ctx, "news-service.get-current-news")
	defer span.End()

	if s.redis != nil {
		if cached := s.getCachedNews(ctx); cached != nil {
			return cached, nil
		}
	}

	articles := s.fetchScored(ctx)

	if s.redis != nil {
		if err := s.setCachedNews(ctx, articles); err != nil {
			log.Printf("redis news cache write error: %v", err)
		}
	}
	return articles, nil
}

// RunBroadcastCycle fetches fresh feed state, keeps only articles not yet
// delivered in this process lifetime and pushes each one to the notifier
// with paced sends. A selected article counts as delivered even when its
// send fails; there is no retry queue.
func (s *Service) RunBroadcastCycle(ctx context.Context) (domain.BroadcastRunResult, error) {
	ctx, span := s.tracer.Start(ctx, "news-service.run-broadcast-cycle")
	defer span.End()

	result := domain.BroadcastRunResult{}

	entries := s.feeds.FetchAll(ctx, s.cfg.Sources)
	result.EntriesFetched = len(entries)

	matched := MatchTickers(entries, s.cfg.Tickers)
	result.ArticlesMatched = len(matched)

	scored := make([]domain.Article, 0, len(matched))
	for _, article := range matched {
		scored = append(scored, s.scorer.ScoreArticle(article))
	}

	fresh := s.tracker.FilterUnseen(scored)
	result.NewArticles = len(fresh)

	if s.notifier == nil {
		if len(fresh) > 0 {
			log.Printf("no notifier configured, dropping %d new articles", len(fresh))
		}
		return result, nil
	}

	for _, article := range fresh {
		if s.pacer != nil {
			if err := s.pacer.Wait(ctx); err != nil {
				return result, fmt.Errorf("broadcast pacing interrupted: %w", err)
			}
		}
		if err := s.notifier.Broadcast(ctx, FormatBroadcast(article)); err != nil {
			// The article stays marked delivered; only the send is lost.
			result.Errors = append(result.Errors, fmt.Sprintf("send:%s:%s: %v", article.Source, article.MatchedTicker, err))
			log.Printf("broadcast send failed for %q: %v", article.Title, err)
			continue
		}
		result.MessagesSent++
	}
	return result, nil
}

func (s *Service) fetchScored(ctx context.Context) []domain.Article {
	entries := s.feeds.FetchAll(ctx, s.cfg.Sources)
	matched := MatchTickers(entries, s.cfg.Tickers)

	articles := make([]domain.Article, 0, len(matched))
	for _, article := range matched {
		articles = append(articles, s.scorer.ScoreArticle(article))
	}
	return articles
}

func (s *Service) getCachedNews(ctx context.Context) []domain.Article {
	raw, err := s.redis.Get(ctx, currentNewsCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis news cache read error: %v", err)
		}
		return nil
	}
	var articles []domain.Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		log.Printf("redis news cache decode error: %v", err)
		return nil
	}
	return articles
}

func (s *Service) setCachedNews(ctx context.Context, articles []domain.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, currentNewsCacheKey, data, s.cfg.CacheTTL).Err()
}

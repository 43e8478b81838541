package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"saham-radar/internal/domain"
)

type Config struct {
	TelegramBotToken string
	TelegramChatID   int64
	RedisURL         string

	FeedSources     []domain.FeedSource
	WatchedTickers  []string
	PollSecs        int
	FirstDelaySecs  int
	FeedTimeoutSecs int
	FeedItemLimit   int
	SummaryMaxChars int

	PositiveThreshold float64
	NegativeThreshold float64
	PositiveKeywords  []string
	NegativeKeywords  []string

	NewsTopK          int
	SendDelayMillis   int
	CurrentCacheSecs  int
}

// Defaults mirror the IDX watch-list and Indonesian news feeds the bot was
// built around. Everything is overridable through the environment.
var (
	defaultTickers = []string{"BBCA", "BMRI", "ASII", "UNVR", "TLKM"}

	defaultFeeds = []domain.FeedSource{
		{Name: "CNBC Indonesia", URL: "https://www.cnbcindonesia.com/feed"},
		{Name: "CNN Indonesia", URL: "https://www.cnnindonesia.com/feed"},
		{Name: "IDX", URL: "https://www.idx.co.id/feed"},
	}

	defaultPositiveKeywords = []string{
		"naik", "meningkat", "bagus", "profit", "untung", "strong",
		"gain", "rise", "bullish", "buy", "rally", "surge", "jump",
	}

	defaultNegativeKeywords = []string{
		"turun", "menurun", "rugi", "loss", "bearish", "sell",
		"decline", "drop", "crash", "negative", "weak", "fall",
	}
)

func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, news cache disabled")
	}

	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = n
		} else {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID %q: %v", v, err)
		}
	} else {
		log.Println("Warning: TELEGRAM_CHAT_ID not set")
	}

	cfg.FeedSources = parseFeedTable(os.Getenv("NEWS_FEEDS"))
	if len(cfg.FeedSources) == 0 {
		cfg.FeedSources = defaultFeeds
	}

	cfg.WatchedTickers = parseUpperList(os.Getenv("WATCHED_TICKERS"))
	if len(cfg.WatchedTickers) == 0 {
		cfg.WatchedTickers = defaultTickers
	}

	cfg.PollSecs = intEnv("NEWS_POLL_SECS", 300)
	cfg.FirstDelaySecs = intEnv("NEWS_FIRST_DELAY_SECS", 10)
	cfg.FeedTimeoutSecs = intEnv("FEED_TIMEOUT_SECS", 15)
	cfg.FeedItemLimit = intEnv("FEED_ITEM_LIMIT", 10)
	cfg.SummaryMaxChars = intEnv("SUMMARY_MAX_CHARS", 200)
	cfg.NewsTopK = intEnv("NEWS_TOP_K", 5)
	cfg.SendDelayMillis = intEnv("SEND_DELAY_MILLIS", 500)
	cfg.CurrentCacheSecs = intEnv("NEWS_CACHE_SECS", 60)

	cfg.PositiveThreshold = floatEnv("SENTIMENT_POSITIVE_THRESHOLD", 0.1)
	cfg.NegativeThreshold = floatEnv("SENTIMENT_NEGATIVE_THRESHOLD", -0.1)
	if cfg.NegativeThreshold > cfg.PositiveThreshold {
		log.Println("Warning: sentiment thresholds inverted, using defaults")
		cfg.PositiveThreshold = 0.1
		cfg.NegativeThreshold = -0.1
	}

	cfg.PositiveKeywords = parseLowerList(os.Getenv("SENTIMENT_POSITIVE_KEYWORDS"))
	if len(cfg.PositiveKeywords) == 0 {
		cfg.PositiveKeywords = defaultPositiveKeywords
	}
	cfg.NegativeKeywords = parseLowerList(os.Getenv("SENTIMENT_NEGATIVE_KEYWORDS"))
	if len(cfg.NegativeKeywords) == 0 {
		cfg.NegativeKeywords = defaultNegativeKeywords
	}

	return cfg
}

// parseFeedTable reads "Name=URL;Name=URL" pairs.
func parseFeedTable(v string) []domain.FeedSource {
	var sources []domain.FeedSource
	for _, pair := range strings.Split(v, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, url, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			log.Printf("Warning: skipping malformed feed entry %q", pair)
			continue
		}
		sources = append(sources, domain.FeedSource{Name: name, URL: url})
	}
	return sources
}

func parseUpperList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.ToUpper(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseLowerList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func intEnv(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= -1 && n <= 1 {
			return n
		}
		log.Printf("Warning: invalid %s=%q, using %g", key, v, fallback)
	}
	return fallback
}

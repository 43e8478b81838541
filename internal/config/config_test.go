package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("NEWS_FEEDS", "")
	t.Setenv("WATCHED_TICKERS", "")
	t.Setenv("NEWS_POLL_SECS", "")
	t.Setenv("SENTIMENT_POSITIVE_KEYWORDS", "")
	t.Setenv("SENTIMENT_NEGATIVE_KEYWORDS", "")

	cfg := Load()

	if cfg.PollSecs != 300 {
		t.Fatalf("expected 300s poll default, got %d", cfg.PollSecs)
	}
	if cfg.FirstDelaySecs != 10 {
		t.Fatalf("expected 10s first delay default, got %d", cfg.FirstDelaySecs)
	}
	if len(cfg.FeedSources) != 3 || cfg.FeedSources[0].Name != "CNBC Indonesia" {
		t.Fatalf("unexpected feed defaults: %+v", cfg.FeedSources)
	}
	if len(cfg.WatchedTickers) != 5 || cfg.WatchedTickers[0] != "BBCA" {
		t.Fatalf("unexpected ticker defaults: %+v", cfg.WatchedTickers)
	}
	if cfg.PositiveThreshold != 0.1 || cfg.NegativeThreshold != -0.1 {
		t.Fatalf("unexpected thresholds: %g %g", cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
	if cfg.SummaryMaxChars != 200 {
		t.Fatalf("expected 200 char summary cap, got %d", cfg.SummaryMaxChars)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123456")
	t.Setenv("NEWS_FEEDS", "Kontan=https://kontan.example/rss; Bisnis=https://bisnis.example/feed")
	t.Setenv("WATCHED_TICKERS", "goto, bbri")
	t.Setenv("NEWS_POLL_SECS", "60")
	t.Setenv("SENTIMENT_POSITIVE_KEYWORDS", "Profit,Untung")

	cfg := Load()

	if cfg.TelegramChatID != -100123456 {
		t.Fatalf("unexpected chat id: %d", cfg.TelegramChatID)
	}
	if len(cfg.FeedSources) != 2 || cfg.FeedSources[1].URL != "https://bisnis.example/feed" {
		t.Fatalf("unexpected feeds: %+v", cfg.FeedSources)
	}
	if cfg.WatchedTickers[0] != "GOTO" || cfg.WatchedTickers[1] != "BBRI" {
		t.Fatalf("expected uppercased tickers, got %+v", cfg.WatchedTickers)
	}
	if cfg.PollSecs != 60 {
		t.Fatalf("unexpected poll interval: %d", cfg.PollSecs)
	}
	if len(cfg.PositiveKeywords) != 2 || cfg.PositiveKeywords[0] != "profit" {
		t.Fatalf("expected lowercased keywords, got %+v", cfg.PositiveKeywords)
	}
}

func TestLoadSkipsMalformedFeedEntries(t *testing.T) {
	t.Setenv("NEWS_FEEDS", "ok=https://ok.example/rss;;broken;=nourl")

	cfg := Load()

	if len(cfg.FeedSources) != 1 || cfg.FeedSources[0].Name != "ok" {
		t.Fatalf("expected single valid feed, got %+v", cfg.FeedSources)
	}
}

func TestLoadRejectsInvertedThresholds(t *testing.T) {
	t.Setenv("SENTIMENT_POSITIVE_THRESHOLD", "-0.5")
	t.Setenv("SENTIMENT_NEGATIVE_THRESHOLD", "0.5")

	cfg := Load()

	if cfg.PositiveThreshold != 0.1 || cfg.NegativeThreshold != -0.1 {
		t.Fatalf("expected default thresholds, got %g %g", cfg.PositiveThreshold, cfg.NegativeThreshold)
	}
}

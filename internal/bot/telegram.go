package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"saham-radar/internal/domain"
	"saham-radar/internal/news"

	tele "gopkg.in/telebot.v3"
)

const welcomeText = `🤖 *Stock News Radar*

News and sentiment monitoring for the IDX watch-list.

Commands:
/news - latest relevant articles
/stocks - watched tickers
/sentiment - sentiment overview
/help - this message`

// NewsReader is the slice of the pipeline the command surface needs.
type NewsReader interface {
	GetCurrentNews(ctx context.Context) ([]domain.Article, error)
	Tickers() []string
}

var newTeleBot = func(pref tele.Settings) (*tele.Bot, error) {
	return tele.NewBot(pref)
}

// Bot wraps the Telegram connection. It serves the on-demand commands and
// doubles as the broadcast notifier for the scheduled cycle.
type Bot struct {
	tele      *tele.Bot
	chatID    int64
	topK      int
	sendDelay time.Duration
}

func New(token string, chatID int64, topK int, sendDelay time.Duration) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}
	if topK <= 0 {
		topK = 5
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := newTeleBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Bot{tele: b, chatID: chatID, topK: topK, sendDelay: sendDelay}, nil
}

// Broadcast sends one rendered message to the configured broadcast chat.
// Implements the pipeline's notifier.
func (b *Bot) Broadcast(ctx context.Context, text string) error {
	_, err := b.tele.Send(tele.ChatID(b.chatID), text, tele.ModeMarkdown)
	return err
}

// RegisterHandlers wires the command surface against the pipeline's two
// read operations.
func (b *Bot) RegisterHandlers(reader NewsReader) {
	b.tele.Handle("/start", func(c tele.Context) error {
		return c.Send(welcomeText, tele.ModeMarkdown)
	})
	b.tele.Handle("/help", func(c tele.Context) error {
		return c.Send(welcomeText, tele.ModeMarkdown)
	})

	b.tele.Handle("/stocks", func(c tele.Context) error {
		msg := fmt.Sprintf("📊 *Watched tickers*\n\n%s", strings.Join(reader.Tickers(), ", "))
		return c.Send(msg, tele.ModeMarkdown)
	})

	b.tele.Handle("/news", func(c tele.Context) error {
		_ = c.Send("⏳ Fetching latest news...")

		articles, err := reader.GetCurrentNews(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("❌ Error fetching news: %v", err))
		}
		if len(articles) == 0 {
			return c.Send("📰 No recent news for the watched tickers")
		}

		limit := min(b.topK, len(articles))
		for i := 0; i < limit; i++ {
			if err := c.Send(news.FormatArticle(articles[i]), tele.ModeMarkdown); err != nil {
				log.Printf("reply send failed: %v", err)
			}
			if i < limit-1 {
				time.Sleep(b.sendDelay)
			}
		}
		return nil
	})

	b.tele.Handle("/sentiment", func(c tele.Context) error {
		articles, err := reader.GetCurrentNews(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("❌ Error fetching news: %v", err))
		}
		if len(articles) == 0 {
			return c.Send("📊 No data for sentiment analysis yet")
		}
		return c.Send(news.FormatSummary(articles, time.Now()), tele.ModeMarkdown)
	})
}

// Start begins long polling in the background.
func (b *Bot) Start() {
	log.Println("Telegram bot started")
	go b.tele.Start()
}

// Stop halts long polling.
func (b *Bot) Stop() {
	b.tele.Stop()
}

package news

import (
	"fmt"
	"strings"
	"time"

	"saham-radar/internal/domain"
)

func labelBadge(label domain.SentimentLabel) string {
	switch label {
	case domain.SentimentPositive:
		return "📈 positive"
	case domain.SentimentNegative:
		return "📉 negative"
	default:
		return "➡️ neutral"
	}
}

// FormatArticle renders one article for an on-demand /news reply.
func FormatArticle(a domain.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📰 *%s*\n", a.MatchedTicker)
	fmt.Fprintf(&b, "%s\n", a.Title)
	fmt.Fprintf(&b, "Source: %s\n", a.Source)
	fmt.Fprintf(&b, "Sentiment: %s (%.2f)", labelBadge(a.SentimentLabel), a.SentimentScore)
	if a.Link != "" {
		fmt.Fprintf(&b, "\n%s", a.Link)
	}
	return b.String()
}

// FormatBroadcast renders one article for the scheduled push.
func FormatBroadcast(a domain.Article) string {
	var b strings.Builder
	b.WriteString("🔔 *New article*\n\n")
	fmt.Fprintf(&b, "*%s*\n%s\n\n", a.MatchedTicker, a.Title)
	fmt.Fprintf(&b, "Sentiment: %s (%.2f)\n", labelBadge(a.SentimentLabel), a.SentimentScore)
	fmt.Fprintf(&b, "Source: %s", a.Source)
	if a.Link != "" {
		fmt.Fprintf(&b, "\n%s", a.Link)
	}
	return b.String()
}

// FormatSummary renders the /sentiment aggregate with up to three positive
// headlines.
func FormatSummary(articles []domain.Article, now time.Time) string {
	summary := domain.Summarize(articles)

	var b strings.Builder
	b.WriteString("📊 *Market sentiment*\n")
	fmt.Fprintf(&b, "⏰ %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "📈 Positive: %d\n", summary.Positive)
	fmt.Fprintf(&b, "📉 Negative: %d\n", summary.Negative)
	fmt.Fprintf(&b, "➡️ Neutral: %d\n", summary.Neutral)

	shown := 0
	for _, a := range articles {
		if a.SentimentLabel != domain.SentimentPositive {
			continue
		}
		if shown == 0 {
			b.WriteString("\nTop positive:\n")
		}
		fmt.Fprintf(&b, "• %s: %s\n", a.MatchedTicker, truncateTitle(a.Title, 50))
		shown++
		if shown == 3 {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max]) + "..."
}

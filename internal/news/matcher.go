package news

import (
	"strings"

	"saham-radar/internal/domain"
)

// MatchTickers promotes entries mentioning a watched ticker to articles.
// Tickers are checked in watch-list order against the uppercased title and
// summary; the first hit wins and scanning stops for that entry, so an entry
// is never emitted twice. Entries matching nothing are dropped. Input order
// is preserved.
func MatchTickers(entries []domain.RawEntry, tickers []string) []domain.Article {
	articles := make([]domain.Article, 0, len(entries))
	for _, entry := range entries {
		title := strings.ToUpper(entry.Title)
		summary := strings.ToUpper(entry.Summary)
		for _, ticker := range tickers {
			ticker = strings.ToUpper(ticker)
			if strings.Contains(title, ticker) || strings.Contains(summary, ticker) {
				articles = append(articles, domain.Article{RawEntry: entry, MatchedTicker: ticker})
				break
			}
		}
	}
	return articles
}

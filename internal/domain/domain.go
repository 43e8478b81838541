package domain

// FeedSource is one configured news feed.
type FeedSource struct {
	Name string
	URL  string
}

// RawEntry is one feed item as retrieved, before ticker relevance is known.
// Immutable once fetched.
type RawEntry struct {
	Source    string `json:"source"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Content   string `json:"content,omitempty"`
}

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Article is a RawEntry enriched by the pipeline stages. MatchedTicker is
// set by the matcher; the sentiment fields are set by the scorer and are
// zero until then.
type Article struct {
	RawEntry

	MatchedTicker  string         `json:"matched_ticker"`
	SentimentScore float64        `json:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}

// ArticleKey identifies an article for dedup purposes. Two articles are the
// same iff source and title match exactly, case-sensitive.
type ArticleKey struct {
	Source string
	Title  string
}

func (a Article) Key() ArticleKey {
	return ArticleKey{Source: a.Source, Title: a.Title}
}

// BroadcastRunResult summarizes one scheduled broadcast cycle.
type BroadcastRunResult struct {
	EntriesFetched  int
	ArticlesMatched int
	NewArticles     int
	MessagesSent    int
	Errors          []string
}

// SentimentSummary aggregates current articles by label.
type SentimentSummary struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

func Summarize(articles []Article) SentimentSummary {
	s := SentimentSummary{Total: len(articles)}
	for _, a := range articles {
		switch a.SentimentLabel {
		case SentimentPositive:
			s.Positive++
		case SentimentNegative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

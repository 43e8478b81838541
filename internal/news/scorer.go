package news

import (
	"log"
	"math"
	"strings"
	"unicode"

	"saham-radar/internal/domain"
)

// BasePolarityFunc estimates the general polarity of a text in [-1, 1].
type BasePolarityFunc func(text string) (float64, error)

type ScorerConfig struct {
	PositiveThreshold float64
	NegativeThreshold float64
	PositiveKeywords  []string
	NegativeKeywords  []string
}

// Scorer assigns a bounded sentiment score and label to articles. A general
// lexical polarity estimate is adjusted by domain keyword counts, so a text
// full of financial jargon the general lexicon misses still gets a usable
// signal.
type Scorer struct {
	cfg  ScorerConfig
	base BasePolarityFunc
}

func NewScorer(cfg ScorerConfig) *Scorer {
	if cfg.PositiveThreshold == 0 && cfg.NegativeThreshold == 0 {
		cfg.PositiveThreshold = 0.1
		cfg.NegativeThreshold = -0.1
	}
	return &Scorer{cfg: cfg, base: LexiconPolarity}
}

// ScoreArticle returns a copy of the article with sentiment fields set.
// Scoring depends only on the text, so rescoring the same article always
// yields the same result.
func (s *Scorer) ScoreArticle(article domain.Article) domain.Article {
	score, label := s.ScoreText(article.Title + " " + article.Summary)
	article.SentimentScore = score
	article.SentimentLabel = label
	return article
}

// ScoreText computes the adjusted polarity and label for a text blob.
// An estimator failure is absorbed: the text scores neutral and the
// pipeline continues.
func (s *Scorer) ScoreText(text string) (float64, domain.SentimentLabel) {
	base, err := s.base(text)
	if err != nil {
		log.Printf("sentiment estimate failed, falling back to neutral: %v", err)
		return 0.0, domain.SentimentNeutral
	}
	base = clamp(base, -1, 1)

	lower := strings.ToLower(text)
	positive := countKeywordHits(lower, s.cfg.PositiveKeywords)
	negative := countKeywordHits(lower, s.cfg.NegativeKeywords)

	adjusted := base
	if positive > negative {
		adjusted = math.Max(base, 0.2)
	} else if negative > positive {
		adjusted = math.Min(base, -0.2)
	}

	score := math.Round(adjusted*100) / 100
	switch {
	case score > s.cfg.PositiveThreshold:
		return score, domain.SentimentPositive
	case score < s.cfg.NegativeThreshold:
		return score, domain.SentimentNegative
	default:
		return score, domain.SentimentNeutral
	}
}

// countKeywordHits counts configured keywords present as substrings of the
// lowercased text, one hit per keyword.
func countKeywordHits(lower string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lower, keyword) {
			hits++
		}
	}
	return hits
}

// General-purpose polarity lexicon. Deliberately generic English words; the
// Indonesian financial vocabulary lives in the configurable keyword lists.
var (
	lexiconPositive = map[string]struct{}{
		"good": {}, "great": {}, "excellent": {}, "positive": {}, "growth": {},
		"success": {}, "successful": {}, "improve": {}, "improved": {}, "higher": {},
		"record": {}, "beat": {}, "beats": {}, "win": {}, "wins": {}, "upgrade": {},
		"optimistic": {}, "recovery": {}, "boost": {}, "soar": {}, "soars": {},
	}
	lexiconNegative = map[string]struct{}{
		"bad": {}, "poor": {}, "terrible": {}, "negative": {}, "slump": {},
		"fail": {}, "fails": {}, "failed": {}, "worse": {}, "worst": {}, "lower": {},
		"miss": {}, "misses": {}, "lose": {}, "loses": {}, "downgrade": {},
		"pessimistic": {}, "fear": {}, "plunge": {}, "plunges": {}, "risk": {},
	}
)

// LexiconPolarity is the default base estimator: the ratio of positive to
// negative lexicon words among the text's tokens, bounded in [-1, 1]. The
// +1 in the denominator damps texts with very few sentiment-bearing words.
func LexiconPolarity(text string) (float64, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	positive, negative := 0, 0
	for _, token := range tokens {
		if _, ok := lexiconPositive[token]; ok {
			positive++
		}
		if _, ok := lexiconNegative[token]; ok {
			negative++
		}
	}

	return clamp(float64(positive-negative)/float64(positive+negative+1), -1, 1), nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

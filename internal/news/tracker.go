package news

import (
	"sync"

	"saham-radar/internal/domain"
)

// DeliveredTracker remembers which article identities have been broadcast
// during this process lifetime. Membership only grows; nothing expires.
// It is never persisted, so a restart may redeliver old articles.
type DeliveredTracker struct {
	mu   sync.Mutex
	seen map[domain.ArticleKey]struct{}
}

func NewDeliveredTracker() *DeliveredTracker {
	return &DeliveredTracker{seen: make(map[domain.ArticleKey]struct{})}
}

// FilterUnseen returns the articles not yet delivered, in input order. Each
// selected article is marked delivered immediately, not after the batch, so
// a duplicate identity later in the same batch is dropped too. The whole
// pass holds the lock, keeping check-then-insert atomic even if cycles were
// ever to overlap.
func (t *DeliveredTracker) FilterUnseen(articles []domain.Article) []domain.Article {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		key := article.Key()
		if _, delivered := t.seen[key]; delivered {
			continue
		}
		t.seen[key] = struct{}{}
		fresh = append(fresh, article)
	}
	return fresh
}

// Size reports how many identities have been delivered so far.
func (t *DeliveredTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}

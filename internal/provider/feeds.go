package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"saham-radar/internal/domain"

	"github.com/mmcdole/gofeed"
	"go.opentelemetry.io/otel/trace"
)

const noTitleSentinel = "No Title"

// FeedProvider retrieves and normalizes configured news feeds.
type FeedProvider struct {
	client     *http.Client
	tracer     trace.Tracer
	timeout    time.Duration
	itemLimit  int
	summaryMax int
}

func NewFeedProvider(tracer trace.Tracer, timeout time.Duration, itemLimit, summaryMax int) *FeedProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if itemLimit <= 0 {
		itemLimit = 10
	}
	if summaryMax <= 0 {
		summaryMax = 200
	}
	return &FeedProvider{
		client:     &http.Client{Timeout: timeout},
		tracer:     tracer,
		timeout:    timeout,
		itemLimit:  itemLimit,
		summaryMax: summaryMax,
	}
}

// FetchAll fetches every source concurrently. Each source gets its own
// timeout, and a failing or hanging source is logged and skipped without
// cancelling its siblings. Entries come back grouped in source order.
func (p *FeedProvider) FetchAll(ctx context.Context, sources []domain.FeedSource) []domain.RawEntry {
	ctx, span := p.tracer.Start(ctx, "feeds.fetch-all")
	defer span.End()

	perSource := make([][]domain.RawEntry, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src domain.FeedSource) {
			defer wg.Done()
			entries, err := p.FetchSource(ctx, src)
			if err != nil {
				log.Printf("feed %s skipped: %v", src.Name, err)
				return
			}
			perSource[i] = entries
		}(i, src)
	}
	wg.Wait()

	var out []domain.RawEntry
	for _, entries := range perSource {
		out = append(out, entries...)
	}
	return out
}

// FetchSource fetches and parses one feed, keeping at most the first
// itemLimit entries in feed order.
func (p *FeedProvider) FetchSource(ctx context.Context, src domain.FeedSource) ([]domain.RawEntry, error) {
	ctx, span := p.tracer.Start(ctx, "feeds.fetch-source")
	defer span.End()

	if strings.TrimSpace(src.URL) == "" {
		return nil, fmt.Errorf("feed url is required for source %q", src.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = p.client

	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	entries := make([]domain.RawEntry, 0, min(p.itemLimit, len(feed.Items)))
	for i, item := range feed.Items {
		if i >= p.itemLimit {
			break
		}
		if item == nil {
			continue
		}
		entries = append(entries, p.toEntry(src.Name, item))
	}
	return entries, nil
}

func (p *FeedProvider) toEntry(source string, item *gofeed.Item) domain.RawEntry {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = noTitleSentinel
	}
	return domain.RawEntry{
		Source:    source,
		Title:     title,
		Link:      strings.TrimSpace(item.Link),
		Published: item.Published,
		Summary:   truncateRunes(strings.TrimSpace(htmlStrip(item.Description)), p.summaryMax),
		Content:   item.Content,
	}
}

// truncateRunes keeps the first max characters, counting runes so multi-byte
// text is not cut mid-character.
func truncateRunes(v string, max int) string {
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	return string(runes[:max])
}

func htmlStrip(in string) string {
	if strings.TrimSpace(in) == "" {
		return ""
	}
	var b strings.Builder
	inside := false
	for _, r := range in {
		switch r {
		case '<':
			inside = true
			continue
		case '>':
			inside = false
			continue
		}
		if !inside {
			b.WriteRune(r)
		}
	}
	return b.String()
}

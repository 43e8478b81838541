package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"saham-radar/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type stubNewsService struct {
	articles []domain.Article
	err      error
}

func (s *stubNewsService) GetCurrentNews(ctx context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

func (s *stubNewsService) Tickers() []string {
	return []string{"BBCA", "TLKM"}
}

func testRouter(svc *stubNewsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(trace.NewNoopTracerProvider().Tracer("test"), svc)
	h.RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := testRouter(&stubNewsService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetNews(t *testing.T) {
	svc := &stubNewsService{articles: []domain.Article{
		{
			RawEntry:       domain.RawEntry{Source: "IDX", Title: "BBCA naik"},
			MatchedTicker:  "BBCA",
			SentimentScore: 0.2,
			SentimentLabel: domain.SentimentPositive,
		},
	}}
	r := testRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []domain.Article
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].MatchedTicker != "BBCA" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestGetNewsEmptyIsJSONArray(t *testing.T) {
	r := testRouter(&stubNewsService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestGetNewsError(t *testing.T) {
	r := testRouter(&stubNewsService{err: errors.New("feeds unavailable")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestGetSentiment(t *testing.T) {
	svc := &stubNewsService{articles: []domain.Article{
		{SentimentLabel: domain.SentimentPositive},
		{SentimentLabel: domain.SentimentNegative},
		{SentimentLabel: domain.SentimentNeutral},
	}}
	r := testRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news/sentiment", nil))

	var got domain.SentimentSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Positive != 1 || got.Negative != 1 || got.Neutral != 1 || got.Total != 3 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestGetTickers(t *testing.T) {
	r := testRouter(&stubNewsService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tickers", nil))

	var got []string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0] != "BBCA" {
		t.Fatalf("unexpected tickers: %+v", got)
	}
}

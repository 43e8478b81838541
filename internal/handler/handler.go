package handler

import (
	"context"

	"saham-radar/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// NewsService is the read surface the HTTP API exposes.
type NewsService interface {
	GetCurrentNews(ctx context.Context) ([]domain.Article, error)
	Tickers() []string
}

type Handler struct {
	tracer trace.Tracer
	news   NewsService
}

func New(tracer trace.Tracer, news NewsService) *Handler {
	return &Handler{
		tracer: tracer,
		news:   news,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/news", h.GetNews)
	r.GET("/api/news/sentiment", h.GetSentiment)
	r.GET("/api/tickers", h.GetTickers)
}

package handler

import (
	"net/http"

	"saham-radar/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetNews godoc
// @Summary      Current relevant news
// @Description  Returns the current scored articles for the watched tickers
// @Tags         news
// @Produce      json
// @Success      200  {array}   domain.Article
// @Failure      500  {object}  map[string]string
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	articles, err := h.news.GetCurrentNews(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

// GetSentiment godoc
// @Summary      Sentiment summary
// @Description  Aggregates current articles by sentiment label
// @Tags         news
// @Produce      json
// @Success      200  {object}  domain.SentimentSummary
// @Failure      500  {object}  map[string]string
// @Router       /api/news/sentiment [get]
func (h *Handler) GetSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sentiment")
	defer span.End()

	articles, err := h.news.GetCurrentNews(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, domain.Summarize(articles))
}

// GetTickers godoc
// @Summary      Watched tickers
// @Description  Returns the configured ticker watch-list
// @Tags         news
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/tickers [get]
func (h *Handler) GetTickers(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.Tickers())
}

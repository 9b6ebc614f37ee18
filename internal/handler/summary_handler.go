package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"curvewatch/internal/model"
	"curvewatch/pkg/llm"
)

type NewsStore interface {
	GetNewsBundle(date string) (*model.NewsBundle, error)
}

type SummaryHandler struct {
	summarizer llm.Summarizer
	newsStore  NewsStore
}

func NewSummaryHandler(summarizer llm.Summarizer, newsStore NewsStore) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer, newsStore: newsStore}
}

// Summarize generates an on-demand AI summary for the posted curve.
// Inference and parse failures degrade to the static fallback; the
// client never sees a raw error for those.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid yield data provided"})
		return
	}

	points := make([]model.YieldPoint, 0, len(req.Yields))
	for _, y := range req.Yields {
		points = append(points, model.YieldPoint{
			Maturity: y.Maturity,
			SeriesID: y.SeriesID,
			Value:    y.Yield,
		})
	}

	snapshot, err := model.NewSnapshot(today(), points)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid yield data provided"})
		return
	}

	summary, err := h.summarizer.Summarize(snapshot, h.todaysNews())
	if err != nil {
		slog.Error("error generating summary, serving fallback", "model", h.summarizer.ModelName(), "error", err)
		summary = llm.Fallback()
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Summary:         summary.Summary,
		KeyInsights:     summary.KeyInsights,
		MarketCondition: string(summary.MarketCondition),
		GeneratedAt:     summary.GeneratedAt.Format(time.RFC3339),
	})
}

// todaysNews is advisory context only; store problems just mean no
// headlines in the prompt.
func (h *SummaryHandler) todaysNews() []model.NewsItem {
	if h.newsStore == nil {
		return nil
	}
	bundle, err := h.newsStore.GetNewsBundle(today())
	if err != nil {
		slog.Error("error fetching news bundle for summary", "error", err)
		return nil
	}
	if bundle == nil {
		return nil
	}
	return bundle.Items
}

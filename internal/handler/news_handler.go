package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	repository NewsStore
}

func NewNewsHandler(repository NewsStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	date := today()

	bundle, err := h.repository.GetNewsBundle(date)
	if err != nil {
		slog.Error("error fetching news bundle", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if bundle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No news for today"})
		return
	}

	items := make([]NewsItemResponse, 0, len(bundle.Items))
	for _, n := range bundle.Items {
		items = append(items, NewsItemResponse{
			Title:       n.Title,
			URL:         n.URL,
			Description: n.Description,
			Source:      n.Source,
		})
	}

	c.JSON(http.StatusOK, NewsBundleResponse{
		Date:      bundle.Date,
		NewsItems: items,
		UpdatedAt: bundle.UpdatedAt.Format(time.RFC3339),
	})
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"curvewatch/internal/model"
)

type YieldStore interface {
	GetYieldCurve(date string) (*model.CurveSnapshot, error)
}

// CurveCache is the optional read-through cache in front of the store.
// A nil cache disables caching.
type CurveCache interface {
	CachedCurve(date string) (string, error)
	CacheCurve(date, payload string) error
}

type YieldHandler struct {
	repository YieldStore
	cache      CurveCache
}

func NewYieldHandler(repository YieldStore, cache CurveCache) *YieldHandler {
	return &YieldHandler{repository: repository, cache: cache}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// GetYields serves today's curve. A missing snapshot is a valid "no
// data yet" state, deliberately not papered over with a stale date.
func (h *YieldHandler) GetYields(c *gin.Context) {
	date := today()

	if h.cache != nil {
		payload, err := h.cache.CachedCurve(date)
		if err != nil {
			slog.Error("error reading curve cache", "date", date, "error", err)
		} else if payload != "" {
			c.Data(http.StatusOK, "application/json", []byte(payload))
			return
		}
	}

	snapshot, err := h.repository.GetYieldCurve(date)
	if err != nil {
		slog.Error("error fetching yield curve", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if snapshot == nil {
		c.JSON(http.StatusOK, YieldCurveResponse{
			Yields:  []YieldResponse{},
			Date:    date,
			Message: "No data available for today yet.",
		})
		return
	}

	res := toCurveResponse(snapshot)

	if h.cache != nil {
		if payload, err := json.Marshal(res); err == nil {
			if err := h.cache.CacheCurve(date, string(payload)); err != nil {
				slog.Error("error writing curve cache", "date", date, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *YieldHandler) GetYieldsByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	snapshot, err := h.repository.GetYieldCurve(date)
	if err != nil {
		slog.Error("error fetching yield curve", "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data for date"})
		return
	}

	c.JSON(http.StatusOK, toCurveResponse(snapshot))
}

func (h *YieldHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toCurveResponse(snapshot *model.CurveSnapshot) YieldCurveResponse {
	yields := make([]YieldResponse, 0, len(snapshot.Points))
	for _, p := range snapshot.Points {
		yields = append(yields, YieldResponse{
			Maturity: p.Maturity,
			Yield:    p.Value,
			SeriesID: p.SeriesID,
		})
	}
	return YieldCurveResponse{Yields: yields, Date: snapshot.Date}
}

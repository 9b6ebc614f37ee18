package llm

import (
	"curvewatch/internal/model"
)

// Summarizer turns a curve snapshot (plus optional news context) into
// an AI-generated summary. Any returned error means the caller should
// serve Fallback() rather than surface the failure.
type Summarizer interface {
	Summarize(snapshot *model.CurveSnapshot, news []model.NewsItem) (*model.AISummary, error)
	ModelName() string
}

// modelResponse is the strict JSON object the prompt asks for.
type modelResponse struct {
	Summary         string   `json:"summary"`
	KeyInsights     []string `json:"keyInsights"`
	MarketCondition string   `json:"marketCondition"`
}

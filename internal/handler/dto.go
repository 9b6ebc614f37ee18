package handler

type YieldResponse struct {
	Maturity string  `json:"maturity"`
	Yield    float64 `json:"yield"`
	SeriesID string  `json:"seriesId,omitempty"`
}

type YieldCurveResponse struct {
	Yields  []YieldResponse `json:"yields"`
	Date    string          `json:"date"`
	Message string          `json:"message,omitempty"`
}

type SummarizeRequest struct {
	Yields []YieldRequest `json:"yields"`
}

type YieldRequest struct {
	Maturity string  `json:"maturity"`
	Yield    float64 `json:"yield"`
	SeriesID string  `json:"seriesId"`
}

type SummaryResponse struct {
	Summary         string   `json:"summary"`
	KeyInsights     []string `json:"keyInsights"`
	MarketCondition string   `json:"marketCondition"`
	GeneratedAt     string   `json:"generatedAt"`
}

type NewsItemResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

type NewsBundleResponse struct {
	Date      string             `json:"date"`
	NewsItems []NewsItemResponse `json:"newsItems"`
	UpdatedAt string             `json:"updatedAt"`
}

package model

import "time"

type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

type NewsBundle struct {
	Date      string
	Items     []NewsItem
	UpdatedAt time.Time
}

// AISummary is generated per request and never persisted.
type AISummary struct {
	Summary         string
	KeyInsights     []string
	MarketCondition MarketCondition
	GeneratedAt     time.Time
}

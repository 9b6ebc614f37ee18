package news

import "curvewatch/internal/model"

// Client retrieves recent treasury-related headlines. Results are
// advisory context for the AI summary and never block the yield
// pipeline.
type Client interface {
	Fetch(limit int) ([]model.NewsItem, error)
	Name() string
}

package news

import (
	"context"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"curvewatch/internal/model"
)

// FinnhubClient is the alternate headline source for setups with a
// Finnhub key; it serves general market news instead of a web search.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(limit int) ([]model.NewsItem, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var items []model.NewsItem
	for _, n := range res {
		if len(items) >= limit {
			break
		}

		item := model.NewsItem{Source: c.Name()}
		if n.Headline != nil {
			item.Title = *n.Headline
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if n.Summary != nil {
			item.Description = *n.Summary
		}
		if n.Source != nil {
			item.Source = *n.Source
		}

		if item.Title == "" || item.URL == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

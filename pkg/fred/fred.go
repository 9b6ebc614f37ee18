package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"curvewatch/internal/model"
)

const (
	defaultBaseURL = "https://api.stlouisfed.org/fred/series/observations"

	// FRED reports "." for dates with no observation (holidays,
	// weekends). Such points are skipped, never stored as zero.
	missingSentinel = "."

	perSeriesTimeout = 10 * time.Second
)

type Client struct {
	apiKey     string
	baseURL    string
	series     []Series
	httpClient *http.Client
}

func NewClient(apiKey string, series []Series) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		series:     series,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string {
	return "FRED"
}

// FetchCurve retrieves the latest observation for every configured
// series concurrently. Series failures are logged and skipped; the
// result is whatever subset succeeded, in arrival order.
func (c *Client) FetchCurve(ctx context.Context) ([]model.YieldPoint, error) {
	results := make([]*model.YieldPoint, len(c.series))

	var wg sync.WaitGroup
	for i, s := range c.series {
		wg.Add(1)
		go func(i int, s Series) {
			defer wg.Done()

			point, err := c.fetchSeries(ctx, s)
			if err != nil {
				slog.Error("error fetching series", "series", s.SeriesID, "maturity", s.Label, "error", err)
				return
			}
			results[i] = point
		}(i, s)
	}
	wg.Wait()

	var points []model.YieldPoint
	for _, p := range results {
		if p != nil {
			points = append(points, *p)
		}
	}

	return points, nil
}

// fetchSeries returns (nil, nil) when the provider has no usable
// observation for the series.
func (c *Client) fetchSeries(ctx context.Context, s Series) (*model.YieldPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, perSeriesTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("series_id", s.SeriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	q.Set("sort_order", "desc")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("fred request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fred fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fred fetch: unexpected status %s", resp.Status)
	}

	var raw fredResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("fred decode: %w", err)
	}

	if len(raw.Observations) == 0 {
		slog.Info("no observations for series", "series", s.SeriesID)
		return nil, nil
	}

	obs := raw.Observations[0]
	if obs.Value == missingSentinel {
		slog.Info("missing-data sentinel for series", "series", s.SeriesID, "date", obs.Date)
		return nil, nil
	}

	value, err := strconv.ParseFloat(obs.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("fred value %q: %w", obs.Value, err)
	}
	if value <= 0 {
		return nil, nil
	}

	return &model.YieldPoint{
		Maturity:     s.Label,
		SeriesID:     s.SeriesID,
		Value:        value,
		ObservedDate: obs.Date,
	}, nil
}

type fredResponse struct {
	Observations []fredObservation `json:"observations"`
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

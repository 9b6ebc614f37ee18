package fred

import (
	"context"
	"time"

	"curvewatch/internal/model"
)

// FallbackSource serves a fixed illustrative curve so that the
// pipeline works in demo/preview setups without a FRED API key.
type FallbackSource struct{}

func NewFallbackSource() *FallbackSource {
	return &FallbackSource{}
}

func (f *FallbackSource) Name() string {
	return "fallback"
}

var fallbackCurve = []struct {
	label    string
	seriesID string
	value    float64
}{
	{"1 Mo", "DGS1MO", 5.42},
	{"3 Mo", "DGS3MO", 5.38},
	{"6 Mo", "DGS6MO", 5.25},
	{"1 Yr", "DGS1", 4.95},
	{"2 Yr", "DGS2", 4.65},
	{"5 Yr", "DGS5", 4.28},
	{"10 Yr", "DGS10", 4.25},
	{"20 Yr", "DGS20", 4.52},
	{"30 Yr", "DGS30", 4.40},
}

func (f *FallbackSource) FetchCurve(ctx context.Context) ([]model.YieldPoint, error) {
	today := time.Now().UTC().Format("2006-01-02")

	points := make([]model.YieldPoint, 0, len(fallbackCurve))
	for _, p := range fallbackCurve {
		points = append(points, model.YieldPoint{
			Maturity:     p.label,
			SeriesID:     p.seriesID,
			Value:        p.value,
			ObservedDate: today,
		})
	}
	return points, nil
}

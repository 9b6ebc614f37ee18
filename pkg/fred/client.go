package fred

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"curvewatch/internal/model"
)

// Series maps a maturity label to its FRED series identifier.
type Series struct {
	Label    string `yaml:"label"`
	SeriesID string `yaml:"seriesId"`
}

// DefaultSeries is the canonical Treasury constant-maturity set.
var DefaultSeries = []Series{
	{Label: "1 Mo", SeriesID: "DGS1MO"},
	{Label: "3 Mo", SeriesID: "DGS3MO"},
	{Label: "6 Mo", SeriesID: "DGS6MO"},
	{Label: "1 Yr", SeriesID: "DGS1"},
	{Label: "2 Yr", SeriesID: "DGS2"},
	{Label: "5 Yr", SeriesID: "DGS5"},
	{Label: "10 Yr", SeriesID: "DGS10"},
	{Label: "20 Yr", SeriesID: "DGS20"},
	{Label: "30 Yr", SeriesID: "DGS30"},
}

// Source yields the day's curve points. Implementations are the live
// FRED client and the fixed fallback used when no API key is set.
type Source interface {
	FetchCurve(ctx context.Context) ([]model.YieldPoint, error)
	Name() string
}

// LoadSeries reads a YAML series mapping from path, falling back to
// DefaultSeries when path is empty.
func LoadSeries(path string) ([]Series, error) {
	if path == "" {
		return DefaultSeries, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read series config: %w", err)
	}

	var cfg struct {
		Series []Series `yaml:"series"`
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse series config: %w", err)
	}
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("series config %s defines no series", path)
	}

	return cfg.Series, nil
}

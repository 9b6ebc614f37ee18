package llm

import (
	"testing"
	"time"

	"curvewatch/internal/model"
)

func invertedSnapshot(t *testing.T) *model.CurveSnapshot {
	t.Helper()
	s, err := model.NewSnapshot("2026-09-01", []model.YieldPoint{
		{Maturity: "2 Yr", Value: 4.65},
		{Maturity: "10 Yr", Value: 4.25},
	})
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return s
}

func TestFinalizeOverridesModelCondition(t *testing.T) {
	// Model claims steep; the locally computed -0.40 spread wins.
	parsed := &modelResponse{
		Summary:         "Rates are rising.",
		KeyInsights:     []string{"a", "b", "c"},
		MarketCondition: "steep",
	}

	got := finalize(parsed, invertedSnapshot(t))

	if got.MarketCondition != model.ConditionInverted {
		t.Errorf("MarketCondition = %q, want inverted", got.MarketCondition)
	}
	if got.Summary != "Rates are rising." {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
}

func TestFinalizeTrustsModelWhenSpreadUnavailable(t *testing.T) {
	s, err := model.NewSnapshot("2026-09-01", []model.YieldPoint{
		{Maturity: "5 Yr", Value: 4.28},
	})
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	got := finalize(&modelResponse{MarketCondition: "flat"}, s)
	if got.MarketCondition != model.ConditionFlat {
		t.Errorf("MarketCondition = %q, want flat", got.MarketCondition)
	}

	got = finalize(&modelResponse{MarketCondition: "sideways"}, s)
	if got.MarketCondition != model.ConditionNormal {
		t.Errorf("unknown condition = %q, want normal", got.MarketCondition)
	}
}

func TestFinalizeTopsUpInsights(t *testing.T) {
	got := finalize(&modelResponse{KeyInsights: []string{"model insight"}}, invertedSnapshot(t))

	if len(got.KeyInsights) != 3 {
		t.Fatalf("KeyInsights len = %d, want 3", len(got.KeyInsights))
	}
	if got.KeyInsights[0] != "model insight" {
		t.Errorf("first insight = %q", got.KeyInsights[0])
	}
	if got.KeyInsights[1] != "2Y/10Y Spread: -0.40%" {
		t.Errorf("spread insight = %q", got.KeyInsights[1])
	}
	if got.KeyInsights[2] != "Curve Shape: inverted" {
		t.Errorf("shape insight = %q", got.KeyInsights[2])
	}
}

func TestFinalizeTruncatesLongInsightLists(t *testing.T) {
	parsed := &modelResponse{KeyInsights: []string{"a", "b", "c", "d", "e"}}

	got := finalize(parsed, invertedSnapshot(t))
	if len(got.KeyInsights) != 3 {
		t.Errorf("KeyInsights len = %d, want 3", len(got.KeyInsights))
	}
}

func TestFallback(t *testing.T) {
	before := time.Now().UTC()
	got := Fallback()

	if got.MarketCondition != model.ConditionNormal {
		t.Errorf("MarketCondition = %q, want normal", got.MarketCondition)
	}
	if len(got.KeyInsights) != 1 {
		t.Errorf("KeyInsights len = %d, want 1", len(got.KeyInsights))
	}
	if got.Summary == "" {
		t.Error("empty fallback summary")
	}
	if got.GeneratedAt.Before(before) {
		t.Error("GeneratedAt not stamped at construction")
	}
}

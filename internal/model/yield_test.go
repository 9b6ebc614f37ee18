package model

import (
	"errors"
	"testing"
)

func TestClassifySpread(t *testing.T) {
	tests := []struct {
		name   string
		spread float64
		want   MarketCondition
	}{
		{"deeply inverted", -1.2, ConditionInverted},
		{"slightly inverted", -0.40, ConditionInverted},
		{"zero spread is normal, not inverted", 0, ConditionNormal},
		{"flat", 0.25, ConditionFlat},
		{"exactly 0.5 is normal", 0.5, ConditionNormal},
		{"normal", 1.1, ConditionNormal},
		{"exactly 2.0 is normal", 2.0, ConditionNormal},
		{"steep", 2.01, ConditionSteep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySpread(tt.spread)
			if got != tt.want {
				t.Errorf("ClassifySpread(%v) = %q, want %q", tt.spread, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		points []YieldPoint
		want   MarketCondition
	}{
		{
			name: "inverted curve",
			points: []YieldPoint{
				{Maturity: "2 Yr", Value: 4.65},
				{Maturity: "10 Yr", Value: 4.25},
			},
			want: ConditionInverted,
		},
		{
			name: "identical legs",
			points: []YieldPoint{
				{Maturity: "2 Yr", Value: 4.65},
				{Maturity: "10 Yr", Value: 4.65},
			},
			want: ConditionNormal,
		},
		{
			name: "missing 2 Yr defaults to normal",
			points: []YieldPoint{
				{Maturity: "10 Yr", Value: 4.25},
			},
			want: ConditionNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSnapshot("2026-09-01", tt.points)
			if err != nil {
				t.Fatalf("NewSnapshot: %v", err)
			}
			if got := s.Classify(); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSnapshotOrdering(t *testing.T) {
	points := []YieldPoint{
		{Maturity: "10 Yr", Value: 4.25},
		{Maturity: "1 Mo", Value: 5.42},
		{Maturity: "2 Yr", Value: 4.65},
	}

	s, err := NewSnapshot("2026-09-01", points)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	want := []string{"1 Mo", "2 Yr", "10 Yr"}
	for i, m := range want {
		if s.Points[i].Maturity != m {
			t.Errorf("point %d = %q, want %q", i, s.Points[i].Maturity, m)
		}
	}
}

func TestNewSnapshotUnknownMaturityLast(t *testing.T) {
	points := []YieldPoint{
		{Maturity: "40 Yr", Value: 4.10},
		{Maturity: "10 Yr", Value: 4.25},
		{Maturity: "1 Mo", Value: 5.42},
	}

	s, err := NewSnapshot("2026-09-01", points)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	want := []string{"1 Mo", "10 Yr", "40 Yr"}
	for i, m := range want {
		if s.Points[i].Maturity != m {
			t.Errorf("point %d = %q, want %q", i, s.Points[i].Maturity, m)
		}
	}
}

func TestNewSnapshotDeduplicates(t *testing.T) {
	points := []YieldPoint{
		{Maturity: "10 Yr", Value: 4.25},
		{Maturity: "10 Yr", Value: 9.99},
		{Maturity: "2 Yr", Value: 4.65},
	}

	s, err := NewSnapshot("2026-09-01", points)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	if len(s.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(s.Points))
	}
	tenYr, _ := s.Point("10 Yr")
	if tenYr.Value != 4.25 {
		t.Errorf("duplicate maturity should keep first value, got %v", tenYr.Value)
	}
}

func TestNewSnapshotEmpty(t *testing.T) {
	_, err := NewSnapshot("2026-09-01", nil)
	if !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("got %v, want ErrEmptyCurve", err)
	}
}

func TestSpreads(t *testing.T) {
	s, err := NewSnapshot("2026-09-01", []YieldPoint{
		{Maturity: "3 Mo", Value: 5.38},
		{Maturity: "2 Yr", Value: 4.65},
		{Maturity: "10 Yr", Value: 4.25},
	})
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}

	spread, ok := s.Spread2s10s()
	if !ok {
		t.Fatal("Spread2s10s not computable")
	}
	if diff := spread - (4.25 - 4.65); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Spread2s10s = %v, want -0.40", spread)
	}

	spread, ok = s.Spread3m10s()
	if !ok {
		t.Fatal("Spread3m10s not computable")
	}
	if diff := spread - (4.25 - 5.38); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Spread3m10s = %v, want -1.13", spread)
	}

	if got := s.MaxYield(); got != 5.38 {
		t.Errorf("MaxYield = %v, want 5.38", got)
	}
}

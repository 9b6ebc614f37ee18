package model

import (
	"errors"
	"time"
)

const (
	RecordTypeYieldCurve = "yield_curve"
	RecordTypeNews       = "news"
)

// MarketCondition is the discrete curve-shape label derived from the
// 2s10s spread. Downstream consumers (UI badges, prompt framing) key
// off these exact strings.
type MarketCondition string

const (
	ConditionNormal   MarketCondition = "normal"
	ConditionInverted MarketCondition = "inverted"
	ConditionFlat     MarketCondition = "flat"
	ConditionSteep    MarketCondition = "steep"
)

var ErrEmptyCurve = errors.New("no yield points to assemble")

type YieldPoint struct {
	Maturity     string
	SeriesID     string
	Value        float64
	ObservedDate string
}

type CurveSnapshot struct {
	Date      string
	Points    []YieldPoint
	UpdatedAt time.Time
}

// maturityOrder is the canonical short-to-long ordering. It covers
// more maturities than the default series set so that config-extended
// curves still sort correctly.
var maturityOrder = []string{
	"1 Mo", "2 Mo", "3 Mo", "6 Mo",
	"1 Yr", "2 Yr", "3 Yr", "5 Yr", "7 Yr",
	"10 Yr", "20 Yr", "30 Yr",
}

func maturityRank(label string) int {
	for i, m := range maturityOrder {
		if m == label {
			return i
		}
	}
	return len(maturityOrder)
}

// NewSnapshot assembles fetched points into the snapshot for the given
// date. Duplicate maturities keep the first occurrence, points are
// sorted by maturity duration, and unknown maturities go last in
// arrival order. Returns ErrEmptyCurve when nothing was fetched.
func NewSnapshot(date string, points []YieldPoint) (*CurveSnapshot, error) {
	seen := make(map[string]bool, len(points))
	ordered := make([]YieldPoint, 0, len(points))
	for _, p := range points {
		if seen[p.Maturity] {
			continue
		}
		seen[p.Maturity] = true
		ordered = append(ordered, p)
	}

	if len(ordered) == 0 {
		return nil, ErrEmptyCurve
	}

	// Insertion sort keeps arrival order stable for unknown maturities.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && maturityRank(ordered[j-1].Maturity) > maturityRank(ordered[j].Maturity); j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	return &CurveSnapshot{
		Date:      date,
		Points:    ordered,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (s *CurveSnapshot) Point(maturity string) (YieldPoint, bool) {
	for _, p := range s.Points {
		if p.Maturity == maturity {
			return p, true
		}
	}
	return YieldPoint{}, false
}

// Spread2s10s returns yield(10 Yr) - yield(2 Yr). The bool reports
// whether both maturities are present.
func (s *CurveSnapshot) Spread2s10s() (float64, bool) {
	twoYr, ok2 := s.Point("2 Yr")
	tenYr, ok10 := s.Point("10 Yr")
	if !ok2 || !ok10 {
		return 0, false
	}
	return tenYr.Value - twoYr.Value, true
}

// Spread3m10s returns yield(10 Yr) - yield(3 Mo).
func (s *CurveSnapshot) Spread3m10s() (float64, bool) {
	threeMo, ok3 := s.Point("3 Mo")
	tenYr, ok10 := s.Point("10 Yr")
	if !ok3 || !ok10 {
		return 0, false
	}
	return tenYr.Value - threeMo.Value, true
}

func (s *CurveSnapshot) MaxYield() float64 {
	max := 0.0
	for _, p := range s.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// Classify maps the snapshot to a market condition from the 2s10s
// spread. A curve missing either leg classifies as normal. Thresholds
// are checked in order, first match wins; exact 0, 0.5 and 2.0 all
// fall through to normal.
func (s *CurveSnapshot) Classify() MarketCondition {
	spread, ok := s.Spread2s10s()
	if !ok {
		return ConditionNormal
	}
	return ClassifySpread(spread)
}

func ClassifySpread(spread float64) MarketCondition {
	switch {
	case spread < 0:
		return ConditionInverted
	case spread > 2.0:
		return ConditionSteep
	case spread < 0.5:
		return ConditionFlat
	default:
		return ConditionNormal
	}
}

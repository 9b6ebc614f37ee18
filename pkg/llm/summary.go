package llm

import (
	"fmt"
	"time"

	"curvewatch/internal/model"
)

const keyInsightCount = 3

// finalize builds the outgoing summary from the model's response. The
// model's self-reported classification is advisory only: whenever the
// 2s10s spread is computable, the locally derived condition wins, and
// short insight lists are topped up with locally computed facts so
// the UI always gets exactly three.
func finalize(parsed *modelResponse, snapshot *model.CurveSnapshot) *model.AISummary {
	condition := parseCondition(parsed.MarketCondition)
	if _, ok := snapshot.Spread2s10s(); ok {
		condition = snapshot.Classify()
	}

	insights := parsed.KeyInsights
	if len(insights) > keyInsightCount {
		insights = insights[:keyInsightCount]
	}
	for _, extra := range localInsights(snapshot, condition) {
		if len(insights) >= keyInsightCount {
			break
		}
		insights = append(insights, extra)
	}

	return &model.AISummary{
		Summary:         parsed.Summary,
		KeyInsights:     insights,
		MarketCondition: condition,
		GeneratedAt:     time.Now().UTC(),
	}
}

func parseCondition(s string) model.MarketCondition {
	switch model.MarketCondition(s) {
	case model.ConditionInverted, model.ConditionFlat, model.ConditionSteep, model.ConditionNormal:
		return model.MarketCondition(s)
	default:
		return model.ConditionNormal
	}
}

func localInsights(snapshot *model.CurveSnapshot, condition model.MarketCondition) []string {
	spreadText := "N/A"
	if spread, ok := snapshot.Spread2s10s(); ok {
		spreadText = fmt.Sprintf("%.2f%%", spread)
	}
	return []string{
		fmt.Sprintf("2Y/10Y Spread: %s", spreadText),
		fmt.Sprintf("Curve Shape: %s", condition),
		fmt.Sprintf("Highest Yield: %.2f%%", snapshot.MaxYield()),
	}
}

// Fallback is the static summary served when inference fails. The
// dashboard always renders something.
func Fallback() *model.AISummary {
	return &model.AISummary{
		Summary:         "Unable to generate AI summary at this time. Please try again later.",
		KeyInsights:     []string{"Data analysis unavailable"},
		MarketCondition: model.ConditionNormal,
		GeneratedAt:     time.Now().UTC(),
	}
}

package llm

import (
	"fmt"
	"strings"

	"curvewatch/internal/model"
)

const maxNewsContext = 5

func buildPrompt(snapshot *model.CurveSnapshot, news []model.NewsItem) string {
	var sb strings.Builder

	sb.WriteString("You are a senior fixed income analyst. Analyze the following U.S. Treasury yield curve data:\n")
	for _, p := range snapshot.Points {
		sb.WriteString(fmt.Sprintf("%s: %.2f%%\n", p.Maturity, p.Value))
	}

	if len(news) > 0 {
		if len(news) > maxNewsContext {
			news = news[:maxNewsContext]
		}
		sb.WriteString("\nRecent related headlines for context:\n")
		for _, n := range news {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", n.Title, n.Source))
		}
	}

	sb.WriteString(`
Provide a concise summary of the current market conditions.

Format your response as a JSON object with the following structure:
{
  "summary": "A 2-3 sentence executive summary of the yield curve shape and implications.",
  "keyInsights": ["Insight 1", "Insight 2", "Insight 3"],
  "marketCondition": "normal" | "inverted" | "steep" | "flat"
}

Focus on:
1. The shape of the curve (inverted, flat, steep)
2. Key spreads (2s10s, 3m10s)
3. Implications for the economy (recession risk, growth outlook)

Do not include any markdown formatting or explanations outside the JSON.`)

	return sb.String()
}

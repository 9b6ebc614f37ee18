package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSummaryParse reports that no valid JSON object could be extracted
// from the model's free-form response.
var ErrSummaryParse = errors.New("no valid JSON object in model response")

func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// extractJSONObject returns the first balanced {...} substring,
// tracking string literals and escapes so braces inside values don't
// terminate the scan early.
func extractJSONObject(content string) (string, error) {
	start := strings.Index(content, "{")
	if start < 0 {
		return "", ErrSummaryParse
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return content[start : i+1], nil
				}
			}
		}
	}

	return "", ErrSummaryParse
}

func parseSummary(content string) (*modelResponse, error) {
	raw, err := extractJSONObject(cleanResponse(content))
	if err != nil {
		return nil, err
	}

	var parsed modelResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSummaryParse, err)
	}

	return &parsed, nil
}

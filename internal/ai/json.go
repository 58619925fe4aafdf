package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSONObject scans text for the first syntactically balanced {...}
// span, tracking brace depth and JSON string literals so braces inside quoted
// values or trailing prose do not confuse the boundary. Returns false when no
// balanced object exists.
func extractJSONObject(text string) (string, bool) {
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// parseRouteResult decodes the model's reply into a RouteResult. Both keys
// must be present; values are whitespace-trimmed. Errors describe what was
// wrong so callers can log the degradation.
func parseRouteResult(text string) (*RouteResult, error) {
	raw, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var fields struct {
		Source      *string `json:"source"`
		Destination *string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode route JSON: %w", err)
	}
	if fields.Source == nil || fields.Destination == nil {
		return nil, fmt.Errorf("route JSON missing source or destination key")
	}

	return &RouteResult{
		Source:      strings.TrimSpace(*fields.Source),
		Destination: strings.TrimSpace(*fields.Destination),
	}, nil
}

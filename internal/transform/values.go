package transform

import "encoding/json"

// Request and Response are the loosely-typed JSON objects exchanged with
// callers and backends. Individual transforms read whatever optional
// fields apply to their category and fall back to defaults.
type (
	Request  = map[string]any
	Response = map[string]any
)

func stringValue(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// numberValue extracts a numeric field, tolerating the types the JSON
// decoder may produce, and returns fallback when absent or non-numeric.
func numberValue(m map[string]any, key string, fallback float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return fallback
}

func intValue(m map[string]any, key string, fallback int) int {
	return int(numberValue(m, key, float64(fallback)))
}

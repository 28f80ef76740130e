package modules

import (
	"strconv"
	"strings"
	"time"
)

// Coercion is deliberately permissive: the upstream completion is
// probabilistic, so numeric strings count as numbers and absent optional
// fields fall back to sensible defaults instead of rejecting the intent.

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func strDefault(data map[string]any, key, fallback string) string {
	if s := str(data, key); s != "" {
		return s
	}
	return fallback
}

func num(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func numDefault(data map[string]any, key string, fallback float64) float64 {
	if f, ok := num(data, key); ok {
		return f
	}
	return fallback
}

func boolean(data map[string]any, key string) bool {
	switch v := data[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return false
}

func today() string {
	return time.Now().Format("2006-01-02")
}

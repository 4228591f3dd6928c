// Package engine derives dashboard views from a user's account list: the
// effective status/type of each account, firm-level finance aggregates for
// KPI cards and donut charts, and the staged phase projection behind the
// flow visualization. Every function is pure and total: inputs are never
// mutated and malformed rows degrade to defined placeholder output.
package engine

import (
	"strings"

	"propfolio/internal/models"
)

// Normalize extracts the comparable name from a status/type value. Catalog
// entries are either bare strings or {name,color} objects; anything else
// (nil, empty, unexpected shape) falls back to def. Idempotent over its own
// output.
func Normalize(v any, def string) string {
	switch val := v.(type) {
	case string:
		if val != "" {
			return val
		}
	case models.Label:
		if val.Name != "" {
			return val.Name
		}
	case *models.Label:
		if val != nil && val.Name != "" {
			return val.Name
		}
	case map[string]any:
		if name, ok := val["name"].(string); ok && name != "" {
			return name
		}
	}
	return def
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

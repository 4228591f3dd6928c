package engine

import (
	"strings"

	"propfolio/internal/models"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// Filter mirrors the dashboard's filter bar. Empty fields are unbounded.
type Filter struct {
	Category string   `json:"category"`
	Firms    []string `json:"firms"`
	Stages   []string `json:"stages"`
	From     string   `json:"from"`
	To       string   `json:"to"`
}

func (f Filter) matchCategory(a *models.Account) bool {
	if f.Category == "" || strings.EqualFold(f.Category, CategoryAll) {
		return true
	}
	return a.Category == f.Category
}

func matchSet(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, want := range allowed {
		if value == want {
			return true
		}
	}
	return false
}

// matchDate compares creation dates as ISO strings; lexicographic order is
// chronological order for that format. Bounds are inclusive.
func (f Filter) matchDate(a *models.Account) bool {
	if f.From != "" && a.Date < f.From {
		return false
	}
	if f.To != "" && a.Date > f.To {
		return false
	}
	return true
}

// ApplyFilter returns the accounts passing every active filter. The input
// slice is left untouched.
func ApplyFilter(accounts []*models.Account, f Filter) []*models.Account {
	out := make([]*models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a == nil {
			continue
		}
		if !f.matchCategory(a) || !matchSet(a.Firm, f.Firms) || !matchSet(a.AccountStage, f.Stages) || !f.matchDate(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

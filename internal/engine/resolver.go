package engine

import (
	"sort"

	"propfolio/internal/models"
)

// latestRecord picks the most recent history entry: newest date first, and on
// equal dates the record appended later (larger seq) wins. That tie-break is a
// hard contract — same-day edits must resolve to the last appended entry.
// The input slice is never reordered.
func latestRecord(records []models.AccountRecord) *models.AccountRecord {
	if len(records) == 0 {
		return nil
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := records[idx[a]], records[idx[b]]
		if ra.Date != rb.Date {
			return ra.Date > rb.Date
		}
		if ra.Seq != rb.Seq {
			return ra.Seq > rb.Seq
		}
		return idx[a] > idx[b]
	})
	return &records[idx[0]]
}

// EffectiveStatus resolves the account's current status. With no history the
// seed accountStatus field applies; otherwise the latest record's status wins
// even when it reads as a regression against earlier entries. A latest record
// with an empty status falls back to the seed field, not to an older record.
func EffectiveStatus(a *models.Account) string {
	if a == nil {
		return ""
	}
	if rec := latestRecord(a.Records); rec != nil {
		if name := Normalize(rec.Status, ""); name != "" {
			return name
		}
	}
	return Normalize(a.AccountStatus, "")
}

// EffectiveType is the same resolution over the record's type field, falling
// back to the account's seed phase label.
func EffectiveType(a *models.Account) string {
	if a == nil {
		return ""
	}
	if rec := latestRecord(a.Records); rec != nil {
		if name := Normalize(rec.Type, ""); name != "" {
			return name
		}
	}
	return Normalize(a.Phase, "")
}

package engine

import (
	"fmt"
	"sort"
	"strings"

	"propfolio/internal/models"
)

// Canonical lifecycle bucket names. Catalog status labels are matched
// case-insensitively against these.
const (
	statusActive    = "active"
	statusPassed    = "passed"
	statusFailed    = "failed"
	statusSuspended = "suspended"
	statusWithdrawn = "withdrawn"
)

// ProjectorConfig carries the stage-label markers the projector keys off.
// The markers are substrings matched case-insensitively against the
// user-configured accountStage label.
type ProjectorConfig struct {
	InstantFundingMarkers []string
	OnePhaseMarkers       []string
	MinColumns            int
}

func DefaultProjectorConfig() ProjectorConfig {
	return ProjectorConfig{
		InstantFundingMarkers: []string{"instant", "即時入金", "即时入金"},
		OnePhaseMarkers:       []string{"1-phase", "1 phase", "一階段", "一阶段"},
		MinColumns:            3,
	}
}

func (cfg ProjectorConfig) normalized() ProjectorConfig {
	def := DefaultProjectorConfig()
	if len(cfg.InstantFundingMarkers) == 0 {
		cfg.InstantFundingMarkers = def.InstantFundingMarkers
	}
	if len(cfg.OnePhaseMarkers) == 0 {
		cfg.OnePhaseMarkers = def.OnePhaseMarkers
	}
	if cfg.MinColumns <= 0 {
		cfg.MinColumns = def.MinColumns
	}
	return cfg
}

func containsMarker(label string, markers []string) bool {
	lower := strings.ToLower(label)
	for _, marker := range markers {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// PhaseBuckets classifies the accounts present in one phase column. Created
// marks every account that reached the phase and overlaps with the outcome
// buckets below it.
type PhaseBuckets struct {
	Created   []*models.Account `json:"created"`
	Active    []*models.Account `json:"active"`
	Passed    []*models.Account `json:"passed"`
	Failed    []*models.Account `json:"failed"`
	Suspended []*models.Account `json:"suspended"`
	Withdrawn []*models.Account `json:"withdrawn"`
}

func (b *PhaseBuckets) Empty() bool {
	return len(b.Created) == 0 && len(b.Active) == 0 && len(b.Passed) == 0 &&
		len(b.Failed) == 0 && len(b.Suspended) == 0 && len(b.Withdrawn) == 0
}

func (b *PhaseBuckets) add(bucket string, a *models.Account) {
	switch bucket {
	case statusActive:
		b.Active = append(b.Active, a)
	case statusPassed:
		b.Passed = append(b.Passed, a)
	case statusFailed:
		b.Failed = append(b.Failed, a)
	case statusSuspended:
		b.Suspended = append(b.Suspended, a)
	case statusWithdrawn:
		b.Withdrawn = append(b.Withdrawn, a)
	}
}

type PhaseColumn struct {
	Index   int          `json:"index"`
	Title   string       `json:"title"`
	Skipped bool         `json:"skipped"`
	Buckets PhaseBuckets `json:"buckets"`
}

// StageFlow is the projection for one firm+stage combination.
type StageFlow struct {
	Firm           string        `json:"firm"`
	Stage          string        `json:"stage"`
	Key            string        `json:"key"`
	InstantFunding bool          `json:"instantFunding"`
	Columns        []PhaseColumn `json:"columns"`
}

type PhaseProjection struct {
	MaxPhases   int         `json:"maxPhases"`
	ColumnCount int         `json:"columnCount"`
	Flows       []StageFlow `json:"flows"`
}

// ProjectPhases projects every account's history into ordered phase columns,
// grouped by firm+stage. The phase count is global: the longest record
// history across all accounts decides how many challenge columns every group
// renders, and the final column is always Funded. The layout never drops
// below MinColumns; padding columns are marked skipped.
func ProjectPhases(accounts []*models.Account, cfg ProjectorConfig) PhaseProjection {
	cfg = cfg.normalized()

	maxPhases := 0
	for _, a := range accounts {
		if a != nil && len(a.Records) > maxPhases {
			maxPhases = len(a.Records)
		}
	}
	columnCount := maxPhases + 1
	if columnCount < cfg.MinColumns {
		columnCount = cfg.MinColumns
	}
	fundedCol := columnCount - 1

	groups := map[string][]*models.Account{}
	keys := []string{}
	for _, a := range accounts {
		if a == nil {
			continue
		}
		firm := a.Firm
		if firm == "" {
			firm = UnknownLabel
		}
		stage := a.AccountStage
		if stage == "" {
			stage = UnknownLabel
		}
		key := firm + "-" + stage
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], a)
	}
	sort.Strings(keys)

	projection := PhaseProjection{
		MaxPhases:   maxPhases,
		ColumnCount: columnCount,
		Flows:       make([]StageFlow, 0, len(keys)),
	}
	for _, key := range keys {
		members := groups[key]
		first := members[0]
		firm := first.Firm
		if firm == "" {
			firm = UnknownLabel
		}
		stage := first.AccountStage
		if stage == "" {
			stage = UnknownLabel
		}
		flow := StageFlow{
			Firm:           firm,
			Stage:          stage,
			Key:            key,
			InstantFunding: containsMarker(stage, cfg.InstantFundingMarkers),
		}
		onePhase := containsMarker(stage, cfg.OnePhaseMarkers)
		for col := 0; col < columnCount; col++ {
			column := PhaseColumn{Index: col, Title: fmt.Sprintf("Phase %d", col+1)}
			if col == fundedCol {
				column.Title = "Funded"
			}
			switch {
			case flow.InstantFunding && col < fundedCol:
				column.Skipped = true
			case flow.InstantFunding:
				fillInstantFunded(&column.Buckets, members)
			case col == 0:
				fillInitialPhase(&column.Buckets, members)
			case col == fundedCol:
				fillFundedPhase(&column.Buckets, members)
			case col >= maxPhases || (onePhase && col == 1):
				column.Skipped = true
			default:
				fillChallengePhase(&column.Buckets, members, col)
			}
			flow.Columns = append(flow.Columns, column)
		}
		projection.Flows = append(projection.Flows, flow)
	}
	return projection
}

// bucketFor maps a normalized label name onto a lifecycle bucket; unknown
// names classify nowhere.
func bucketFor(name string) string {
	for _, canon := range []string{statusActive, statusPassed, statusFailed, statusSuspended, statusWithdrawn} {
		if sameName(name, canon) {
			return canon
		}
	}
	return ""
}

// Instant funding: every account lands directly in Funded, classified by its
// own seed status rather than via its record history.
func fillInstantFunded(buckets *PhaseBuckets, members []*models.Account) {
	for _, a := range members {
		buckets.Created = append(buckets.Created, a)
		buckets.add(bucketFor(Normalize(a.AccountStatus, "")), a)
	}
}

// Phase 1: every account counts as created. Accounts with history classify by
// their first record's outcome; accounts without history only get the active
// check against the seed status.
func fillInitialPhase(buckets *PhaseBuckets, members []*models.Account) {
	for _, a := range members {
		buckets.Created = append(buckets.Created, a)
		if len(a.Records) == 0 {
			if sameName(Normalize(a.AccountStatus, ""), statusActive) {
				buckets.Active = append(buckets.Active, a)
			}
			continue
		}
		switch bucket := bucketFor(Normalize(a.Records[0].Status, "")); bucket {
		case statusActive, statusPassed, statusFailed, statusSuspended:
			buckets.add(bucket, a)
		}
	}
}

// Intermediate phase col: looks at record index col-1. An account counts as
// created here only when that record is its first, or when the preceding
// record's status reads passed (it upgraded from the prior phase).
func fillChallengePhase(buckets *PhaseBuckets, members []*models.Account, col int) {
	recordIdx := col - 1
	for _, a := range members {
		if recordIdx >= len(a.Records) {
			continue
		}
		if recordIdx == 0 || sameName(Normalize(a.Records[recordIdx-1].Status, ""), statusPassed) {
			buckets.Created = append(buckets.Created, a)
		}
		switch bucket := bucketFor(Normalize(a.Records[recordIdx].Status, "")); bucket {
		case statusActive, statusPassed, statusFailed, statusSuspended:
			buckets.add(bucket, a)
		}
	}
}

// Funded: only accounts whose last history record reads passed graduate; hard
// failures and suspensions never reach this column.
func fillFundedPhase(buckets *PhaseBuckets, members []*models.Account) {
	for _, a := range members {
		if len(a.Records) == 0 {
			continue
		}
		last := a.Records[len(a.Records)-1]
		if sameName(Normalize(last.Status, ""), statusPassed) {
			buckets.Created = append(buckets.Created, a)
			buckets.Active = append(buckets.Active, a)
		}
	}
}

package engine

import (
	"testing"

	"propfolio/internal/models"
)

func staged(firm, stage, seedStatus string, recordStatuses ...string) *models.Account {
	a := &models.Account{
		Firm:          firm,
		AccountStage:  stage,
		AccountStatus: models.Label{Name: seedStatus},
	}
	for i, status := range recordStatuses {
		a.Records = append(a.Records, models.AccountRecord{
			Seq:    i,
			Date:   "2024-01-01",
			Status: models.Label{Name: status},
		})
	}
	return a
}

func contains(list []*models.Account, a *models.Account) bool {
	for _, item := range list {
		if item == a {
			return true
		}
	}
	return false
}

func singleFlow(t *testing.T, p PhaseProjection) StageFlow {
	t.Helper()
	if len(p.Flows) != 1 {
		t.Fatalf("flows = %d, want 1", len(p.Flows))
	}
	return p.Flows[0]
}

func TestProjectPhases_Empty(t *testing.T) {
	p := ProjectPhases(nil, ProjectorConfig{})
	if p.MaxPhases != 0 || p.ColumnCount != 3 || len(p.Flows) != 0 {
		t.Fatalf("got %+v, want 3 empty columns and no flows", p)
	}
}

func TestProjectPhases_Phase0Classification(t *testing.T) {
	a := staged("Apex", "2-phase challenge", "Active", "Failed")
	p := ProjectPhases([]*models.Account{a}, ProjectorConfig{})
	flow := singleFlow(t, p)
	col := flow.Columns[0]
	if !contains(col.Buckets.Created, a) {
		t.Fatalf("phase 0 created should count the account")
	}
	if !contains(col.Buckets.Failed, a) {
		t.Fatalf("phase 0 failed should count the account")
	}
	if contains(col.Buckets.Active, a) {
		t.Fatalf("phase 0 active must not count a failed account")
	}
}

func TestProjectPhases_Phase0NoRecordsActiveCheck(t *testing.T) {
	active := staged("Apex", "2-phase challenge", "Active")
	failed := staged("Apex", "2-phase challenge", "Failed")
	p := ProjectPhases([]*models.Account{active, failed}, ProjectorConfig{})
	col := singleFlow(t, p).Columns[0]
	if len(col.Buckets.Created) != 2 {
		t.Fatalf("created = %d, want both accounts", len(col.Buckets.Created))
	}
	if !contains(col.Buckets.Active, active) || contains(col.Buckets.Active, failed) {
		t.Fatalf("only the seed-active account belongs in active")
	}
	// Without records, only the active check applies at phase 0.
	if len(col.Buckets.Failed) != 0 {
		t.Fatalf("failed = %d, want 0", len(col.Buckets.Failed))
	}
}

func TestProjectPhases_CreatedRequiresUpgrade(t *testing.T) {
	passed := staged("Apex", "3-phase challenge", "Active", "Passed", "Active", "Active")
	failed := staged("Apex", "3-phase challenge", "Active", "Failed", "Active", "Active")
	p := ProjectPhases([]*models.Account{passed, failed}, ProjectorConfig{})
	flow := singleFlow(t, p)
	if p.ColumnCount != 4 {
		t.Fatalf("columnCount = %d, want 4", p.ColumnCount)
	}
	// Column 1 reads record index 0, where created is unconditional.
	col1 := flow.Columns[1]
	if !contains(col1.Buckets.Created, passed) || !contains(col1.Buckets.Created, failed) {
		t.Fatalf("first record always counts as created in its column")
	}
	// Column 2 reads record index 1: created only after an upgrade, i.e. the
	// preceding record passed.
	col2 := flow.Columns[2]
	if !contains(col2.Buckets.Created, passed) {
		t.Fatalf("account upgraded from the prior phase should count as created")
	}
	if contains(col2.Buckets.Created, failed) {
		t.Fatalf("account that failed the prior phase never counts as created")
	}
	// Both still classify by the current record's status.
	if !contains(col2.Buckets.Active, passed) || !contains(col2.Buckets.Active, failed) {
		t.Fatalf("column 2 active should classify both current records")
	}
}

func TestProjectPhases_FundedRequiresLastPassed(t *testing.T) {
	graduated := staged("Apex", "2-phase challenge", "Active", "Passed", "Passed")
	stuck := staged("Apex", "2-phase challenge", "Active", "Passed", "Failed")
	fresh := staged("Apex", "2-phase challenge", "Active")
	p := ProjectPhases([]*models.Account{graduated, stuck, fresh}, ProjectorConfig{})
	flow := singleFlow(t, p)
	funded := flow.Columns[p.ColumnCount-1]
	if funded.Title != "Funded" {
		t.Fatalf("last column title = %q, want Funded", funded.Title)
	}
	if !contains(funded.Buckets.Created, graduated) || !contains(funded.Buckets.Active, graduated) {
		t.Fatalf("graduated account belongs in funded created+active")
	}
	if contains(funded.Buckets.Created, stuck) || contains(funded.Buckets.Created, fresh) {
		t.Fatalf("failed or record-less accounts never reach funded")
	}
}

func TestProjectPhases_InstantFundingBypass(t *testing.T) {
	instant := staged("Apex", "instant funding", "Active")
	regular := staged("FTMO", "2-phase challenge", "Active", "Passed", "Passed")
	p := ProjectPhases([]*models.Account{instant, regular}, ProjectorConfig{})
	if len(p.Flows) != 2 {
		t.Fatalf("flows = %d, want 2", len(p.Flows))
	}
	var flow StageFlow
	for _, f := range p.Flows {
		if f.InstantFunding {
			flow = f
		}
	}
	if !flow.InstantFunding {
		t.Fatalf("instant funding flow not detected")
	}
	for _, col := range flow.Columns[:len(flow.Columns)-1] {
		if !col.Skipped {
			t.Fatalf("intermediate column %d should render as skipped", col.Index)
		}
	}
	funded := flow.Columns[len(flow.Columns)-1]
	if !contains(funded.Buckets.Created, instant) || !contains(funded.Buckets.Active, instant) {
		t.Fatalf("instant account classified by its own status belongs in funded active")
	}
}

func TestProjectPhases_InstantFundingWithdrawn(t *testing.T) {
	a := staged("Apex", "即時入金", "Withdrawn")
	p := ProjectPhases([]*models.Account{a}, ProjectorConfig{})
	funded := singleFlow(t, p).Columns[p.ColumnCount-1]
	if !contains(funded.Buckets.Withdrawn, a) {
		t.Fatalf("withdrawn seed status should classify into withdrawn")
	}
}

func TestProjectPhases_OnePhaseSkipsColumn1(t *testing.T) {
	one := staged("Apex", "1-phase challenge", "Active", "Passed")
	long := staged("FTMO", "3-phase challenge", "Active", "Active", "Active", "Active")
	p := ProjectPhases([]*models.Account{one, long}, ProjectorConfig{})
	var flow StageFlow
	for _, f := range p.Flows {
		if f.Stage == "1-phase challenge" {
			flow = f
		}
	}
	if !flow.Columns[1].Skipped {
		t.Fatalf("1-phase challenge must skip column index 1 regardless of maxPhases")
	}
}

func TestProjectPhases_GlobalMaxPhases(t *testing.T) {
	short := staged("Apex", "2-phase challenge", "Active", "Active")
	long := staged("FTMO", "3-phase challenge", "Active", "Passed", "Passed", "Active")
	p := ProjectPhases([]*models.Account{short, long}, ProjectorConfig{})
	if p.MaxPhases != 3 {
		t.Fatalf("maxPhases = %d, want 3 (global across groups)", p.MaxPhases)
	}
	for _, flow := range p.Flows {
		if len(flow.Columns) != p.ColumnCount {
			t.Fatalf("every group renders the same column count")
		}
	}
}

func TestProjectPhases_UnknownGroupKeys(t *testing.T) {
	a := staged("", "", "Active")
	p := ProjectPhases([]*models.Account{a}, ProjectorConfig{})
	flow := singleFlow(t, p)
	if flow.Firm != UnknownLabel || flow.Stage != UnknownLabel {
		t.Fatalf("empty firm/stage should degrade to %q, got %q/%q", UnknownLabel, flow.Firm, flow.Stage)
	}
	if flow.Key != UnknownLabel+"-"+UnknownLabel {
		t.Fatalf("key = %q", flow.Key)
	}
}

func TestProjectPhases_MinColumnsPadding(t *testing.T) {
	a := staged("Apex", "2-phase challenge", "Active", "Active")
	p := ProjectPhases([]*models.Account{a}, ProjectorConfig{})
	if p.ColumnCount != 3 {
		t.Fatalf("columnCount = %d, want padded minimum of 3", p.ColumnCount)
	}
	flow := singleFlow(t, p)
	if !flow.Columns[1].Skipped {
		t.Fatalf("padding column should render as skipped")
	}
	if !flow.Columns[1].Buckets.Empty() {
		t.Fatalf("padding column should hold no accounts")
	}
}

func TestProjectPhases_StatusObjectAndStringEquivalent(t *testing.T) {
	asString := staged("Apex", "2-phase challenge", "Active", "Failed")
	asObject := staged("Apex", "2-phase challenge", "Active")
	asObject.Records = []models.AccountRecord{
		{Seq: 0, Date: "2024-01-01", Status: models.Label{Name: "Failed", Color: "red"}},
	}
	p := ProjectPhases([]*models.Account{asString, asObject}, ProjectorConfig{})
	col := singleFlow(t, p).Columns[0]
	if len(col.Buckets.Failed) != 2 {
		t.Fatalf("failed = %d, want both shapes classified alike", len(col.Buckets.Failed))
	}
}

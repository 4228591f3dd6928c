package service

import (
	"context"
	"testing"
)

func typeNames(t *testing.T, repo *stubRepo) map[string]bool {
	t.Helper()
	out := map[string]bool{}
	for _, item := range repo.types {
		out[item.Name] = true
	}
	return out
}

func TestParseLegacyAccountTypes_StringArray(t *testing.T) {
	items, err := parseLegacyAccountTypes([]byte(`["Evaluation","Funded"]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].GroupName != LegacyTypeGroup || items[0].Name != "Evaluation" {
		t.Fatalf("items[0] = %+v", items[0])
	}
	if items[0].ID == "" {
		t.Fatalf("imported entries must get ids")
	}
}

func TestParseLegacyAccountTypes_ObjectArrayWithPhase(t *testing.T) {
	raw := []byte(`[{"name":"Eval 50K","phase":"Phase 1","config":{"maxDrawdown":2500}},{"name":"Pro","phase":"Funded","color":"emerald"}]`)
	items, err := parseLegacyAccountTypes(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Phase != "Phase 1" || len(items[0].Config) == 0 {
		t.Fatalf("items[0] = %+v, want phase and config carried", items[0])
	}
	if items[1].Color != "emerald" {
		t.Fatalf("items[1] = %+v, want color carried", items[1])
	}
}

func TestParseLegacyAccountTypes_GroupedObject(t *testing.T) {
	raw := []byte(`{"Futures":{"Phase 1":["Eval",{"name":"Pro","config":{"target":3000}}],"Funded":["Live"]},"CFD":["Swing"]}`)
	items, err := parseLegacyAccountTypes(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	byName := map[string]string{}
	for _, item := range items {
		byName[item.Name] = item.GroupName + "/" + item.Phase
	}
	if byName["Eval"] != "Futures/Phase 1" {
		t.Fatalf("Eval placed at %q", byName["Eval"])
	}
	if byName["Live"] != "Futures/Funded" {
		t.Fatalf("Live placed at %q", byName["Live"])
	}
	if byName["Swing"] != "CFD/" {
		t.Fatalf("Swing placed at %q", byName["Swing"])
	}
}

func TestParseLegacyAccountTypes_Invalid(t *testing.T) {
	for _, raw := range []string{`"just a string"`, `123`, `[{"phase":"x"}]`, `{"g":"x"}`} {
		if _, err := parseLegacyAccountTypes([]byte(raw)); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestImportLegacyTypesReplacesCatalog(t *testing.T) {
	repo := &stubRepo{}
	svc := &CatalogService{Repo: repo}
	n, err := svc.ImportLegacyTypes(context.Background(), []byte(`["A","B","C"]`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 || len(repo.types) != 3 {
		t.Fatalf("imported %d/%d, want 3", n, len(repo.types))
	}
	n, err = svc.ImportLegacyTypes(context.Background(), []byte(`["D"]`))
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if n != 1 || len(repo.types) != 1 {
		t.Fatalf("reimport should replace, got %d entries", len(repo.types))
	}
	if !typeNames(t, repo)["D"] {
		t.Fatalf("reimport lost entry D")
	}
}

func TestEnsureDefaultsSeedsOnce(t *testing.T) {
	repo := &stubRepo{}
	svc := &CatalogService{Repo: repo}
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	statuses := len(repo.statuses)
	stages := len(repo.stages)
	if statuses == 0 || stages == 0 {
		t.Fatalf("defaults not seeded: %d statuses, %d stages", statuses, stages)
	}
	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if len(repo.statuses) != statuses || len(repo.stages) != stages {
		t.Fatalf("second run must not reseed")
	}
}

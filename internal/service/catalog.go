package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"propfolio/internal/models"
	"propfolio/internal/repository"
)

// LegacyTypeGroup labels imported entries that carried no group of their own.
const LegacyTypeGroup = "default"

func defaultStatusLabels() []models.Label {
	return []models.Label{
		{Name: "Active", Color: "emerald"},
		{Name: "Passed", Color: "sky"},
		{Name: "Failed", Color: "rose"},
		{Name: "Suspended", Color: "amber"},
		{Name: "Withdrawn", Color: "slate"},
	}
}

func defaultStageNames() []string {
	return []string{"1-phase challenge", "2-phase challenge", "3-phase challenge", "instant funding"}
}

type CatalogService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// EnsureDefaults seeds the status and stage catalogs on first boot. Catalogs
// the user has already populated are left alone.
func (s *CatalogService) EnsureDefaults(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	statuses, err := s.Repo.ListStatuses(ctx)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		for _, label := range defaultStatusLabels() {
			if err := s.Repo.CreateStatus(ctx, &models.AccountStatusEntry{Label: label}); err != nil {
				return err
			}
		}
		if s.Logger != nil {
			s.Logger.Info("seeded default account statuses", zap.Int("count", len(defaultStatusLabels())))
		}
	}
	stages, err := s.Repo.ListStages(ctx)
	if err != nil {
		return err
	}
	if len(stages) == 0 {
		for _, name := range defaultStageNames() {
			if err := s.Repo.CreateStage(ctx, &models.AccountStage{Name: name}); err != nil {
				return err
			}
		}
		if s.Logger != nil {
			s.Logger.Info("seeded default account stages", zap.Int("count", len(defaultStageNames())))
		}
	}
	return nil
}

// ImportLegacyTypes replaces the account-type catalog with entries parsed
// from any of the three historical export shapes. Returns the number of
// imported entries.
func (s *CatalogService) ImportLegacyTypes(ctx context.Context, raw []byte) (int, error) {
	if s == nil || s.Repo == nil {
		return 0, nil
	}
	items, err := parseLegacyAccountTypes(raw)
	if err != nil {
		return 0, err
	}
	err = s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.Repo.ReplaceAccountTypesTx(ctx, tx, items)
	})
	if err != nil {
		return 0, err
	}
	if s.Logger != nil {
		s.Logger.Info("imported account types", zap.Int("count", len(items)))
	}
	return len(items), nil
}

type legacyTypeObject struct {
	Name   string          `json:"name"`
	Phase  string          `json:"phase"`
	Group  string          `json:"group"`
	Color  string          `json:"color"`
	Config json.RawMessage `json:"config"`
}

func (o legacyTypeObject) toModel(group, phase string) models.AccountType {
	if o.Group != "" {
		group = o.Group
	}
	if o.Phase != "" {
		phase = o.Phase
	}
	item := models.AccountType{
		ID:        uuid.NewString(),
		GroupName: group,
		Phase:     phase,
		Name:      o.Name,
		Color:     o.Color,
	}
	if len(o.Config) > 0 {
		item.Config = datatypes.JSON(o.Config)
	}
	return item
}

// parseLegacyAccountTypes accepts the three shapes observed in historical
// exports: a bare string array, an array of objects with per-entry phase, or
// a grouped object mapping group -> phase -> entry list. Everything maps onto
// the canonical group/phase/name rows.
func parseLegacyAccountTypes(raw []byte) ([]models.AccountType, error) {
	var asArray []json.RawMessage
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return parseTypeEntries(asArray, LegacyTypeGroup, "")
	}
	var asGroups map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asGroups); err != nil {
		return nil, fmt.Errorf("account types: unrecognized catalog shape: %w", err)
	}
	items := []models.AccountType{}
	for group, groupRaw := range asGroups {
		var phases map[string][]json.RawMessage
		if err := json.Unmarshal(groupRaw, &phases); err != nil {
			// A group may also map straight to an entry list without the
			// phase level.
			var entries []json.RawMessage
			if err := json.Unmarshal(groupRaw, &entries); err != nil {
				return nil, fmt.Errorf("account types: group %q: unrecognized shape", group)
			}
			parsed, err := parseTypeEntries(entries, group, "")
			if err != nil {
				return nil, err
			}
			items = append(items, parsed...)
			continue
		}
		for phase, entries := range phases {
			parsed, err := parseTypeEntries(entries, group, phase)
			if err != nil {
				return nil, err
			}
			items = append(items, parsed...)
		}
	}
	return items, nil
}

func parseTypeEntries(entries []json.RawMessage, group, phase string) ([]models.AccountType, error) {
	items := make([]models.AccountType, 0, len(entries))
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			items = append(items, legacyTypeObject{Name: name}.toModel(group, phase))
			continue
		}
		var obj legacyTypeObject
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, fmt.Errorf("account types: entry %s: %w", string(entry), err)
		}
		if obj.Name == "" {
			return nil, fmt.Errorf("account types: entry %s: missing name", string(entry))
		}
		items = append(items, obj.toModel(group, phase))
	}
	return items, nil
}

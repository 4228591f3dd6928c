package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"propfolio/internal/models"
	"propfolio/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// It implements the full interface but only the subset the service tests
// exercise does anything interesting.
type stubRepo struct {
	accounts  []*models.Account
	statuses  []models.AccountStatusEntry
	stages    []models.AccountStage
	types     []models.AccountType
	snapshots []models.StatsSnapshot
	listErr   error
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func (s *stubRepo) CreateAccount(ctx context.Context, item *models.Account) error {
	s.accounts = append(s.accounts, item)
	return nil
}
func (s *stubRepo) UpdateAccount(ctx context.Context, item *models.Account) error { return nil }
func (s *stubRepo) DeleteAccount(ctx context.Context, id string) error            { return nil }
func (s *stubRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) ListAccounts(ctx context.Context, params repository.ListAccountsParams) ([]*models.Account, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.accounts, nil
}
func (s *stubRepo) CountAccounts(ctx context.Context, params repository.ListAccountsParams) (int64, error) {
	return int64(len(s.accounts)), nil
}

func (s *stubRepo) AddAccountRecord(ctx context.Context, accountID string, item *models.AccountRecord) error {
	return nil
}
func (s *stubRepo) DeleteAccountRecord(ctx context.Context, accountID string, seq int) error {
	return nil
}
func (s *stubRepo) AddPayout(ctx context.Context, accountID string, item *models.Payout) error {
	return nil
}
func (s *stubRepo) DeletePayout(ctx context.Context, accountID string, seq int) error { return nil }

func (s *stubRepo) ListFirms(ctx context.Context) ([]models.Firm, error)      { return nil, nil }
func (s *stubRepo) CreateFirm(ctx context.Context, item *models.Firm) error   { return nil }
func (s *stubRepo) DeleteFirm(ctx context.Context, id uint64) error           { return nil }
func (s *stubRepo) ListStages(ctx context.Context) ([]models.AccountStage, error) {
	return s.stages, nil
}
func (s *stubRepo) CreateStage(ctx context.Context, item *models.AccountStage) error {
	s.stages = append(s.stages, *item)
	return nil
}
func (s *stubRepo) DeleteStage(ctx context.Context, id uint64) error              { return nil }
func (s *stubRepo) ListSizes(ctx context.Context) ([]models.AccountSize, error)   { return nil, nil }
func (s *stubRepo) CreateSize(ctx context.Context, item *models.AccountSize) error { return nil }
func (s *stubRepo) DeleteSize(ctx context.Context, id uint64) error               { return nil }
func (s *stubRepo) ListStatuses(ctx context.Context) ([]models.AccountStatusEntry, error) {
	return s.statuses, nil
}
func (s *stubRepo) CreateStatus(ctx context.Context, item *models.AccountStatusEntry) error {
	s.statuses = append(s.statuses, *item)
	return nil
}
func (s *stubRepo) DeleteStatus(ctx context.Context, id uint64) error { return nil }
func (s *stubRepo) ListAccountTypes(ctx context.Context) ([]models.AccountType, error) {
	return s.types, nil
}
func (s *stubRepo) ReplaceAccountTypesTx(ctx context.Context, tx *gorm.DB, items []models.AccountType) error {
	s.types = items
	return nil
}
func (s *stubRepo) CreateAccountType(ctx context.Context, item *models.AccountType) error {
	s.types = append(s.types, *item)
	return nil
}
func (s *stubRepo) DeleteAccountType(ctx context.Context, id string) error { return nil }

func (s *stubRepo) InsertStatsSnapshot(ctx context.Context, item *models.StatsSnapshot) error {
	s.snapshots = append(s.snapshots, *item)
	return nil
}
func (s *stubRepo) ListStatsSnapshots(ctx context.Context, params repository.ListSnapshotsParams) ([]models.StatsSnapshot, error) {
	return s.snapshots, nil
}
func (s *stubRepo) DeleteStatsSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	kept := s.snapshots[:0]
	var removed int64
	for _, snap := range s.snapshots {
		if snap.TakenAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, snap)
	}
	s.snapshots = kept
	return removed, nil
}

var _ repository.Repository = (*stubRepo)(nil)

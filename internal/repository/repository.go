package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"propfolio/internal/models"
)

type ListAccountsParams struct {
	Category *string
	Firms    []string
	Stages   []string
	From     *string
	To       *string
	Limit    int
	Offset   int
	OrderBy  string
	Asc      *bool
}

type ListSnapshotsParams struct {
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

// Repository is the persistence boundary. The stats services read through it
// and hand already-fetched account lists to the engine; the engine itself
// never touches storage.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Accounts (records and payouts preloaded in seq order).
	CreateAccount(ctx context.Context, item *models.Account) error
	UpdateAccount(ctx context.Context, item *models.Account) error
	DeleteAccount(ctx context.Context, id string) error
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	ListAccounts(ctx context.Context, params ListAccountsParams) ([]*models.Account, error)
	CountAccounts(ctx context.Context, params ListAccountsParams) (int64, error)

	AddAccountRecord(ctx context.Context, accountID string, item *models.AccountRecord) error
	DeleteAccountRecord(ctx context.Context, accountID string, seq int) error
	AddPayout(ctx context.Context, accountID string, item *models.Payout) error
	DeletePayout(ctx context.Context, accountID string, seq int) error

	// Catalogs.
	ListFirms(ctx context.Context) ([]models.Firm, error)
	CreateFirm(ctx context.Context, item *models.Firm) error
	DeleteFirm(ctx context.Context, id uint64) error
	ListStages(ctx context.Context) ([]models.AccountStage, error)
	CreateStage(ctx context.Context, item *models.AccountStage) error
	DeleteStage(ctx context.Context, id uint64) error
	ListSizes(ctx context.Context) ([]models.AccountSize, error)
	CreateSize(ctx context.Context, item *models.AccountSize) error
	DeleteSize(ctx context.Context, id uint64) error
	ListStatuses(ctx context.Context) ([]models.AccountStatusEntry, error)
	CreateStatus(ctx context.Context, item *models.AccountStatusEntry) error
	DeleteStatus(ctx context.Context, id uint64) error
	ListAccountTypes(ctx context.Context) ([]models.AccountType, error)
	ReplaceAccountTypesTx(ctx context.Context, tx *gorm.DB, items []models.AccountType) error
	CreateAccountType(ctx context.Context, item *models.AccountType) error
	DeleteAccountType(ctx context.Context, id string) error

	// Snapshots.
	InsertStatsSnapshot(ctx context.Context, item *models.StatsSnapshot) error
	ListStatsSnapshots(ctx context.Context, params ListSnapshotsParams) ([]models.StatsSnapshot, error)
	DeleteStatsSnapshotsBefore(ctx context.Context, before time.Time) (int64, error)
}

package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"propfolio/internal/models"
	"propfolio/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- accounts ---------------------------------------------------------------

func preloadAccount(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }).
		Preload("Payouts", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") })
}

func (s *Store) CreateAccount(ctx context.Context, item *models.Account) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateAccount(ctx context.Context, item *models.Account) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", item.ID).
		Select("date", "firm", "category", "account_stage", "phase", "size", "base_cost", "account_status", "notes").
		Updates(item).Error
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	if s == nil || s.db == nil || id == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.AccountRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&models.Payout{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Account{}).Error
	})
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Account
	err := preloadAccount(s.db.WithContext(ctx)).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func applyAccountFilters(query *gorm.DB, params repository.ListAccountsParams) *gorm.DB {
	if params.Category != nil && strings.TrimSpace(*params.Category) != "" {
		query = query.Where("category = ?", strings.TrimSpace(*params.Category))
	}
	if len(params.Firms) > 0 {
		query = query.Where("firm IN ?", params.Firms)
	}
	if len(params.Stages) > 0 {
		query = query.Where("account_stage IN ?", params.Stages)
	}
	if params.From != nil && *params.From != "" {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil && *params.To != "" {
		query = query.Where("date <= ?", *params.To)
	}
	return query
}

func (s *Store) ListAccounts(ctx context.Context, params repository.ListAccountsParams) ([]*models.Account, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyAccountFilters(s.db.WithContext(ctx).Model(&models.Account{}), params)
	query = applyOrder(query, accountSortColumn(params.OrderBy), params.Asc)
	// Limit 0 means everything: the stats services recompute over the full
	// list, which stays at user scale.
	if params.Limit > 0 {
		query = query.Limit(params.Limit).Offset(normalizeOffset(params.Offset))
	}
	var items []*models.Account
	if err := preloadAccount(query).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountAccounts(ctx context.Context, params repository.ListAccountsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	err := applyAccountFilters(s.db.WithContext(ctx).Model(&models.Account{}), params).Count(&total).Error
	return total, err
}

func (s *Store) AddAccountRecord(ctx context.Context, accountID string, item *models.AccountRecord) error {
	if s == nil || s.db == nil || item == nil || accountID == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.AccountRecord{}, accountID)
		if err != nil {
			return err
		}
		item.AccountID = accountID
		item.Seq = seq
		return tx.Create(item).Error
	})
}

func (s *Store) DeleteAccountRecord(ctx context.Context, accountID string, seq int) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("account_id = ? AND seq = ?", accountID, seq).
		Delete(&models.AccountRecord{}).Error
}

func (s *Store) AddPayout(ctx context.Context, accountID string, item *models.Payout) error {
	if s == nil || s.db == nil || item == nil || accountID == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Payout{}, accountID)
		if err != nil {
			return err
		}
		item.AccountID = accountID
		item.Seq = seq
		return tx.Create(item).Error
	})
}

func (s *Store) DeletePayout(ctx context.Context, accountID string, seq int) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("account_id = ? AND seq = ?", accountID, seq).
		Delete(&models.Payout{}).Error
}

// nextSeq keeps the append order explicit; the resolver's same-date tie-break
// sorts on it. Gaps left by deletions are fine, only order matters.
func nextSeq(tx *gorm.DB, model any, accountID string) (int, error) {
	var max *int
	err := tx.Model(model).
		Where("account_id = ?", accountID).
		Select("MAX(seq)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// --- catalogs ---------------------------------------------------------------

func (s *Store) ListFirms(ctx context.Context) ([]models.Firm, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Firm
	if err := s.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateFirm(ctx context.Context, item *models.Firm) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeleteFirm(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Firm{}).Error
}

func (s *Store) ListStages(ctx context.Context) ([]models.AccountStage, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.AccountStage
	if err := s.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateStage(ctx context.Context, item *models.AccountStage) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeleteStage(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AccountStage{}).Error
}

func (s *Store) ListSizes(ctx context.Context) ([]models.AccountSize, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.AccountSize
	if err := s.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateSize(ctx context.Context, item *models.AccountSize) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeleteSize(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AccountSize{}).Error
}

func (s *Store) ListStatuses(ctx context.Context) ([]models.AccountStatusEntry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.AccountStatusEntry
	if err := s.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateStatus(ctx context.Context, item *models.AccountStatusEntry) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeleteStatus(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AccountStatusEntry{}).Error
}

func (s *Store) ListAccountTypes(ctx context.Context) ([]models.AccountType, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.AccountType
	if err := s.db.WithContext(ctx).Order("group_name asc, phase asc, name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ReplaceAccountTypesTx(ctx context.Context, tx *gorm.DB, items []models.AccountType) error {
	if tx == nil {
		if s == nil || s.db == nil {
			return nil
		}
		tx = s.db.WithContext(ctx)
	}
	if err := tx.Where("1 = 1").Delete(&models.AccountType{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.CreateInBatches(items, 100).Error
}

func (s *Store) CreateAccountType(ctx context.Context, item *models.AccountType) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) DeleteAccountType(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AccountType{}).Error
}

// --- snapshots --------------------------------------------------------------

func (s *Store) InsertStatsSnapshot(ctx context.Context, item *models.StatsSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListStatsSnapshots(ctx context.Context, params repository.ListSnapshotsParams) ([]models.StatsSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.StatsSnapshot{})
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("taken_at >= ?", *params.Since)
	}
	if params.Until != nil && !params.Until.IsZero() {
		query = query.Where("taken_at <= ?", *params.Until)
	}
	limit := normalizeLimit(params.Limit, 365)
	var items []models.StatsSnapshot
	err := query.Order("taken_at desc").
		Limit(limit).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteStatsSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if before.IsZero() {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("taken_at < ?", before).
		Delete(&models.StatsSnapshot{})
	return res.RowsAffected, res.Error
}

// --- helpers ----------------------------------------------------------------

// accountSortColumn maps a caller-supplied sort key onto a known column. The
// column ends up concatenated into the ORDER BY clause, so anything outside
// the allowlist falls back to date.
func accountSortColumn(orderBy string) string {
	switch strings.TrimSpace(orderBy) {
	case "date", "firm", "category", "account_stage", "size", "base_cost", "created_at":
		return strings.TrimSpace(orderBy)
	default:
		return "date"
	}
}

func applyOrder(query *gorm.DB, column string, asc *bool) *gorm.DB {
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

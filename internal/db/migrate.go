package db

import (
	"propfolio/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Account{},
		&models.AccountRecord{},
		&models.Payout{},
		&models.Firm{},
		&models.AccountStage{},
		&models.AccountSize{},
		&models.AccountStatusEntry{},
		&models.AccountType{},
		&models.StatsSnapshot{},
	)
}

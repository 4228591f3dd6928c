package models

import (
	"time"

	"gorm.io/datatypes"
)

// User-configurable catalogs. The engine only reads individual entries from
// these; it never owns or mutates them.

type Firm struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null;comment:自營商名稱" json:"name"`
	Type      string    `gorm:"type:text;comment:類別(Futures/CFD)" json:"type"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (Firm) TableName() string {
	return "firms"
}

type AccountStage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null;comment:挑戰結構標籤" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (AccountStage) TableName() string {
	return "account_stages"
}

type AccountSize struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null;comment:帳戶規模" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (AccountSize) TableName() string {
	return "account_sizes"
}

type AccountStatusEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Label     Label     `gorm:"type:jsonb;not null;comment:狀態標籤" json:"label"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (AccountStatusEntry) TableName() string {
	return "account_statuses"
}

// AccountType is the canonical account-type catalog entry: group -> phase ->
// named type with optional trading-rule parameters. Three legacy shapes are
// migrated into this at the import boundary.
type AccountType struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	GroupName string         `gorm:"type:text;index;not null;comment:類型分組" json:"group"`
	Phase     string         `gorm:"type:text;index;comment:所屬階段" json:"phase"`
	Name      string         `gorm:"type:text;not null;comment:類型名稱" json:"name"`
	Color     string         `gorm:"type:text;comment:顏色標籤" json:"color,omitempty"`
	Config    datatypes.JSON `gorm:"type:jsonb;comment:交易規則參數" json:"config,omitempty"`
	CreatedAt time.Time      `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (AccountType) TableName() string {
	return "account_types"
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// StatsSnapshot is a daily KPI rollup taken by the cron job, used for the
// history chart on the dashboard.
type StatsSnapshot struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	TakenAt       time.Time       `gorm:"type:timestamptz;not null;index;comment:快照時間" json:"takenAt"`
	AccountCount  int             `gorm:"not null;comment:帳戶數" json:"accountCount"`
	TotalExpenses decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:總支出" json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:總收入" json:"totalRevenue"`
	NetProfit     decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:淨利" json:"netProfit"`
	ROI           decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:投報率(%)" json:"roi"`
	Detail        datatypes.JSON  `gorm:"type:jsonb;comment:各商明細" json:"detail,omitempty"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}

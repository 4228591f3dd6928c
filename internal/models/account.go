package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Arrived flag values on a payout. The source data uses the literal Chinese
// yes/no strings; empty means the transfer is still pending.
const (
	ArrivedYes = "是"
	ArrivedNo  = "否"
)

type Account struct {
	ID            string          `gorm:"primaryKey;type:text;comment:帳戶唯一標識" json:"id"`
	Date          string          `gorm:"type:text;not null;index;comment:建立日期(ISO)" json:"date"`
	Firm          string          `gorm:"type:text;index;comment:自營商名稱" json:"firm"`
	Category      string          `gorm:"type:text;index;comment:資產類別" json:"category"`
	AccountStage  string          `gorm:"type:text;index;comment:挑戰結構標籤" json:"accountStage"`
	Phase         Label           `gorm:"type:jsonb;comment:帳戶類型(種子值)" json:"phase"`
	Size          string          `gorm:"type:text;comment:帳戶規模" json:"size"`
	BaseCost      decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:購入成本" json:"baseCost"`
	AccountStatus Label           `gorm:"type:jsonb;comment:帳戶狀態(種子值)" json:"accountStatus"`
	Notes         string          `gorm:"type:text;comment:備註" json:"notes,omitempty"`

	Records []AccountRecord `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"accountRecords"`
	Payouts []Payout        `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"payouts"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountRecord is one status/type/cost mutation in an account's history.
// Seq is assigned at append time and preserves the original array order; the
// resolver's same-date tie-break depends on it.
type AccountRecord struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement" json:"-"`
	AccountID string          `gorm:"type:text;not null;index;comment:所屬帳戶" json:"-"`
	Seq       int             `gorm:"not null;comment:追加順序" json:"seq"`
	Date      string          `gorm:"type:text;not null;comment:變更日期(ISO)" json:"date"`
	Status    Label           `gorm:"type:jsonb;comment:變更後狀態" json:"status"`
	Type      Label           `gorm:"type:jsonb;comment:變更後類型" json:"type"`
	Number    string          `gorm:"type:text;comment:帳號標籤" json:"number,omitempty"`
	ExtraCost decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:追加成本" json:"extraCost"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
}

func (AccountRecord) TableName() string {
	return "account_records"
}

type Payout struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"-"`
	AccountID   string          `gorm:"type:text;not null;index;comment:所屬帳戶" json:"-"`
	Seq         int             `gorm:"not null;comment:追加順序" json:"seq"`
	Date        string          `gorm:"type:text;not null;comment:申請日期(ISO)" json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,6);not null;comment:出金金額" json:"amount"`
	ArrivalDate string          `gorm:"type:text;comment:到帳日期" json:"arrivalDate,omitempty"`
	Arrived     string          `gorm:"type:text;comment:是否到帳(是/否/空)" json:"arrived"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
}

func (Payout) TableName() string {
	return "payouts"
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	AccountNumber string          `gorm:"primaryKey;size:64"`
	Balance       decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Statement represents one persisted statement entry. ID is assigned by the
// database and orders entries that share OccurredAt.
type Statement struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	AccountNumber    string          `gorm:"size:64;not null;index:idx_statements_account_occurred,priority:1"`
	OccurredAt       time.Time       `gorm:"not null;index:idx_statements_account_occurred,priority:2"`
	Description      string          `gorm:"size:255;not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	ResultingBalance decimal.Decimal `gorm:"type:numeric(38,18);not null"`
}

// TableName specifies the table name for the Statement model.
func (Statement) TableName() string {
	return "statements"
}

// FeeSetting is one key/value row of fee configuration.
type FeeSetting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"size:64;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for the FeeSetting model.
func (FeeSetting) TableName() string {
	return "fee_settings"
}

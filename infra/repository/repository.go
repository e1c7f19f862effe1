package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// GetBalance returns nil without error when the account does not exist.
func (r *accountRepository) GetBalance(ctx context.Context, accountNumber string) (*decimal.Decimal, error) {
	return r.balance(r.db.WithContext(ctx), accountNumber)
}

// GetBalanceForUpdate reads the balance with SELECT ... FOR UPDATE. The row lock is
// held until the surrounding transaction ends.
func (r *accountRepository) GetBalanceForUpdate(ctx context.Context, accountNumber string) (*decimal.Decimal, error) {
	return r.balance(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		accountNumber,
	)
}

func (r *accountRepository) balance(db *gorm.DB, accountNumber string) (*decimal.Decimal, error) {
	var acct Account
	err := db.Where("account_number = ?", accountNumber).Take(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &acct.Balance, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", accountNumber).
		Update("balance", balance)
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]account.Account, error) {
	var rows []Account
	if err := r.db.WithContext(ctx).Order("account_number").Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]account.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, account.Account{Number: row.AccountNumber, Balance: row.Balance})
	}
	return out, nil
}

func (r *accountRepository) Create(ctx context.Context, acct account.Account) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&Account{
			AccountNumber: acct.Number,
			Balance:       acct.Balance,
		}).Error
	})
}

type statementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new StatementRepository with the provided database connection.
func NewStatementRepository(db *gorm.DB) repository.StatementRepository {
	return &statementRepository{db: db}
}

func (r *statementRepository) Save(
	ctx context.Context,
	accountNumber string,
	timestamp time.Time,
	description string,
	amount decimal.Decimal,
	resultingBalance decimal.Decimal,
) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).Create(&Statement{
			AccountNumber:    accountNumber,
			OccurredAt:       timestamp.UTC(),
			Description:      description,
			Amount:           amount,
			ResultingBalance: resultingBalance,
		}).Error
	})
}

func (r *statementRepository) ListByAccount(ctx context.Context, accountNumber string) ([]account.StatementEntry, error) {
	var rows []Statement
	err := r.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		Order("occurred_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	out := make([]account.StatementEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, account.StatementEntry{
			Sequence:         row.ID,
			AccountNumber:    row.AccountNumber,
			Timestamp:        row.OccurredAt.UTC(),
			Description:      row.Description,
			Amount:           row.Amount,
			ResultingBalance: row.ResultingBalance,
		})
	}
	return out, nil
}

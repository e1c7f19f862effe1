package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/fee"
	"gorm.io/gorm"
)

// FeeSettingsSource reads fee values from the fee_settings table. Every lookup is a
// fresh query, so edits to the table apply to the next operation.
type FeeSettingsSource struct {
	db *gorm.DB
}

// NewFeeSettingsSource creates a fee.Source backed by db.
func NewFeeSettingsSource(db *gorm.DB) *FeeSettingsSource {
	return &FeeSettingsSource{db: db}
}

// Lookup implements fee.Source. Inside a unit of work (ctx bound by
// UoW.BindContext) the query runs on the scope's transaction.
func (s *FeeSettingsSource) Lookup(ctx context.Context, key string) (string, bool, error) {
	var row FeeSetting
	err := sessionFrom(ctx, s.db).WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, MapGormErrorToDomain(err)
	}
	return strings.TrimSpace(row.Value), true, nil
}

// Set upserts a fee value.
func (s *FeeSettingsSource) Set(ctx context.Context, key, value string) error {
	return WrapError(func() error {
		return s.db.WithContext(ctx).Save(&FeeSetting{Key: key, Value: value}).Error
	})
}

var _ fee.Source = (*FeeSettingsSource)(nil)

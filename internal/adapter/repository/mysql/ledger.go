package mysql

import (
	"context"
	"errors"
	"time"

	"nexachain-backend/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccrualRepository backs the daily-return ledger. The claim step leans on
// the ux_accruals_claim unique index: the INSERT either wins the key or
// collides, and a collision resolves to the existing row. Requires the gorm
// connection to be opened with TranslateError so duplicate-key surfaces as
// gorm.ErrDuplicatedKey on every dialect.
type AccrualRepository struct{ db *gorm.DB }

func NewAccrualRepository(db *gorm.DB) *AccrualRepository { return &AccrualRepository{db: db} }

func (r *AccrualRepository) Claim(ctx context.Context, rec *ledger.AccrualRecord) (*ledger.AccrualRecord, error) {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	// Another invocation holds this key; its row is the record of truth.
	var existing ledger.AccrualRecord
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND investment_id = ? AND day = ?", rec.UserID, rec.InvestmentID, rec.Day).
		First(&existing)
	if res.Error != nil {
		return nil, res.Error
	}
	return &existing, nil
}

func (r *AccrualRepository) GetForUpdate(ctx context.Context, id uint64) (*ledger.AccrualRecord, error) {
	var out ledger.AccrualRecord
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *AccrualRepository) MarkPosted(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&ledger.AccrualRecord{}).
		Where("id = ?", id).
		Update("posted", true).Error
}

func (r *AccrualRepository) ListPostedByDay(ctx context.Context, day time.Time) ([]ledger.AccrualRecord, error) {
	var out []ledger.AccrualRecord
	res := r.db.WithContext(ctx).
		Where("day = ? AND posted = ?", day, true).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// CommissionRepository mirrors AccrualRepository for the commission ledger.
type CommissionRepository struct{ db *gorm.DB }

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

func (r *CommissionRepository) Claim(ctx context.Context, rec *ledger.CommissionRecord) (*ledger.CommissionRecord, error) {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	var existing ledger.CommissionRecord
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND investment_id = ? AND day = ?", rec.UserID, rec.InvestmentID, rec.Day).
		First(&existing)
	if res.Error != nil {
		return nil, res.Error
	}
	return &existing, nil
}

func (r *CommissionRepository) GetForUpdate(ctx context.Context, id uint64) (*ledger.CommissionRecord, error) {
	var out ledger.CommissionRecord
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *CommissionRepository) MarkPosted(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&ledger.CommissionRecord{}).
		Where("id = ?", id).
		Update("posted", true).Error
}

func (r *CommissionRepository) ListByDay(ctx context.Context, day time.Time) ([]ledger.CommissionRecord, error) {
	var out []ledger.CommissionRecord
	res := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

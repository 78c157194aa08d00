package mysql

import (
	"context"
	"errors"
	"time"

	invDomain "nexachain-backend/internal/domain/investment"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, invDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InvestmentRepository) ListByUserID(ctx context.Context, userID string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListActiveOn(ctx context.Context, day time.Time) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", invDomain.StatusActive, day, day).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) AddReturnEarned(ctx context.Context, investmentID string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Where("investment_id = ?", investmentID).
		Update("total_return_earned", gorm.Expr("total_return_earned + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return invDomain.ErrNotFound
	}
	return nil
}

func (r *InvestmentRepository) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Where("status = ? AND end_date < ?", invDomain.StatusActive, day).
		Update("status", invDomain.StatusCompleted)
	return res.RowsAffected, res.Error
}

package mysql

import (
	"context"
	"errors"

	userDomain "nexachain-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *UserRepository) ReferrerOf(ctx context.Context, userID string) (string, error) {
	u, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.ReferrerID == nil {
		return "", nil
	}
	return *u.ReferrerID, nil
}

func (r *UserRepository) AddEarnings(ctx context.Context, userID string, amount float64) error {
	return r.increment(ctx, userID, amount, false)
}

func (r *UserRepository) AddReferralIncome(ctx context.Context, userID string, amount float64) error {
	return r.increment(ctx, userID, amount, true)
}

// increment applies the balance/lifetime counters in one UPDATE so the
// write commutes with concurrent increments from other records.
func (r *UserRepository) increment(ctx context.Context, userID string, amount float64, referral bool) error {
	cols := map[string]any{
		"balance":        gorm.Expr("balance + ?", amount),
		"total_earnings": gorm.Expr("total_earnings + ?", amount),
	}
	if referral {
		cols["total_referral_income"] = gorm.Expr("total_referral_income + ?", amount)
	}
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("user_id = ?", userID).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userDomain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CreateReferralEdge(ctx context.Context, e *userDomain.ReferralEdge) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *UserRepository) ListReferralEdgesByReferred(ctx context.Context, referredID string) ([]userDomain.ReferralEdge, error) {
	var out []userDomain.ReferralEdge
	res := r.db.WithContext(ctx).
		Where("referred_id = ?", referredID).
		Order("level ASC").
		Find(&out)
	return out, res.Error
}

package investmentmock

import (
	"context"
	"time"

	domain "nexachain-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListByUserIDFn      func(ctx context.Context, userID string) ([]domain.Investment, error)
	ListActiveOnFn      func(ctx context.Context, day time.Time) ([]domain.Investment, error)
	AddReturnEarnedFn   func(ctx context.Context, investmentID string, amount float64) error
	CompleteExpiredFn   func(ctx context.Context, day time.Time) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Investment, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListActiveOn(ctx context.Context, day time.Time) ([]domain.Investment, error) {
	if m.ListActiveOnFn != nil {
		return m.ListActiveOnFn(ctx, day)
	}
	return nil, nil
}

func (m *Repo) AddReturnEarned(ctx context.Context, investmentID string, amount float64) error {
	if m.AddReturnEarnedFn != nil {
		return m.AddReturnEarnedFn(ctx, investmentID, amount)
	}
	return nil
}

func (m *Repo) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	if m.CompleteExpiredFn != nil {
		return m.CompleteExpiredFn(ctx, day)
	}
	return 0, nil
}

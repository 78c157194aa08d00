package usermock

import (
	"context"

	domain "nexachain-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies user.Repository.
// Only the function fields a test fills in are exercised.
type Repo struct {
	CreateFn                      func(ctx context.Context, u *domain.User) error
	GetByUserIDFn                 func(ctx context.Context, userID string) (*domain.User, error)
	ReferrerOfFn                  func(ctx context.Context, userID string) (string, error)
	AddEarningsFn                 func(ctx context.Context, userID string, amount float64) error
	AddReferralIncomeFn           func(ctx context.Context, userID string, amount float64) error
	CreateReferralEdgeFn          func(ctx context.Context, e *domain.ReferralEdge) error
	ListReferralEdgesByReferredFn func(ctx context.Context, referredID string) ([]domain.ReferralEdge, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ReferrerOf(ctx context.Context, userID string) (string, error) {
	if m.ReferrerOfFn != nil {
		return m.ReferrerOfFn(ctx, userID)
	}
	return "", domain.ErrNotFound
}

func (m *Repo) AddEarnings(ctx context.Context, userID string, amount float64) error {
	if m.AddEarningsFn != nil {
		return m.AddEarningsFn(ctx, userID, amount)
	}
	return nil
}

func (m *Repo) AddReferralIncome(ctx context.Context, userID string, amount float64) error {
	if m.AddReferralIncomeFn != nil {
		return m.AddReferralIncomeFn(ctx, userID, amount)
	}
	return nil
}

func (m *Repo) CreateReferralEdge(ctx context.Context, e *domain.ReferralEdge) error {
	if m.CreateReferralEdgeFn != nil {
		return m.CreateReferralEdgeFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListReferralEdgesByReferred(ctx context.Context, referredID string) ([]domain.ReferralEdge, error) {
	if m.ListReferralEdgesByReferredFn != nil {
		return m.ListReferralEdgesByReferredFn(ctx, referredID)
	}
	return nil, nil
}

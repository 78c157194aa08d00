package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)

	// ReferrerOf resolves the single upward hop of the referral chain.
	// Returns ("", ErrNotFound) when the user does not exist and ("", nil)
	// when the user exists but has no referrer.
	ReferrerOf(ctx context.Context, userID string) (string, error)

	// AddEarnings increments balance and total_earnings by amount.
	AddEarnings(ctx context.Context, userID string, amount float64) error
	// AddReferralIncome increments balance, total_earnings and
	// total_referral_income by amount.
	AddReferralIncome(ctx context.Context, userID string, amount float64) error

	CreateReferralEdge(ctx context.Context, e *ReferralEdge) error
	ListReferralEdgesByReferred(ctx context.Context, referredID string) ([]ReferralEdge, error)
}

package investment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	ListByUserID(ctx context.Context, userID string) ([]Investment, error)

	// ListActiveOn returns active investments whose accrual window covers
	// day (start_date <= day <= end_date).
	ListActiveOn(ctx context.Context, day time.Time) ([]Investment, error)

	// AddReturnEarned increments total_return_earned by amount.
	AddReturnEarned(ctx context.Context, investmentID string, amount float64) error

	// CompleteExpired transitions active investments with end_date < day to
	// completed and reports how many rows changed.
	CompleteExpired(ctx context.Context, day time.Time) (int64, error)
}

package useruc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/domain/user"
	"nexachain-backend/pkg/id"
)

// Usecase owns user creation and, with it, the referral-graph invariants:
// edges are written once here, the chain is acyclic by construction (a new
// user has no descendants), and self-referral is rejected outright.
type Usecase struct {
	users user.Repository
}

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

type RegisterInput struct {
	// Optional public id of the direct referrer.
	ReferrerID string `json:"referrer_id"`
}

type UserDTO struct {
	UserID              string    `json:"user_id"`
	ReferrerID          string    `json:"referrer_id,omitempty"`
	Balance             float64   `json:"balance"`
	TotalEarnings       float64   `json:"total_earnings"`
	TotalReferralIncome float64   `json:"total_referral_income"`
	CreatedAt           time.Time `json:"created_at"`
}

// Register creates a user and records one ReferralEdge per ancestor up to
// plan.MaxReferralDepth levels, walking the upward pointers iteratively.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	newID := id.NewID32()

	var referrer *string
	if in.ReferrerID != "" {
		if in.ReferrerID == newID {
			return nil, user.ErrSelfReferral
		}
		if _, err := u.users.GetByUserID(ctx, in.ReferrerID); err != nil {
			return nil, fmt.Errorf("resolve referrer: %w", err)
		}
		r := in.ReferrerID
		referrer = &r
	}

	nu := &user.User{UserID: newID, ReferrerID: referrer}
	if err := u.users.Create(ctx, nu); err != nil {
		return nil, err
	}

	if referrer != nil {
		if err := u.createReferralChain(ctx, *referrer, newID); err != nil {
			return nil, err
		}
	}

	dto := &UserDTO{UserID: nu.UserID, CreatedAt: nu.CreatedAt}
	if referrer != nil {
		dto.ReferrerID = *referrer
	}
	return dto, nil
}

func (u *Usecase) createReferralChain(ctx context.Context, referrerID, referredID string) error {
	ancestor := referrerID
	for level := 1; level <= plan.MaxReferralDepth; level++ {
		err := u.users.CreateReferralEdge(ctx, &user.ReferralEdge{
			ReferrerID: ancestor,
			ReferredID: referredID,
			Level:      level,
		})
		if err != nil {
			return fmt.Errorf("record referral edge at level %d: %w", level, err)
		}

		next, err := u.users.ReferrerOf(ctx, ancestor)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil
			}
			return err
		}
		if next == "" {
			return nil
		}
		ancestor = next
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	got, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := &UserDTO{
		UserID:              got.UserID,
		Balance:             got.Balance,
		TotalEarnings:       got.TotalEarnings,
		TotalReferralIncome: got.TotalReferralIncome,
		CreatedAt:           got.CreatedAt,
	}
	if got.ReferrerID != nil {
		dto.ReferrerID = *got.ReferrerID
	}
	return dto, nil
}

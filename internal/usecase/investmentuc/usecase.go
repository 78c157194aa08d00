package investmentuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/domain/user"
	"nexachain-backend/pkg/id"
)

type Usecase struct {
	investments investment.Repository
	users       user.Repository
	catalog     plan.Catalog
	loc         *time.Location
}

func NewUsecase(investments investment.Repository, users user.Repository, catalog plan.Catalog, loc *time.Location) *Usecase {
	return &Usecase{investments: investments, users: users, catalog: catalog, loc: loc}
}

type CreateInput struct {
	UserID string  `json:"user_id"`
	Plan   string  `json:"plan"`
	Amount float64 `json:"amount"`
}

type InvestmentDTO struct {
	InvestmentID      string    `json:"investment_id"`
	UserID            string    `json:"user_id"`
	Plan              string    `json:"plan"`
	Principal         float64   `json:"principal"`
	DailyRatePercent  float64   `json:"daily_rate_percent"`
	DurationDays      int       `json:"duration_days"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Status            string    `json:"status"`
	TotalReturnEarned float64   `json:"total_return_earned"`
	CreatedAt         time.Time `json:"created_at"`
}

// Create opens a position on a catalog plan. The accrual window is fixed
// here: start is the midnight boundary of the purchase day, end is start
// plus the plan duration, and neither is ever recomputed.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*InvestmentDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be greater than 0")
	}
	p, err := u.catalog.Get(in.Plan)
	if err != nil {
		return nil, err
	}
	if _, err := u.users.GetByUserID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("resolve investor: %w", err)
	}

	y, m, d := time.Now().In(u.loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, u.loc)
	end := start.AddDate(0, 0, p.DurationDays)

	inv := &investment.Investment{
		InvestmentID:     id.NewID32(),
		UserID:           in.UserID,
		Principal:        in.Amount,
		Plan:             p.Name,
		DailyRatePercent: p.DailyRatePercent,
		DurationDays:     p.DurationDays,
		StartDate:        start,
		EndDate:          end,
		Status:           investment.StatusActive,
	}
	if err := u.investments.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) Get(ctx context.Context, investmentID string) (*InvestmentDTO, error) {
	inv, err := u.investments.GetByInvestmentID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]InvestmentDTO, error) {
	list, err := u.investments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

func toDTO(inv *investment.Investment) *InvestmentDTO {
	return &InvestmentDTO{
		InvestmentID:      inv.InvestmentID,
		UserID:            inv.UserID,
		Plan:              inv.Plan,
		Principal:         inv.Principal,
		DailyRatePercent:  inv.DailyRatePercent,
		DurationDays:      inv.DurationDays,
		StartDate:         inv.StartDate,
		EndDate:           inv.EndDate,
		Status:            string(inv.Status),
		TotalReturnEarned: inv.TotalReturnEarned,
		CreatedAt:         inv.CreatedAt,
	}
}

package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/domain/uow"
	"nexachain-backend/internal/domain/user"
	"nexachain-backend/pkg/id"

	"github.com/rs/zerolog"
)

// Usecase cascades each posted accrual up the referral chain, one payout per
// (referrer, investment, day). The walk is iterative and bounded at
// plan.MaxReferralDepth; an already-posted level is skipped without payout
// but the walk still continues upward, so a partially settled chain is
// finished by the next invocation.
type Usecase struct {
	users       user.Repository
	accruals    ledger.AccrualRepository
	commissions ledger.CommissionRepository
	tx          uow.UnitOfWork
	schedule    plan.LevelSchedule
	log         zerolog.Logger
}

func NewUsecase(users user.Repository, accruals ledger.AccrualRepository, commissions ledger.CommissionRepository, tx uow.UnitOfWork, schedule plan.LevelSchedule, log zerolog.Logger) *Usecase {
	return &Usecase{
		users:       users,
		accruals:    accruals,
		commissions: commissions,
		tx:          tx,
		schedule:    schedule,
		log:         log.With().Str("component", "commission").Logger(),
	}
}

type Summary struct {
	Posted  int `json:"posted"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// SettleCommissionsForDay walks the chain for every posted accrual of day.
// Failure to enumerate the accruals is fatal; everything below that is
// per-record and retried on the next run.
func (u *Usecase) SettleCommissionsForDay(ctx context.Context, day time.Time) (Summary, error) {
	var sum Summary

	posted, err := u.accruals.ListPostedByDay(ctx, day)
	if err != nil {
		return sum, fmt.Errorf("list posted accruals: %w", err)
	}
	u.log.Info().Time("day", day).Int("accruals", len(posted)).Msg("settling commissions")

	for i := range posted {
		u.cascade(ctx, &posted[i], &sum)
	}
	return sum, nil
}

// cascade walks upward from the investor of one accrual.
func (u *Usecase) cascade(ctx context.Context, acc *ledger.AccrualRecord, sum *Summary) {
	current := acc.UserID
	for level := 1; level <= plan.MaxReferralDepth; level++ {
		referrer, err := u.users.ReferrerOf(ctx, current)
		if err != nil {
			// A vanished user terminates the chain silently; anything
			// else is a store problem for this one accrual.
			if !errors.Is(err, user.ErrNotFound) {
				sum.Failed++
				u.log.Warn().Err(err).
					Str("user_id", current).
					Str("investment_id", acc.InvestmentID).
					Msg("referrer lookup failed, chain left for next run")
			}
			return
		}
		if referrer == "" {
			return
		}

		pct := u.schedule.Percent(level)
		if pct <= 0 {
			return
		}
		// Commission is a share of the day's return, not of the principal.
		amount := acc.Amount * pct / 100

		switch err := u.payOne(ctx, acc, referrer, level, pct, amount); {
		case err == nil:
			sum.Posted++
		case err == errAlreadyPaid:
			sum.Skipped++
		default:
			sum.Failed++
			u.log.Warn().Err(err).
				Str("referrer_id", referrer).
				Str("investment_id", acc.InvestmentID).
				Int("level", level).
				Msg("commission not settled, will retry next run")
		}

		current = referrer
	}
}

var errAlreadyPaid = fmt.Errorf("already paid")

func (u *Usecase) payOne(ctx context.Context, acc *ledger.AccrualRecord, referrer string, level int, pct, amount float64) error {
	rec, err := u.commissions.Claim(ctx, &ledger.CommissionRecord{
		CommissionID: id.NewID32(),
		UserID:       referrer,
		FromUserID:   acc.UserID,
		InvestmentID: acc.InvestmentID,
		Day:          acc.Day,
		Level:        level,
		Percentage:   pct,
		Amount:       amount,
	})
	if err != nil {
		return fmt.Errorf("claim commission: %w", err)
	}
	if rec.Posted {
		return errAlreadyPaid
	}

	paid := false
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		locked, err := r.Commissions.GetForUpdate(ctx, rec.ID)
		if err != nil {
			return fmt.Errorf("lock commission record: %w", err)
		}
		if locked.Posted {
			paid = true
			return nil
		}
		if err := r.Users.AddReferralIncome(ctx, referrer, amount); err != nil {
			return fmt.Errorf("increment referrer balance: %w", err)
		}
		return r.Commissions.MarkPosted(ctx, locked.ID)
	})
	if err != nil {
		return err
	}
	if paid {
		return errAlreadyPaid
	}

	u.log.Debug().
		Str("referrer_id", referrer).
		Str("from_user_id", acc.UserID).
		Int("level", level).
		Float64("amount", amount).
		Msg("commission posted")
	return nil
}

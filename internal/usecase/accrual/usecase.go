package accrual

import (
	"context"
	"fmt"
	"time"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/uow"
	"nexachain-backend/pkg/id"

	"github.com/rs/zerolog"
)

// Usecase posts one day's return for every active investment, exactly once
// per (investment, day). Correctness rests on two steps per record: the
// claim (unique-key insert, duplicate collisions resolve to the existing
// row) and a transaction that locks the row, re-checks posted, applies the
// increments and flips posted. A record left unposted by a failure is
// picked up again on the next invocation.
type Usecase struct {
	investments investment.Repository
	accruals    ledger.AccrualRepository
	tx          uow.UnitOfWork
	log         zerolog.Logger
}

func NewUsecase(investments investment.Repository, accruals ledger.AccrualRepository, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{
		investments: investments,
		accruals:    accruals,
		tx:          tx,
		log:         log.With().Str("component", "accrual").Logger(),
	}
}

type Summary struct {
	Posted  int `json:"posted"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// SettleAccrualsForDay processes every active investment whose window covers
// day. day must already be midnight-normalized by the caller. Failure to
// enumerate investments is fatal; per-record failures are logged, counted
// and retried implicitly on the next run.
func (u *Usecase) SettleAccrualsForDay(ctx context.Context, day time.Time) (Summary, error) {
	var sum Summary

	active, err := u.investments.ListActiveOn(ctx, day)
	if err != nil {
		return sum, fmt.Errorf("list active investments: %w", err)
	}
	u.log.Info().Time("day", day).Int("active", len(active)).Msg("settling accruals")

	for i := range active {
		inv := &active[i]
		switch err := u.settleOne(ctx, inv, day); {
		case err == nil:
			sum.Posted++
		case err == errAlreadySettled:
			sum.Skipped++
		default:
			sum.Failed++
			u.log.Warn().Err(err).
				Str("investment_id", inv.InvestmentID).
				Time("day", day).
				Msg("accrual not settled, will retry next run")
		}
	}
	return sum, nil
}

var errAlreadySettled = fmt.Errorf("already settled")

func (u *Usecase) settleOne(ctx context.Context, inv *investment.Investment, day time.Time) error {
	amount := inv.Principal * inv.DailyRatePercent / 100

	rec, err := u.accruals.Claim(ctx, &ledger.AccrualRecord{
		AccrualID:    id.NewID32(),
		UserID:       inv.UserID,
		InvestmentID: inv.InvestmentID,
		Day:          day,
		Amount:       amount,
	})
	if err != nil {
		return fmt.Errorf("claim accrual: %w", err)
	}
	if rec.Posted {
		return errAlreadySettled
	}

	settled := false
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		locked, err := r.Accruals.GetForUpdate(ctx, rec.ID)
		if err != nil {
			return fmt.Errorf("lock accrual record: %w", err)
		}
		if locked.Posted {
			settled = true
			return nil
		}
		if err := r.Investments.AddReturnEarned(ctx, inv.InvestmentID, amount); err != nil {
			return fmt.Errorf("increment investment return: %w", err)
		}
		if err := r.Users.AddEarnings(ctx, inv.UserID, amount); err != nil {
			return fmt.Errorf("increment user balance: %w", err)
		}
		return r.Accruals.MarkPosted(ctx, locked.ID)
	})
	if err != nil {
		return err
	}
	if settled {
		return errAlreadySettled
	}

	u.log.Debug().
		Str("investment_id", inv.InvestmentID).
		Str("user_id", inv.UserID).
		Float64("amount", amount).
		Time("day", day).
		Msg("accrual posted")
	return nil
}
